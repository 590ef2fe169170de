package article

import "slices"

// DefaultHistoryLimit is the number of recent searches kept.
const DefaultHistoryLimit = 10

// History is a bounded, deduplicated, most-recent-first list of titles.
//
// History has value semantics: Add never modifies the receiver's backing
// array, so copies taken before an Add are unaffected by it.
type History struct {
	entries []string
	limit   int
}

// NewHistory returns a history capped at limit entries, seeded in order.
// Duplicate seeds keep their first occurrence. A limit below 1 falls back
// to DefaultHistoryLimit.
func NewHistory(limit int, seed ...string) History {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}

	entries := make([]string, 0, min(len(seed), limit))
	for _, s := range seed {
		if len(entries) == limit {
			break
		}
		if slices.Contains(entries, s) {
			continue
		}
		entries = append(entries, s)
	}

	return History{entries: entries, limit: limit}
}

// Add prepends entry unless it is already present, truncating to the limit.
// The boolean reports whether the history changed.
func (h History) Add(entry string) (History, bool) {
	if h.Contains(entry) {
		return h, false
	}

	limit := h.Limit()
	next := make([]string, 0, min(len(h.entries)+1, limit))
	next = append(next, entry)
	for _, e := range h.entries {
		if len(next) == limit {
			break
		}
		next = append(next, e)
	}

	return History{entries: next, limit: limit}, true
}

// Contains reports whether entry is present (exact match).
func (h History) Contains(entry string) bool {
	return slices.Contains(h.entries, entry)
}

// Entries returns a copy of the entries, most recent first.
func (h History) Entries() []string {
	return slices.Clone(h.entries)
}

// Len returns the number of entries.
func (h History) Len() int { return len(h.entries) }

// Limit returns the maximum number of entries kept.
func (h History) Limit() int {
	if h.limit < 1 {
		return DefaultHistoryLimit
	}
	return h.limit
}
