package components

import (
	"strings"
	"sync"
)

// maxCachedPad is the widest padding served from the cache.
const maxCachedPad = 200

var paddingCache = sync.OnceValue(func() []string {
	cache := make([]string, maxCachedPad+1)
	full := strings.Repeat(" ", maxCachedPad)
	for i := range cache {
		cache[i] = full[:i]
	}
	return cache
})

// Pad returns a string of n spaces.
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	if n <= maxCachedPad {
		return paddingCache()[n]
	}
	return strings.Repeat(" ", n)
}
