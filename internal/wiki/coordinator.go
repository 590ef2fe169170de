package wiki

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Notifier receives user-facing messages about completed commands.
type Notifier interface {
	Infof(format string, args ...any)
}

// Coordinator owns the session State and applies commands to it. It is not
// safe for concurrent use; the TUI only calls it from its update loop.
type Coordinator struct {
	state    State
	logger   zerolog.Logger
	notifier Notifier

	now   func() time.Time
	newID func() string
}

// NewCoordinator creates a coordinator starting from initial. notifier may be
// nil.
func NewCoordinator(initial State, logger zerolog.Logger, notifier Notifier) *Coordinator {
	return &Coordinator{
		state:    initial,
		logger:   logger,
		notifier: notifier,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// State returns the current state.
func (c *Coordinator) State() State {
	return c.state
}

// Dispatch applies cmd and returns the resulting state.
func (c *Coordinator) Dispatch(cmd Command) State {
	if req, ok := cmd.(SubmitRequest); ok {
		cmd = c.stamp(req)
	}

	prev := c.state
	c.state = Apply(prev, cmd)

	c.logger.Debug().
		Str("command", cmd.Name()).
		Stringer("from", prev.Mode()).
		Stringer("to", c.state.Mode()).
		Int("history", c.state.History.Len()).
		Int("requests", len(c.state.Requests)).
		Msg("command applied")

	c.notify(prev, cmd)
	return c.state
}

func (c *Coordinator) stamp(req SubmitRequest) SubmitRequest {
	if req.ID == "" {
		req.ID = c.newID()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = c.now()
	}
	return req
}

func (c *Coordinator) notify(prev State, cmd Command) {
	if c.notifier == nil {
		return
	}

	switch cmd := cmd.(type) {
	case Save:
		c.notifier.Infof("Saved %q", cmd.Title)
	case Search:
		if cmd.Query != "" && !prev.History.Contains(cmd.Query) {
			c.notifier.Infof("Added %q to recent searches", cmd.Query)
		}
	case SubmitRequest:
		c.notifier.Infof("Requested %q", cmd.Title)
	}
}
