package tui

import (
	"slices"
	"time"

	"github.com/colonyops/nupedia/internal/core/notify"
)

const (
	defaultToastTTL   = 4 * time.Second
	defaultMaxToasts  = 3
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 44
)

type toast struct {
	notification notify.Notification
	remaining    time.Duration
}

// ToastController tracks the toasts on screen and counts down their lifetime.
type ToastController struct {
	toasts    []toast
	ttl       time.Duration
	maxToasts int
	ticking   bool
}

// NewToastController creates a controller. Non-positive ttl or maxToasts
// fall back to the defaults.
func NewToastController(ttl time.Duration, maxToasts int) *ToastController {
	if ttl <= 0 {
		ttl = defaultToastTTL
	}
	if maxToasts <= 0 {
		maxToasts = defaultMaxToasts
	}
	return &ToastController{ttl: ttl, maxToasts: maxToasts}
}

// Push shows n, evicting the oldest toast when the stack is full.
func (c *ToastController) Push(n notify.Notification) {
	c.toasts = append(c.toasts, toast{notification: n, remaining: c.ttl})
	if len(c.toasts) > c.maxToasts {
		c.toasts = slices.Clone(c.toasts[len(c.toasts)-c.maxToasts:])
	}
}

// Tick ages every toast by d and drops the expired ones.
func (c *ToastController) Tick(d time.Duration) {
	c.toasts = slices.DeleteFunc(c.toasts, func(t toast) bool {
		return t.remaining <= d
	})
	for i := range c.toasts {
		c.toasts[i].remaining -= d
	}
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

// DismissAll removes every toast.
func (c *ToastController) DismissAll() {
	c.toasts = nil
}

// HasToasts reports whether anything is on screen.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Toasts returns a copy of the active toasts, oldest first.
func (c *ToastController) Toasts() []toast {
	return slices.Clone(c.toasts)
}

// Ticking reports whether a tick is scheduled.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking records whether a tick is scheduled.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
