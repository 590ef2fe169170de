// Package notify provides the in-process notification bus that feeds toasts.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/nupedia/internal/core/notify"
)

// Subscriber is a callback invoked when a notification is published.
type Subscriber func(notify.Notification)

// Bus is a synchronous in-process notification bus. It records notifications
// in a Store, mirrors them to the log and dispatches them to subscribers
// inline. The Bus is safe for use from the Bubble Tea Update loop.
type Bus struct {
	store       notify.Store
	logger      zerolog.Logger
	subscribers []Subscriber
	mu          sync.Mutex
}

// NewBus creates a notification bus backed by the given store.
// If store is nil, notifications are dispatched to subscribers but not kept.
func NewBus(store notify.Store, logger zerolog.Logger) *Bus {
	return &Bus{
		store:  store,
		logger: logger,
	}
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish dispatches a notification to all subscribers after storing it.
func (b *Bus) Publish(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	// Store first so the notification has an ID for subscribers.
	if b.store != nil {
		id, err := b.store.Save(context.Background(), n)
		if err != nil {
			b.logger.Error().Err(err).Str("message", n.Message).Msg("failed to store notification")
		} else {
			n.ID = id
		}
	}

	b.logger.WithLevel(logLevel(n.Level)).
		Int64("id", n.ID).
		Str("message", n.Message).
		Msg("notification")

	b.mu.Lock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
}

// Errorf publishes an error-level notification.
func (b *Bus) Errorf(format string, args ...any) {
	b.publishf(notify.LevelError, format, args...)
}

// Warnf publishes a warning-level notification.
func (b *Bus) Warnf(format string, args ...any) {
	b.publishf(notify.LevelWarning, format, args...)
}

// Infof publishes an info-level notification.
func (b *Bus) Infof(format string, args ...any) {
	b.publishf(notify.LevelInfo, format, args...)
}

func (b *Bus) publishf(level notify.Level, format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

// History returns all stored notifications (newest first).
// Returns nil if no store is configured.
func (b *Bus) History() ([]notify.Notification, error) {
	if b.store == nil {
		return nil, nil
	}
	return b.store.List(context.Background())
}

// Clear deletes all stored notifications.
func (b *Bus) Clear() error {
	if b.store == nil {
		return nil
	}
	return b.store.Clear(context.Background())
}

func logLevel(l notify.Level) zerolog.Level {
	switch l {
	case notify.LevelError:
		return zerolog.ErrorLevel
	case notify.LevelWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
