// Package notify broadcasts "the issue collection changed" between
// concurrent viewers of the same persisted collection. Writers never hear
// their own writes; they refresh their view directly after saving.
package notify

import (
	"context"
	"sync"
)

// Event carries no payload beyond the fact of change: its monotonic version
// and the viewer that wrote. Subscribers must re-fetch the collection.
type Event struct {
	Version int64  `json:"version"`
	Writer  string `json:"writer"`
}

// Notifier is the change-notification channel for one issue collection.
type Notifier interface {
	// Publish announces a completed write by the given viewer and returns
	// the event it delivered.
	Publish(ctx context.Context, writer string) (Event, error)
	// Subscribe delivers every event whose writer differs from selfID to fn
	// until the returned stop function is called.
	Subscribe(ctx context.Context, selfID string, fn func(Event)) (func(), error)
}

// Local is an in-process Notifier for single-process deployments and tests.
type Local struct {
	mu      sync.Mutex
	version int64
	nextSub int
	subs    map[int]localSub
}

type localSub struct {
	selfID string
	fn     func(Event)
}

// NewLocal returns an empty in-process notifier.
func NewLocal() *Local {
	return &Local{subs: make(map[int]localSub)}
}

// Publish bumps the version and fans the event out to every subscriber
// except the writer itself.
func (l *Local) Publish(_ context.Context, writer string) (Event, error) {
	l.mu.Lock()
	l.version++
	ev := Event{Version: l.version, Writer: writer}
	targets := make([]func(Event), 0, len(l.subs))
	for _, sub := range l.subs {
		if sub.selfID != writer {
			targets = append(targets, sub.fn)
		}
	}
	l.mu.Unlock()

	for _, fn := range targets {
		fn(ev)
	}
	return ev, nil
}

// Subscribe registers fn for events not written by selfID.
func (l *Local) Subscribe(_ context.Context, selfID string, fn func(Event)) (func(), error) {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = localSub{selfID: selfID, fn: fn}
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}, nil
}
