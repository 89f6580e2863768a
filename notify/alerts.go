package notify

import (
	"sync"
	"time"
)

// DefaultAlertTTL is how long a change alert stays visible.
const DefaultAlertTTL = 5 * time.Second

// Alert is one transient user-facing notification.
type Alert struct {
	Message string `json:"message"`
	Version int64  `json:"version"`
	expires time.Time
}

// AlertBuffer holds transient alerts that expire on their own. The dashboard
// surfaces its active contents after each change notification.
type AlertBuffer struct {
	mu     sync.Mutex
	ttl    time.Duration
	alerts []Alert
}

// NewAlertBuffer returns a buffer with the given TTL; zero means the default.
func NewAlertBuffer(ttl time.Duration) *AlertBuffer {
	if ttl <= 0 {
		ttl = DefaultAlertTTL
	}
	return &AlertBuffer{ttl: ttl}
}

// Post adds an alert that expires after the buffer's TTL.
func (b *AlertBuffer) Post(message string, version int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.alerts = append(b.alerts, Alert{
		Message: message,
		Version: version,
		expires: time.Now().Add(b.ttl),
	})
}

// Active returns the alerts that have not yet expired and prunes the rest.
func (b *AlertBuffer) Active() []Alert {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	live := b.alerts[:0]
	for _, a := range b.alerts {
		if a.expires.After(now) {
			live = append(live, a)
		}
	}
	b.alerts = live
	out := make([]Alert, len(live))
	copy(out, live)
	return out
}
