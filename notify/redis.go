package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

const (
	changeChannel = "civic_issues.changed"
	versionKey    = "civic_issues.version"
)

// Redis is a cross-process Notifier over Redis pub/sub. The collection
// version is a shared monotonic counter so every viewer sees the same
// numbering regardless of who wrote.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an existing Redis client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Publish increments the shared version and broadcasts the event on the
// change channel. Every subscriber, including the writer's own process,
// receives the raw message; self-filtering happens on the subscribe side.
func (r *Redis) Publish(ctx context.Context, writer string) (Event, error) {
	version, err := r.client.Incr(ctx, versionKey).Result()
	if err != nil {
		return Event{}, err
	}
	ev := Event{Version: version, Writer: writer}
	payload, err := json.Marshal(ev)
	if err != nil {
		return Event{}, err
	}
	if err := r.client.Publish(ctx, changeChannel, payload).Err(); err != nil {
		return Event{}, err
	}
	return ev, nil
}

// Subscribe listens on the change channel and forwards events from other
// writers to fn until stop is called.
func (r *Redis) Subscribe(ctx context.Context, selfID string, fn func(Event)) (func(), error) {
	pubsub := r.client.Subscribe(ctx, changeChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	go func() {
		for msg := range pubsub.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("Dropping malformed change event: %v", err)
				continue
			}
			if ev.Writer == selfID {
				continue
			}
			fn(ev)
		}
	}()

	return func() { pubsub.Close() }, nil
}
