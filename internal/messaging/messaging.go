package messaging

import "context"

// Topics the storefront publishes to.
const (
	TopicOrdersPlaced = "orders.placed"
)

// Publisher defines an interface for publishing events to a message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
}

// Subscriber defines an interface for subscribing to a message topic.
// Consume blocks until ctx is cancelled.
type Subscriber interface {
	Consume(ctx context.Context, topic string, groupID string, handler func(ctx context.Context, payload []byte) error)
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) PublishEvent(context.Context, string, string, any) error { return nil }
