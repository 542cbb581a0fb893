// Package watermill adapts Watermill publishers and subscribers to the
// storefront's messaging interfaces.
package watermill

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	wkafka "github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/dieuclat/storefront/internal/messaging"
)

// keyMetadata carries the message key; the Kafka marshaler uses it as partition key.
const keyMetadata = "key"

type subscriberFactory func(groupID string) (message.Subscriber, func() error, error)

// Broker implements messaging.Publisher and messaging.Subscriber on top of
// any Watermill pub/sub.
type Broker struct {
	publisher     message.Publisher
	newSubscriber subscriberFactory
	close         func() error
}

var (
	_ messaging.Publisher  = (*Broker)(nil)
	_ messaging.Subscriber = (*Broker)(nil)
)

// NewLogger adapts slog for Watermill.
func NewLogger() watermill.LoggerAdapter {
	return watermill.NewSlogLogger(slog.Default())
}

// NewGoChannel returns an in-process broker. A persistent broker replays
// earlier messages to late subscribers.
func NewGoChannel(persistent bool, logger watermill.LoggerAdapter) *Broker {
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
		Persistent:          persistent,
	}, logger)

	return &Broker{
		publisher: pubSub,
		newSubscriber: func(string) (message.Subscriber, func() error, error) {
			return pubSub, func() error { return nil }, nil
		},
		close: pubSub.Close,
	}
}

// NewKafka returns a broker backed by watermill-kafka with sarama clients.
func NewKafka(brokers []string, logger watermill.LoggerAdapter) (*Broker, error) {
	marshaler := wkafka.NewWithPartitioningMarshaler(func(topic string, msg *message.Message) (string, error) {
		return msg.Metadata.Get(keyMetadata), nil
	})

	pubCfg := wkafka.DefaultSaramaSyncPublisherConfig()
	pubCfg.ClientID = "storefront"
	pubCfg.Producer.Timeout = 10 * time.Second

	publisher, err := wkafka.NewPublisher(wkafka.PublisherConfig{
		Brokers:               brokers,
		Marshaler:             marshaler,
		OverwriteSaramaConfig: pubCfg,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	return &Broker{
		publisher: publisher,
		newSubscriber: func(groupID string) (message.Subscriber, func() error, error) {
			subCfg := wkafka.DefaultSaramaSubscriberConfig()
			subCfg.ClientID = "storefront"
			subCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

			sub, err := wkafka.NewSubscriber(wkafka.SubscriberConfig{
				Brokers:               brokers,
				Unmarshaler:           marshaler,
				ConsumerGroup:         groupID,
				OverwriteSaramaConfig: subCfg,
			}, logger)
			if err != nil {
				return nil, nil, err
			}
			return sub, sub.Close, nil
		},
		close: publisher.Close,
	}, nil
}

func (b *Broker) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(keyMetadata, key)
	msg.SetContext(ctx)

	if err := b.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

func (b *Broker) Consume(ctx context.Context, topic string, groupID string, handler func(ctx context.Context, payload []byte) error) {
	sub, closeSub, err := b.newSubscriber(groupID)
	if err != nil {
		slog.Error("Failed to create subscriber", "topic", topic, "err", err)
		return
	}
	defer closeSub()

	messages, err := sub.Subscribe(ctx, topic)
	if err != nil {
		slog.Error("Failed to subscribe", "topic", topic, "err", err)
		return
	}

	for msg := range messages {
		if err := handler(ctx, msg.Payload); err != nil {
			slog.Error("Error handling message", "topic", topic, "err", err)
		}
		msg.Ack()
	}
	slog.Info("Consumer shutting down", "topic", topic)
}

func (b *Broker) Close() error {
	return b.close()
}
