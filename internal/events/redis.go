package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
)

const channelPrefix = "barber-booking:"

// RedisBus shares changes between API instances over Redis pub/sub.
type RedisBus struct {
	client *redis.Client
	log    *slog.Logger
}

func NewRedisBus(url string, log *slog.Logger) (*RedisBus, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisBus{client: redis.NewClient(opts), log: log}, nil
}

func (b *RedisBus) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *RedisBus) Publish(ctx context.Context, c Change) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, channel(c.Topic), payload).Err()
}

func (b *RedisBus) Subscribe(ctx context.Context, topics ...Topic) (*Subscription, error) {
	if len(topics) == 0 {
		topics = AvailabilityTopics
	}
	channels := make([]string, 0, len(topics))
	for _, t := range topics {
		channels = append(channels, channel(t))
	}

	ctx, cancel := context.WithCancel(ctx)
	pubsub := b.client.Subscribe(ctx, channels...)
	if _, err := pubsub.Receive(ctx); err != nil {
		cancel()
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	out := make(chan Change, subscriptionBuffer)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var c Change
				if err := json.Unmarshal([]byte(msg.Payload), &c); err != nil {
					b.log.Warn("events: bad payload", "channel", msg.Channel, "err", err)
					continue
				}
				deliver(out, c)
			}
		}
	}()

	return &Subscription{ch: out, cancel: cancel}, nil
}

func (b *RedisBus) Close() error {
	return b.client.Close()
}

func channel(t Topic) string {
	return channelPrefix + string(t)
}
