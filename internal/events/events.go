package events

import (
	"context"
	"time"
)

type Topic string

const (
	TopicBookings     Topic = "bookings"
	TopicBlockedDates Topic = "blocked_dates"
	TopicSchedule     Topic = "schedule"
	TopicSettings     Topic = "settings"
	TopicCatalog      Topic = "catalog"
)

// AvailabilityTopics are the changes that invalidate a slot grid.
var AvailabilityTopics = []Topic{TopicBookings, TopicBlockedDates, TopicSchedule, TopicSettings, TopicCatalog}

// Change is a hint that something under Topic moved. Subscribers recompute
// from the store; the payload is informational only.
type Change struct {
	Topic    Topic     `json:"topic"`
	Action   string    `json:"action"`
	EntityID string    `json:"entity_id,omitempty"`
	Date     string    `json:"date,omitempty"`
	At       time.Time `json:"at"`
}

type Bus interface {
	Publish(ctx context.Context, c Change) error
	Subscribe(ctx context.Context, topics ...Topic) (*Subscription, error)
	Close() error
}

// Subscription delivers changes until Close is called or its context ends.
type Subscription struct {
	ch     chan Change
	cancel func()
}

func (s *Subscription) C() <-chan Change {
	return s.ch
}

func (s *Subscription) Close() {
	s.cancel()
}

const subscriptionBuffer = 16

// deliver never blocks; a full subscriber only loses hints it would
// recompute anyway on the next one.
func deliver(ch chan Change, c Change) {
	select {
	case ch <- c:
	default:
	}
}

func wants(topics []Topic, t Topic) bool {
	if len(topics) == 0 {
		return true
	}
	for _, x := range topics {
		if x == t {
			return true
		}
	}
	return false
}
