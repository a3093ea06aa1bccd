package events

import (
	"context"
	"sync"
)

// LocalBus fans changes out inside one process.
type LocalBus struct {
	mu     sync.Mutex
	subs   map[*localSub]struct{}
	closed bool
}

type localSub struct {
	topics []Topic
	ch     chan Change
}

func NewLocalBus() *LocalBus {
	return &LocalBus{subs: map[*localSub]struct{}{}}
}

func (b *LocalBus) Publish(ctx context.Context, c Change) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for s := range b.subs {
		if wants(s.topics, c.Topic) {
			deliver(s.ch, c)
		}
	}
	return nil
}

func (b *LocalBus) Subscribe(ctx context.Context, topics ...Topic) (*Subscription, error) {
	s := &localSub{topics: topics, ch: make(chan Change, subscriptionBuffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(s.ch)
		return &Subscription{ch: s.ch, cancel: func() {}}, nil
	}
	b.subs[s] = struct{}{}
	b.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	var once sync.Once
	stop := func() {
		once.Do(func() {
			cancel()
			b.remove(s)
		})
	}
	go func() {
		<-ctx.Done()
		stop()
	}()

	return &Subscription{ch: s.ch, cancel: stop}, nil
}

func (b *LocalBus) remove(s *localSub) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[s]; ok {
		delete(b.subs, s)
		close(s.ch)
	}
}

func (b *LocalBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for s := range b.subs {
		delete(b.subs, s)
		close(s.ch)
	}
	return nil
}
