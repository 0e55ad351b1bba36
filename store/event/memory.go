package event

import (
	"context"
	"sync"
	"time"

	"dsc/core"
)

type memoryStore struct {
	mu     sync.Mutex
	nextID uint64
	events []*core.Event
}

// Memory new in-memory event store, for DB-less runs and tests.
func Memory() core.IEventStore {
	return &memoryStore{nextID: 1}
}

func (s *memoryStore) Create(ctx context.Context, event *core.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.TraceID == event.TraceID {
			return nil
		}
	}

	event.ID = s.nextID
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	s.nextID++
	copied := *event
	s.events = append(s.events, &copied)
	return nil
}

func (s *memoryStore) List(ctx context.Context, fromID uint64, limit int) ([]*core.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 500
	}

	var events []*core.Event
	for _, e := range s.events {
		if e.ID >= fromID {
			copied := *e
			events = append(events, &copied)
			if len(events) >= limit {
				break
			}
		}
	}

	return events, nil
}
