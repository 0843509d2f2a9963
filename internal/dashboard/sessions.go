package dashboard

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	screen   *Screen
	lastSeen time.Time
}

// Sessions keeps mounted screens addressable between requests.
type Sessions struct {
	mu    sync.Mutex
	items map[string]*session
	now   func() time.Time
}

func NewSessions() *Sessions {
	return &Sessions{items: map[string]*session{}, now: time.Now}
}

func (s *Sessions) Add(screen *Screen) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.items[id] = &session{screen: screen, lastSeen: s.now()}
	s.mu.Unlock()
	return id
}

func (s *Sessions) Get(id string) (*Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	item.lastSeen = s.now()
	return item.screen, nil
}

func (s *Sessions) Remove(id string) error {
	s.mu.Lock()
	item, ok := s.items[id]
	delete(s.items, id)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	item.screen.Close()
	return nil
}

// Sweep unmounts screens idle for longer than ttl and reports how many went.
func (s *Sessions) Sweep(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)
	var expired []*Screen
	s.mu.Lock()
	for id, item := range s.items {
		if item.lastSeen.Before(cutoff) {
			expired = append(expired, item.screen)
			delete(s.items, id)
		}
	}
	s.mu.Unlock()
	for _, screen := range expired {
		screen.Close()
	}
	return len(expired)
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
