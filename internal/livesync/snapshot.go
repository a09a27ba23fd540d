package livesync

import (
	"sync"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
)

// Snapshot keeps the latest full list of athlete documents. Snapshots are
// replaced wholesale and never mutated, so readers may share them.
type Snapshot struct {
	mu        sync.RWMutex
	athletes  []domain.Athlete
	version   uint64
	listeners map[int]func([]domain.Athlete)
	nextID    int
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		athletes:  []domain.Athlete{},
		listeners: make(map[int]func([]domain.Athlete)),
	}
}

// Set replaces the snapshot and notifies listeners outside the lock.
func (s *Snapshot) Set(athletes []domain.Athlete) {
	if athletes == nil {
		athletes = []domain.Athlete{}
	}

	s.mu.Lock()
	s.athletes = athletes
	s.version++
	listeners := make([]func([]domain.Athlete), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(athletes)
	}
}

// Athletes returns the latest snapshot.
func (s *Snapshot) Athletes() []domain.Athlete {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.athletes
}

// Version increases by one on every Set.
func (s *Snapshot) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Listen registers fn for every future snapshot. The returned func removes it.
func (s *Snapshot) Listen(fn func([]domain.Athlete)) (unlisten func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
