// Package session holds the accepted answers of interviews in progress.
// Entries expire after a period of inactivity.
package session

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Answers maps a canonical question key to its cleaned value.
type Answers map[string]string

// Store keeps per-phone answers between requests.
type Store interface {
	SetAnswer(phone, key, value string) Answers
	Answers(phone string) (Answers, bool)
	Delete(phone string)
	Count() int
}

// MemoryStore is an in-process Store backed by go-cache. Each write
// refreshes the entry's TTL.
type MemoryStore struct {
	mu    sync.Mutex
	cache *cache.Cache
	ttl   time.Duration
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if cleanupInterval <= 0 {
		cleanupInterval = ttl / 2
	}
	return &MemoryStore{
		cache: cache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

// SetAnswer records value for key and returns a copy of the phone's
// answers after the write.
func (s *MemoryStore) SetAnswer(phone, key, value string) Answers {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers := Answers{}
	if v, ok := s.cache.Get(phone); ok {
		answers = v.(Answers)
	}
	answers[key] = value
	s.cache.Set(phone, answers, s.ttl)
	return answers.clone()
}

// Answers returns a copy of the phone's answers.
func (s *MemoryStore) Answers(phone string) (Answers, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cache.Get(phone)
	if !ok {
		return nil, false
	}
	return v.(Answers).clone(), true
}

func (s *MemoryStore) Delete(phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Delete(phone)
}

// Count returns the number of sessions, including expired ones not yet
// cleaned up.
func (s *MemoryStore) Count() int {
	return s.cache.ItemCount()
}

func (a Answers) clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
