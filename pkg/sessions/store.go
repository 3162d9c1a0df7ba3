package sessions

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type session struct {
	id         string
	values     map[string]string
	expiration time.Time
}

// Store keeps per-visitor session state in memory: named string values
// keyed by session id. Sessions expire after the TTL and the least recently
// touched ones are evicted when the store is over capacity.
type Store struct {
	capacity int
	mu       sync.Mutex
	ll       *list.List
	sessions map[string]*list.Element
	ttl      time.Duration
}

func New(capacity int, ttl time.Duration) *Store {
	return &Store{
		capacity: capacity,
		ll:       list.New(),
		sessions: make(map[string]*list.Element),
		ttl:      ttl,
	}
}

func (s *Store) Get(sessionID, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ele, ok := s.sessions[sessionID]
	if !ok {
		return "", false
	}
	sess := ele.Value.(*session)
	if time.Now().After(sess.expiration) {
		s.removeElement(ele)
		return "", false
	}
	s.ll.MoveToFront(ele)
	value, ok := sess.values[key]
	return value, ok
}

// Set stores a named value in the session, refreshing its TTL.
func (s *Store) Set(sessionID, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ele, ok := s.sessions[sessionID]; ok {
		s.ll.MoveToFront(ele)
		sess := ele.Value.(*session)
		sess.values[key] = value
		sess.expiration = time.Now().Add(s.ttl)
		return
	}

	sess := &session{
		id:         sessionID,
		values:     map[string]string{key: value},
		expiration: time.Now().Add(s.ttl),
	}
	ele := s.ll.PushFront(sess)
	s.sessions[sessionID] = ele

	if s.ll.Len() > s.capacity {
		s.removeOldest()
	}
}

// Delete removes a single named value, keeping the session alive.
func (s *Store) Delete(sessionID, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ele, ok := s.sessions[sessionID]; ok {
		delete(ele.Value.(*session).values, key)
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ll.Len()
}

func (s *Store) removeOldest() {
	ele := s.ll.Back()
	if ele != nil {
		s.removeElement(ele)
	}
}

func (s *Store) removeElement(e *list.Element) {
	s.ll.Remove(e)
	sess := e.Value.(*session)
	delete(s.sessions, sess.id)
}

func (s *Store) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (s *Store) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for e := s.ll.Back(); e != nil; {
		prev := e.Prev()
		sess := e.Value.(*session)
		if time.Now().After(sess.expiration) {
			s.removeElement(e)
		}
		e = prev
	}
}
