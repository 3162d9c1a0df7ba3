package tokens

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const janitorInterval = 2 * time.Minute

type entry struct {
	customerID int64
	orderID    int64
	expiration time.Time
}

// Store issues single-use edit authorization tokens bound to a customer and
// an order. A token is removed the moment it is consumed, so a replayed
// token never validates twice.
type Store struct {
	mu     sync.Mutex
	ttl    time.Duration
	tokens map[string]entry
}

func New(ttl time.Duration) *Store {
	return &Store{
		ttl:    ttl,
		tokens: make(map[string]entry),
	}
}

func (s *Store) Issue(customerID, orderID int64) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = entry{
		customerID: customerID,
		orderID:    orderID,
		expiration: time.Now().Add(s.ttl),
	}
	return token
}

// Consume validates the token against the customer and order it was issued
// for and invalidates it. Returns false for unknown, expired, replayed or
// mismatched tokens.
func (s *Store) Consume(token string, customerID, orderID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.tokens[token]
	if !ok {
		return false
	}
	delete(s.tokens, token)

	if time.Now().After(ent.expiration) {
		return false
	}
	return ent.customerID == customerID && ent.orderID == orderID
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
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
	for token, ent := range s.tokens {
		if time.Now().After(ent.expiration) {
			delete(s.tokens, token)
		}
	}
}
