package sessions

import (
	"context"
	"testing"
	"time"
)

func TestStore(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(s *Store, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(s *Store, t *testing.T) {
				s.Set("sess-1", "edit_order", "42")
				if v, ok := s.Get("sess-1", "edit_order"); !ok || v != "42" {
					t.Errorf("expected value=42, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(s *Store, t *testing.T) {
				s.Set("sess-1", "edit_order", "42")
				time.Sleep(time.Millisecond * 60)
				if _, ok := s.Get("sess-1", "edit_order"); ok {
					t.Errorf("expected session to be expired")
				}
			},
		},
		{
			name:     "delete removes only the named value",
			capacity: 2,
			ttl:      time.Second,
			actions: func(s *Store, t *testing.T) {
				s.Set("sess-1", "edit_order", "42")
				s.Set("sess-1", "locale", "en")
				s.Delete("sess-1", "edit_order")
				if _, ok := s.Get("sess-1", "edit_order"); ok {
					t.Errorf("expected edit_order to be deleted")
				}
				if v, ok := s.Get("sess-1", "locale"); !ok || v != "en" {
					t.Errorf("expected locale to survive, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "evict oldest session when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(s *Store, t *testing.T) {
				s.Set("a", "k", "1")
				s.Set("b", "k", "2")
				s.Set("c", "k", "3")
				if _, ok := s.Get("a", "k"); ok {
					t.Errorf("expected session 'a' to be evicted")
				}
				if v, ok := s.Get("b", "k"); !ok || v != "2" {
					t.Errorf("expected b=2, got %v", v)
				}
				if v, ok := s.Get("c", "k"); !ok || v != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "write refreshes TTL",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(s *Store, t *testing.T) {
				s.Set("sess-1", "edit_order", "42")
				time.Sleep(time.Millisecond * 30)
				s.Set("sess-1", "edit_order", "43")
				time.Sleep(time.Millisecond * 30)
				if v, ok := s.Get("sess-1", "edit_order"); !ok || v != "43" {
					t.Errorf("expected refreshed value=43, got=%v", v)
				}
			},
		},
		{
			name:     "janitor removes expired sessions",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(s *Store, t *testing.T) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				s.Start(ctx)

				s.Set("sess-1", "edit_order", "42")
				time.Sleep(time.Millisecond * 60)

				s.cleanup()

				if s.Len() != 0 {
					t.Errorf("expected janitor cleanup to remove expired session")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.capacity, tt.ttl)
			tt.actions(s, t)
		})
	}
}
