package tokens

import (
	"testing"
	"time"
)

func TestStore(t *testing.T) {
	tests := []struct {
		name    string
		ttl     time.Duration
		actions func(s *Store, t *testing.T)
	}{
		{
			name: "issue and consume",
			ttl:  time.Second,
			actions: func(s *Store, t *testing.T) {
				token := s.Issue(7, 42)
				if !s.Consume(token, 7, 42) {
					t.Errorf("expected token to be valid")
				}
			},
		},
		{
			name: "replay is rejected",
			ttl:  time.Second,
			actions: func(s *Store, t *testing.T) {
				token := s.Issue(7, 42)
				s.Consume(token, 7, 42)
				if s.Consume(token, 7, 42) {
					t.Errorf("expected replayed token to be rejected")
				}
			},
		},
		{
			name: "wrong customer is rejected",
			ttl:  time.Second,
			actions: func(s *Store, t *testing.T) {
				token := s.Issue(7, 42)
				if s.Consume(token, 8, 42) {
					t.Errorf("expected token bound to another customer to be rejected")
				}
			},
		},
		{
			name: "wrong order is rejected and token burned",
			ttl:  time.Second,
			actions: func(s *Store, t *testing.T) {
				token := s.Issue(7, 42)
				if s.Consume(token, 7, 43) {
					t.Errorf("expected token bound to another order to be rejected")
				}
				if s.Consume(token, 7, 42) {
					t.Errorf("expected failed consume to burn the token")
				}
			},
		},
		{
			name: "expired token is rejected",
			ttl:  time.Millisecond * 20,
			actions: func(s *Store, t *testing.T) {
				token := s.Issue(7, 42)
				time.Sleep(time.Millisecond * 30)
				if s.Consume(token, 7, 42) {
					t.Errorf("expected expired token to be rejected")
				}
			},
		},
		{
			name: "unknown token is rejected",
			ttl:  time.Second,
			actions: func(s *Store, t *testing.T) {
				if s.Consume("nope", 7, 42) {
					t.Errorf("expected unknown token to be rejected")
				}
			},
		},
		{
			name: "cleanup drops expired tokens",
			ttl:  time.Millisecond * 20,
			actions: func(s *Store, t *testing.T) {
				s.Issue(7, 42)
				s.Issue(7, 43)
				time.Sleep(time.Millisecond * 30)
				s.cleanup()
				if s.Len() != 0 {
					t.Errorf("expected cleanup to drop expired tokens, %d left", s.Len())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.ttl)
			tt.actions(s, t)
		})
	}
}
