package invites

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu   sync.Mutex
	data map[string]Invite
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]Invite)}
}

func (s *memoryStore) Create(ctx context.Context, invite Invite) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[invite.Code] = invite
	return nil
}

func (s *memoryStore) Get(ctx context.Context, code string) (Invite, error) {
	if err := ctx.Err(); err != nil {
		return Invite{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	invite, ok := s.data[code]
	if !ok {
		return Invite{}, ErrNotFound
	}
	return invite, nil
}

func (s *memoryStore) Redeem(ctx context.Context, code string) (Invite, error) {
	if err := ctx.Err(); err != nil {
		return Invite{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	invite, ok := s.data[code]
	if !ok {
		return Invite{}, ErrNotFound
	}
	if invite.Used >= invite.MaxUses {
		return Invite{}, ErrExhausted
	}
	invite.Used++
	s.data[code] = invite
	return invite, nil
}

var _ store = (*memoryStore)(nil)
