package invites

import (
	"context"
	"strings"
	"time"

	"recipebox-backend/internal/shared/util"
)

// Service manages invite codes via an underlying store.
type Service struct {
	store store
}

// NewService constructs a Service with an in-memory store.
func NewService() *Service {
	return &Service{store: newMemoryStore()}
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore store) *Service {
	return &Service{store: pgStore}
}

// Create mints a new invite code with the given use budget.
func (s *Service) Create(ctx context.Context, createdBy string, maxUses int) (Invite, error) {
	if maxUses <= 0 {
		maxUses = 1
	}
	invite := Invite{
		Code:      util.RandomToken(8),
		CreatedBy: createdBy,
		MaxUses:   maxUses,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Create(ctx, invite); err != nil {
		return Invite{}, err
	}
	return invite, nil
}

// Redeem consumes one use of the code.
func (s *Service) Redeem(ctx context.Context, code string) (Invite, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Invite{}, ErrNotFound
	}
	return s.store.Redeem(ctx, code)
}

// Get returns the invite without consuming a use.
func (s *Service) Get(ctx context.Context, code string) (Invite, error) {
	return s.store.Get(ctx, strings.TrimSpace(code))
}
