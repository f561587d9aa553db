package users

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// UpsertFromAuth persists the user identity from OAuth so owned recipes and
// carts survive re-login.
func (s *Service) UpsertFromAuth(ctx context.Context, user User) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return errors.New("user id and email are required")
	}
	return s.Repo.Upsert(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

// DisplayName returns a presentable name for an owner, for shared-cart
// rendering. It never fails: guests and unknown ids fall back to "Someone".
func (s *Service) DisplayName(ctx context.Context, ownerID string) string {
	const fallback = "Someone"
	if s == nil || s.Repo == nil {
		return fallback
	}
	if strings.HasPrefix(ownerID, "guest:") {
		return fallback
	}
	user, err := s.Repo.GetByID(ctx, ownerID)
	if err != nil {
		return fallback
	}
	if name := strings.TrimSpace(user.FullName); name != "" {
		return name
	}
	if at := strings.Index(user.Email, "@"); at > 0 {
		return user.Email[:at]
	}
	return fallback
}
