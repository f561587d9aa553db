package invites

import (
	"errors"
	"time"
)

// Invite is an admin-issued signup code with a bounded number of uses.
type Invite struct {
	Code      string    `json:"code"`
	CreatedBy string    `json:"createdBy"`
	MaxUses   int       `json:"maxUses"`
	Used      int       `json:"used"`
	CreatedAt time.Time `json:"createdAt"`
}

var (
	ErrNotFound  = errors.New("invite not found")
	ErrExhausted = errors.New("invite exhausted")
)
