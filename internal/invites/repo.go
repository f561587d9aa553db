package invites

import "context"

type store interface {
	Create(ctx context.Context, invite Invite) error
	Get(ctx context.Context, code string) (Invite, error)
	// Redeem atomically increments the use counter, failing with
	// ErrExhausted once max_uses is reached.
	Redeem(ctx context.Context, code string) (Invite, error)
}
