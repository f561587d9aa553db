package invites

import (
	"context"
	"database/sql"
	"errors"
)

type pgStore struct {
	DB *sql.DB
}

// NewPGStore constructs a Postgres-backed invite store.
func NewPGStore(db *sql.DB) *pgStore {
	return &pgStore{DB: db}
}

func (s *pgStore) Create(ctx context.Context, invite Invite) error {
	const query = `
INSERT INTO invites (code, created_by, max_uses, used, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := s.DB.ExecContext(ctx, query,
		invite.Code,
		invite.CreatedBy,
		invite.MaxUses,
		invite.Used,
		invite.CreatedAt,
	)
	return err
}

func (s *pgStore) Get(ctx context.Context, code string) (Invite, error) {
	const query = `
SELECT code, created_by, max_uses, used, created_at
FROM invites
WHERE code = $1
LIMIT 1`
	var invite Invite
	err := s.DB.QueryRowContext(ctx, query, code).Scan(
		&invite.Code,
		&invite.CreatedBy,
		&invite.MaxUses,
		&invite.Used,
		&invite.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Invite{}, ErrNotFound
		}
		return Invite{}, err
	}
	return invite, nil
}

func (s *pgStore) Redeem(ctx context.Context, code string) (Invite, error) {
	// Single guarded UPDATE keeps the increment atomic under concurrent
	// redemptions.
	const update = `
UPDATE invites
SET used = used + 1
WHERE code = $1 AND used < max_uses`
	res, err := s.DB.ExecContext(ctx, update, code)
	if err != nil {
		return Invite{}, err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		invite, err := s.Get(ctx, code)
		if err != nil {
			return Invite{}, err
		}
		if invite.Used >= invite.MaxUses {
			return Invite{}, ErrExhausted
		}
		return Invite{}, ErrNotFound
	}
	return s.Get(ctx, code)
}

var _ store = (*pgStore)(nil)
