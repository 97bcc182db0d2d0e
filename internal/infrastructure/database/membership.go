package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type MembershipChecker struct {
	db *Database
}

func NewMembershipChecker(db *Database) *MembershipChecker {
	return &MembershipChecker{db: db}
}

func (m *MembershipChecker) IsVerifiedFor(ctx context.Context, principalID, entityID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, m.db.QueryTimeout)
	defer cancel()

	var verified bool
	err := m.db.Pool.QueryRow(ctx, `
SELECT verified
FROM entity_representatives
WHERE principal_id = $1 AND entity_id = $2
`, principalID, entityID).Scan(&verified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return verified, nil
}
