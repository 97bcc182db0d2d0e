package database

import "context"

// MembershipChecker answers whether a principal holds a verified relationship
// to the entity it claims to act for.
type MembershipChecker interface {
	IsVerifiedFor(ctx context.Context, principalID, entityID string) (bool, error)
}
