package token

import (
	"context"
	"fmt"
)

// Validator checks a bearer token and its revocation status
type Validator struct {
	manager *Manager
	store   RevocationStore
}

// NewValidator combines a manager with a revocation store
func NewValidator(manager *Manager, store RevocationStore) *Validator {
	return &Validator{manager: manager, store: store}
}

// ValidateToken returns the claims of a valid, unrevoked token
func (v *Validator) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := v.manager.Parse(tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := v.store.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, ErrRevokedToken
	}
	return claims, nil
}
