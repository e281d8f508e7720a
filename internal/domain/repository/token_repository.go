// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fivestar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when a delivery token is not found.
var ErrTokenNotFound = errors.New("delivery token not found")

// TokenRepository defines the interface for delivery-token persistence.
// Tokens are keyed by their value, so saving the same token twice updates
// the existing record.
type TokenRepository interface {
	// SaveToken upserts a token record keyed by the token value. The three
	// timestamps (created_at, updated_at, last_used) are server-assigned;
	// the passed entity is updated with the assigned values.
	SaveToken(ctx context.Context, token *entity.DeliveryToken) error

	// FindTokensByUser retrieves all tokens registered for an identity.
	FindTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeliveryToken, error)

	// DeleteToken removes the record keyed by the token value.
	DeleteToken(ctx context.Context, token string) error

	// DeleteTokensByUser removes every token registered for an identity and
	// returns the number of records removed. Used on account deletion.
	DeleteTokensByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
