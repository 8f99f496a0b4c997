// Package users is the credential store: persistence of account rows,
// including the single refresh token each account may hold.
package users

import (
	"context"

	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
)

// Repository persists users. Lookups of missing rows return
// common.ErrorNotFound; unique violations return common.ErrorConflict.
type Repository interface {
	// Create inserts user and fills in ID and timestamps.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// Exists reports whether any row has the given username or email.
	// Blank arguments are not matched.
	Exists(ctx context.Context, username, email string) (bool, error)
	// GetByIdentifier finds a user whose username or email equals identifier.
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)

	// SetRefreshToken overwrites the stored token; nil clears it.
	SetRefreshToken(ctx context.Context, id string, token *string) error
	// SwapRefreshToken replaces current with next only if current is still
	// stored. It returns false when another writer got there first.
	SwapRefreshToken(ctx context.Context, id, current, next string) (bool, error)
	// SwapPasswordHash replaces the password hash if it still equals current
	// and clears the refresh token in the same write.
	SwapPasswordHash(ctx context.Context, id, current, next string) (bool, error)

	// UpdateDetails changes the non-nil fields and returns the new row.
	UpdateDetails(ctx context.Context, id string, fullName, email *string) (*models.User, error)
	// SetImageKey stores the object key of a profile image.
	SetImageKey(ctx context.Context, id string, kind models.ImageKind, key string) (*models.User, error)
}
