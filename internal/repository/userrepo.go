// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/LivingPOTATO0/task-manager-backend/internal/model"
)

// UserRepository provides credential-store access for accounts.
type UserRepository interface {
	// Create inserts a new user. Duplicate email yields errs.ErrAlreadyExists.
	Create(ctx context.Context, u *model.User) error
	// GetByEmail loads a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// ExistsByEmail reports whether an account with this email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
