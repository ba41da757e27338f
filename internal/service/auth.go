// Package service contains application services for authentication and tasks.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/LivingPOTATO0/task-manager-backend/internal/crypto"
	"github.com/LivingPOTATO0/task-manager-backend/internal/errs"
	"github.com/LivingPOTATO0/task-manager-backend/internal/model"
	"github.com/LivingPOTATO0/task-manager-backend/internal/repository"
	"github.com/LivingPOTATO0/task-manager-backend/internal/token"
)

// AuthService defines the session-lifecycle operations.
type AuthService interface {
	// Register creates a new account and issues the first token pair.
	Register(ctx context.Context, email, password, name string) (userID uuid.UUID, pair model.TokenPair, err error)
	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (model.TokenPair, error)
	// Refresh rotates a valid refresh token into a new token pair.
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
}

type AuthServiceImpl struct {
	users      repository.UserRepository
	tokens     *token.Manager
	bcryptCost int
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, tokens *token.Manager, bcryptCost int) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates a new user record after a duplicate-email pre-check.
// The check and the insert are not atomic; the unique index on email catches
// the race and surfaces as the same conflict.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password, name string) (uuid.UUID, model.TokenPair, error) {
	if email == "" || password == "" || name == "" {
		return uuid.Nil, model.TokenPair{}, fmt.Errorf("%w: email, password and name are required", errs.ErrValidation)
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, model.TokenPair{}, err
	}
	if exists {
		return uuid.Nil, model.TokenPair{}, errs.ErrAlreadyExists
	}

	hash, err := pkgcrypto.HashPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return uuid.Nil, model.TokenPair{}, err
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, model.TokenPair{}, err
	}

	u := &model.User{
		ID:           uid,
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return uuid.Nil, model.TokenPair{}, err
	}

	pair, err := s.tokens.IssuePair(uid)
	if err != nil {
		return uuid.Nil, model.TokenPair{}, err
	}
	return uid, pair, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (model.TokenPair, error) {
	if email == "" || password == "" {
		return model.TokenPair{}, fmt.Errorf("%w: email and password are required", errs.ErrValidation)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// hide existence of the account
			return model.TokenPair{}, errs.ErrUnauthorized
		}
		return model.TokenPair{}, err
	}
	if !pkgcrypto.VerifyPassword([]byte(password), u.PasswordHash) {
		return model.TokenPair{}, errs.ErrUnauthorized
	}

	return s.tokens.IssuePair(u.ID)
}

// Refresh verifies the presented refresh token and mints a fresh pair.
// The superseded refresh token is not tracked server-side; rotation only
// replaces it on the client.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	uid, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return model.TokenPair{}, err
	}
	return s.tokens.IssuePair(uid)
}
