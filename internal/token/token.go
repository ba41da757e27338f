// Package token issues and verifies the two JWT classes used by the API:
// short-lived access tokens sent as bearer headers and long-lived refresh
// tokens transported in a cookie. Each class is signed with its own secret,
// so a token of one class never verifies as the other.
package token

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/LivingPOTATO0/task-manager-backend/internal/errs"
	"github.com/LivingPOTATO0/task-manager-backend/internal/model"
)

// Manager signs and verifies HS256 tokens for both classes.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewManager constructs a Manager with independent secrets and lifetimes.
func NewManager(accessSecret, refreshSecret []byte, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// WithClock overrides the time source. Used by tests to pin issuance time.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// IssuePair mints a fresh access/refresh token pair for the subject.
// Each token carries a random jti, so two pairs for the same subject in the
// same second are still distinct.
func (m *Manager) IssuePair(userID uuid.UUID) (model.TokenPair, error) {
	now := m.now()
	accessExp := now.Add(m.accessTTL)

	access, err := sign(m.accessSecret, userID, now, accessExp)
	if err != nil {
		return model.TokenPair{}, err
	}
	refresh, err := sign(m.refreshSecret, userID, now, now.Add(m.refreshTTL))
	if err != nil {
		return model.TokenPair{}, err
	}
	return model.TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: accessExp}, nil
}

// VerifyAccess validates an access token and returns its subject.
func (m *Manager) VerifyAccess(token string) (uuid.UUID, error) {
	return m.verify(token, m.accessSecret)
}

// VerifyRefresh validates a refresh token and returns its subject.
func (m *Manager) VerifyRefresh(token string) (uuid.UUID, error) {
	return m.verify(token, m.refreshSecret)
}

func sign(secret []byte, userID uuid.UUID, iat, exp time.Time) (string, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(exp),
		ID:        jti.String(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// verify collapses every failure mode (bad signature, wrong class, expiry,
// malformed input) into errs.ErrTokenInvalid.
func (m *Manager) verify(token string, secret []byte) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !tok.Valid {
		return uuid.Nil, errs.ErrTokenInvalid
	}
	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, errs.ErrTokenInvalid
	}
	return id, nil
}
