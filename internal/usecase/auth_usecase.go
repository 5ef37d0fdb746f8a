// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tasker/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's identity.
// The password, hashed or otherwise, is never echoed back.
type RegisterOutput struct {
	Identity entity.Identity
}

// LoginOutput returns the issued session token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	Identity    entity.Identity
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account. A duplicate username fails with
	// domainerrors.ErrUsernameTaken, whether caught by the pre-check or by
	// the store's unique constraint.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a session token. An unknown
	// username and a wrong password return the identical
	// domainerrors.ErrInvalidCredentials value.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
