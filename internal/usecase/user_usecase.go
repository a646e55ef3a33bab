package usecase

import (
	"context"

	"rotulos/internal/domain/entity"
)

// AuthResult bundles the authenticated user with its token pair.
type AuthResult struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// UserUsecase defines the interface for operator account use cases.
type UserUsecase interface {
	// Register creates a new operator account and logs it in.
	Register(ctx context.Context, email, password, displayName string) (*AuthResult, error)

	// Login authenticates an operator by email and password.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
