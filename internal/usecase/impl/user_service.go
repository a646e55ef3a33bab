package impl

import (
	"context"
	"strings"

	"rotulos/internal/domain/entity"
	domainerrors "rotulos/internal/domain/errors"
	"rotulos/internal/domain/repository"
	"rotulos/internal/domain/service"
	"rotulos/internal/errors"
	"rotulos/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	TokenSvc service.TokenService
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokenSvc: params.TokenSvc,
	}
}

// Register creates a new operator account and logs it in.
func (s *userService) Register(ctx context.Context, email, password, displayName string) (*usecase.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
	}

	return s.issueTokens(user)
}

// Login authenticates an operator by email and password.
func (s *userService) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a bad password: never reveal which part failed.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *userService) issueTokens(user *entity.User) (*usecase.AuthResult, error) {
	accessToken, refreshToken, err := s.tokenSvc.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
