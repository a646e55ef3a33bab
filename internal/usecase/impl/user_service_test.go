package impl

import (
	"context"
	"testing"

	"rotulos/internal/domain/entity"
	domainerrors "rotulos/internal/domain/errors"
	"rotulos/internal/domain/repository"
	mockrepo "rotulos/internal/mocks/repository"
	mocksvc "rotulos/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(
	userRepo *mockrepo.MockUserRepository,
	hasher *mocksvc.MockPasswordHasher,
	tokenSvc *mocksvc.MockTokenService,
) *userService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
	}
}

func TestUserService_Register(t *testing.T) {
	hasher := new(mocksvc.MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hash", nil)

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "ana@example.com" && u.PasswordHash == "$2a$10$hash" && u.ID != uuid.Nil
	})).Return(nil)

	tokenSvc := new(mocksvc.MockTokenService)
	tokenSvc.On("GenerateTokens", mock.Anything).Return("access", "refresh", nil)

	svc := newUserService(userRepo, hasher, tokenSvc)

	result, err := svc.Register(context.Background(), "  Ana@Example.com ", "s3cret", "Ana")

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", result.User.Email)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	hasher := new(mocksvc.MockPasswordHasher)
	hasher.On("Hash", mock.Anything).Return("$2a$10$hash", nil)

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("CreateUser", mock.Anything, mock.Anything).Return(repository.ErrDuplicateUser)

	svc := newUserService(userRepo, hasher, new(mocksvc.MockTokenService))

	result, err := svc.Register(context.Background(), "ana@example.com", "s3cret", "Ana")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	hasher := new(mocksvc.MockPasswordHasher)
	hasher.On("Hash", mock.Anything).Return("", assert.AnError)

	svc := newUserService(new(mockrepo.MockUserRepository), hasher, new(mocksvc.MockTokenService))

	_, err := svc.Register(context.Background(), "ana@example.com", "s3cret", "Ana")

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$hash",
	}

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	hasher := new(mocksvc.MockPasswordHasher)
	hasher.On("Check", "s3cret", "$2a$10$hash").Return(true)

	tokenSvc := new(mocksvc.MockTokenService)
	tokenSvc.On("GenerateTokens", user.ID).Return("access", "refresh", nil)

	svc := newUserService(userRepo, hasher, tokenSvc)

	result, err := svc.Login(context.Background(), "Ana@Example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, user, result.User)
	assert.Equal(t, "access", result.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "$2a$10$hash"}

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByEmail", mock.Anything, mock.Anything).Return(user, nil)

	hasher := new(mocksvc.MockPasswordHasher)
	hasher.On("Check", mock.Anything, mock.Anything).Return(false)

	svc := newUserService(userRepo, hasher, new(mocksvc.MockTokenService))

	result, err := svc.Login(context.Background(), "ana@example.com", "wrong")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByEmail", mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)

	svc := newUserService(userRepo, new(mocksvc.MockPasswordHasher), new(mocksvc.MockTokenService))

	_, err := svc.Login(context.Background(), "ghost@example.com", "s3cret")

	// Unknown email reads the same as a wrong password.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
