package service

import (
	"context"
	"testing"
	"time"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/model"
	"github.com/gesscam/community-portal/internal/repository"
	"github.com/gesscam/community-portal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthServiceForTest(db *gorm.DB) AuthService {
	return NewAuthService(repository.NewUserRepository(db), nil, "test-secret", time.Hour, time.Second)
}

func TestRegisterAssignsUserRole(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthServiceForTest(db)

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "fatou",
		Email:    "fatou@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)

	// The stored password is hashed, never the plaintext.
	var stored model.User
	require.NoError(t, db.First(&stored, "email = ?", "fatou@example.com").Error)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthServiceForTest(db)

	req := dto.RegisterRequest{Username: "fatou", Email: "fatou@example.com", Password: "secret123"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthServiceForTest(db)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "fatou",
		Email:    "fatou@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "fatou@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "fatou@example.com", user.Email)

	_, _, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "fatou@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	// Unknown emails fail with the same error so the response cannot be
	// used to probe for accounts.
	_, _, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}
