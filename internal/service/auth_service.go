package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/model"
	"github.com/gesscam/community-portal/internal/repository"
	"github.com/gesscam/community-portal/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	// Login verifies credentials and returns the user plus a signed session
	// token for the cookie.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.UserResponse, string, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	SessionTTL() time.Duration
}

type authService struct {
	userRepo      repository.UserRepository
	redisClient   *redis.Client
	secret        string
	sessionTTL    time.Duration
	loginCooldown time.Duration
}

func NewAuthService(userRepo repository.UserRepository, redisClient *redis.Client, secret string, sessionTTL, loginCooldown time.Duration) AuthService {
	return &authService{
		userRepo:      userRepo,
		redisClient:   redisClient,
		secret:        secret,
		sessionTTL:    sessionTTL,
		loginCooldown: loginCooldown,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := validateRequired(
		requiredField{"username", req.Username},
		requiredField{"email", req.Email},
		requiredField{"password", req.Password},
	); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperror.Conflict("user already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, internal(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     model.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, internal(err)
	}

	resp := toUserResponse(*user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.UserResponse, string, error) {
	allowed, err := checkAndSetCooldown(ctx, s.redisClient, req.Email, "login", s.loginCooldown)
	if err != nil {
		return nil, "", internal(err)
	}
	if !allowed {
		return nil, "", apperror.New(apperror.ErrRateLimitExceeded, "too many login attempts, slow down")
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperror.New(apperror.ErrInvalidCredentials, "invalid credentials")
		}
		return nil, "", internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", apperror.New(apperror.ErrInvalidCredentials, "invalid credentials")
	}

	// A successful login ends the cooldown early.
	_ = clearCooldown(ctx, s.redisClient, req.Email, "login")

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", internal(err)
	}

	resp := toUserResponse(*user)
	return &resp, token, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	resp := toUserResponse(*user)
	return &resp, nil
}

func (s *authService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *authService) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}
