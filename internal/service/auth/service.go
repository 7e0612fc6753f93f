package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/model"
	"github.com/salonhub/booking-api/internal/repository"
	"github.com/salonhub/booking-api/internal/service/audit"
	"github.com/salonhub/booking-api/pkg/apperror"
	"github.com/salonhub/booking-api/pkg/auth"
	"github.com/salonhub/booking-api/pkg/security"
)

const (
	maxLoginAttempts = 5
	lockoutDuration  = 15 * time.Minute
)

type Service struct {
	users   repository.UserRepository
	jwtSvc  auth.JWTService
	hasher  security.PasswordHasher
	auditor *audit.Service
}

func NewService(users repository.UserRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher, auditor *audit.Service) *Service {
	return &Service{
		users:   users,
		jwtSvc:  jwtSvc,
		hasher:  hasher,
		auditor: auditor,
	}
}

// Register creates an account. Admin and staff accounts are never
// self-registered: admins are seeded, staff roles come from the staff
// directory, so the request role is restricted to owner and user.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	role := req.Role
	if role != model.RoleOwner && role != model.RoleUser {
		role = model.RoleUser
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, _ := s.users.GetByEmail(ctx, email); existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if err == security.ErrPasswordTooShort {
			return nil, apperror.Validation("password too short")
		}
		return nil, apperror.Internal(err)
	}

	user := &model.User{
		Base: model.Base{
			ID: uuid.New(),
		},
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         role,
		Status:       model.UserStatusActive,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	s.auditor.Log(ctx, user.ID, uuid.Nil, "register", "user", user.ID, &audit.LogOptions{
		Metadata: map[string]interface{}{"email": user.Email, "role": user.Role.String()},
	})

	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, apperror.Unauthorized("invalid credentials", nil)
	}

	if user.Status == model.UserStatusLocked {
		if time.Since(user.LastLoginAttempt) < lockoutDuration {
			return nil, apperror.Unauthorized("account is locked, please try again later", nil)
		}
		user.Status = model.UserStatusActive
		user.LoginAttempts = 0
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		user.LoginAttempts++
		user.LastLoginAttempt = time.Now()
		if user.LoginAttempts >= maxLoginAttempts {
			user.Status = model.UserStatusLocked
		}
		if err := s.users.Update(ctx, user); err != nil {
			return nil, apperror.Internal(err)
		}
		return nil, apperror.Unauthorized("invalid credentials", nil)
	}

	user.LoginAttempts = 0
	now := time.Now()
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.auditor.Log(ctx, user.ID, uuid.Nil, "login", "auth", user.ID, &audit.LogOptions{
		Metadata: map[string]interface{}{"email": user.Email},
	})

	return tokens, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	claims, err := s.jwtSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("invalid refresh token", err)
	}

	user, err := s.users.Get(ctx, claims.UserID)
	if err != nil {
		return nil, apperror.Unauthorized("invalid refresh token", err)
	}
	if user.Status == model.UserStatusLocked || user.Status == model.UserStatusInactive {
		return nil, apperror.Unauthorized("account unavailable", nil)
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return tokens, nil
}

func (s *Service) generateTokens(user *model.User) (*model.TokenResponse, error) {
	accessToken, err := s.jwtSvc.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtSvc.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return &model.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
