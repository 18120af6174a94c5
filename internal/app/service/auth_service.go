package service

import (
	"context"
	"errors"
	"fmt"

	"care_connect/internal/common"
	"care_connect/internal/common/security"
	"care_connect/internal/domain/model"
	"care_connect/internal/domain/repository"
)

type AuthService struct {
	userRepo repository.UserRepository
	issuer   *security.TokenIssuer
}

func NewAuthService(userRepo repository.UserRepository, issuer *security.TokenIssuer) *AuthService {
	return &AuthService{userRepo: userRepo, issuer: issuer}
}

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Signup registers a new user. The admin role cannot be self-assigned;
// promoting a user is an existing admin's job.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	if req.Username == "" {
		return nil, fmt.Errorf("username is required: %w", common.ErrValidation)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required: %w", common.ErrValidation)
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}
	if role == model.RoleAdmin {
		return nil, fmt.Errorf("role admin cannot be self-assigned: %w", common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       req.Username,
		HashedPassword: hashedPassword,
		Role:           role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on a duplicate username.
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// Login verifies credentials and issues a bearer token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("username and password are required: %w", common.ErrValidation)
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("bad username or password: %w", common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, fmt.Errorf("bad username or password: %w", common.ErrUnauthorized)
	}

	token, err := s.issuer.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResponse{AccessToken: token}, nil
}
