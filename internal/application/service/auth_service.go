package service

import (
	"context"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
	"github.com/rasoipos/rasoi-api/pkg/apperror"
	"github.com/rasoipos/rasoi-api/pkg/utils"
)

// AuthService handles staff authentication. Tokens carry role codes and
// permission codes so elevated actions are gated without extra lookups.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// PinLoginInput represents the fast PIN login input used on shared
// terminals.
type PinLoginInput struct {
	Mobile string
	PIN    string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a staff member by email and password.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, apperror.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(input.Password, user.PassHash) {
		return nil, apperror.ErrUnauthorized
	}
	return s.issueTokens(user)
}

// LoginWithPIN authenticates a staff member by mobile and PIN.
func (s *AuthService) LoginWithPIN(ctx context.Context, input *PinLoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByMobile(ctx, input.Mobile)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active || user.PinHash == "" {
		return nil, apperror.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(input.PIN, user.PinHash) {
		return nil, apperror.ErrUnauthorized
	}
	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}
	user, err := s.userRepo.GetWithAccess(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, apperror.ErrUnauthorized
	}
	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entity.User) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.TenantID, user.BranchID, user.Name, user.RoleCodes(), user.PermissionCodes())
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
