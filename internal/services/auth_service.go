package services

import (
	"gorm.io/gorm"

	"github.com/Amogh004/store-ratings-platform/internal/auth"
	"github.com/Amogh004/store-ratings-platform/internal/models"
	"github.com/Amogh004/store-ratings-platform/internal/repositories"
	"github.com/Amogh004/store-ratings-platform/internal/services/dto"
	"github.com/Amogh004/store-ratings-platform/pkg/apperrors"
)

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ChangePassword(db *gorm.DB, userID uint, req *dto.ChangePasswordRequest) error
	GetProfile(db *gorm.DB, userID uint) (*dto.UserProfile, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	jwt      *auth.JWTManager
}

func NewAuthService(userRepo repositories.UserRepository, jwt *auth.JWTManager) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		jwt:      jwt,
	}
}

// Signup creates a USER-role account. Other roles are only assignable
// through the admin endpoint.
func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Address:      req.Address,
		PasswordHash: passwordHash,
		Role:         models.UserRoleUser,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.authResponse(user)
}

// Login returns the same invalid-credentials error for an unknown email and
// a wrong password.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// ChangePassword operates only on the authenticated caller's own account.
func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID uint, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apperrors.ErrOldPasswordMismatch
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(db, user.ID, passwordHash); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) GetProfile(db *gorm.DB, userID uint) (*dto.UserProfile, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	profile := dto.NewUserProfile(user)
	return &profile, nil
}

func (s *AuthServiceImpl) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.jwt.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserProfile(user),
	}, nil
}
