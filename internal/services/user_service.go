package services

import (
	"gorm.io/gorm"

	"github.com/Amogh004/store-ratings-platform/internal/auth"
	"github.com/Amogh004/store-ratings-platform/internal/models"
	"github.com/Amogh004/store-ratings-platform/internal/repositories"
	"github.com/Amogh004/store-ratings-platform/internal/services/dto"
	"github.com/Amogh004/store-ratings-platform/pkg/apperrors"
)

type UserService interface {
	AdminCreateUser(db *gorm.DB, req *dto.AdminCreateUserRequest) (*dto.UserProfile, error)
	ListUsers(db *gorm.DB, query *dto.UserListQuery) ([]dto.AdminUserResponse, error)
	GetUser(db *gorm.DB, id uint) (*dto.AdminUserResponse, error)
	GetDashboardStats(db *gorm.DB) (*dto.DashboardStats, error)
}

type UserServiceImpl struct {
	userRepo   repositories.UserRepository
	storeRepo  repositories.StoreRepository
	ratingRepo repositories.RatingRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	storeRepo repositories.StoreRepository,
	ratingRepo repositories.RatingRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

// AdminCreateUser creates an account with any role, unlike signup.
func (s *UserServiceImpl) AdminCreateUser(db *gorm.DB, req *dto.AdminCreateUserRequest) (*dto.UserProfile, error) {
	role := models.UserRole(req.Role)
	if !role.Valid() {
		return nil, apperrors.NewBadRequestError("Invalid role")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Address:      req.Address,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	profile := dto.NewUserProfile(user)
	return &profile, nil
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB, query *dto.UserListQuery) ([]dto.AdminUserResponse, error) {
	filter := repositories.UserFilter{
		Name:      query.Name,
		Email:     query.Email,
		Address:   query.Address,
		Role:      models.UserRole(query.Role),
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	users, err := s.userRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.AdminUserResponse, 0, len(users))
	for i := range users {
		row, err := s.adminUserRow(db, &users[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *row)
	}
	return result, nil
}

func (s *UserServiceImpl) GetUser(db *gorm.DB, id uint) (*dto.AdminUserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.adminUserRow(db, user)
}

func (s *UserServiceImpl) GetDashboardStats(db *gorm.DB) (*dto.DashboardStats, error) {
	totalUsers, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalStores, err := s.storeRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalRatings, err := s.ratingRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardStats{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

// adminUserRow attaches the cross-store owner average for STORE_OWNER
// accounts; for other roles the field stays null.
func (s *UserServiceImpl) adminUserRow(db *gorm.DB, user *models.User) (*dto.AdminUserResponse, error) {
	row := &dto.AdminUserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Role:    user.Role,
	}

	if user.Role == models.UserRoleStoreOwner {
		avg, err := s.ownerAverage(db, user.ID)
		if err != nil {
			return nil, err
		}
		row.OwnerAverageRating = avg
	}
	return row, nil
}

// ownerAverage is the flat mean across every rating of every store the user
// owns, not an average of per-store averages.
func (s *UserServiceImpl) ownerAverage(db *gorm.DB, ownerID uint) (*float64, error) {
	stores, err := s.storeRepo.FindByOwnerID(db, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	ratings, err := s.ratingRepo.FindByStoreIDs(db, storeIDs(stores))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return averageOf(ratings), nil
}
