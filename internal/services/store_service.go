package services

import (
	"gorm.io/gorm"

	"github.com/Amogh004/store-ratings-platform/internal/models"
	"github.com/Amogh004/store-ratings-platform/internal/repositories"
	"github.com/Amogh004/store-ratings-platform/internal/services/dto"
	"github.com/Amogh004/store-ratings-platform/pkg/apperrors"
)

type StoreService interface {
	CreateStore(db *gorm.DB, req *dto.CreateStoreRequest) (*models.Store, error)
	ListStoresAdmin(db *gorm.DB, query *dto.StoreListQuery) ([]dto.AdminStoreItem, error)
	ListStores(db *gorm.DB, viewerID uint, query *dto.StoreListQuery) ([]dto.StoreListItem, error)
	OwnerDashboard(db *gorm.DB, ownerID uint) ([]dto.OwnerStoreReport, error)
}

type StoreServiceImpl struct {
	storeRepo  repositories.StoreRepository
	userRepo   repositories.UserRepository
	ratingRepo repositories.RatingRepository
}

func NewStoreService(
	storeRepo repositories.StoreRepository,
	userRepo repositories.UserRepository,
	ratingRepo repositories.RatingRepository,
) StoreService {
	return &StoreServiceImpl{
		storeRepo:  storeRepo,
		userRepo:   userRepo,
		ratingRepo: ratingRepo,
	}
}

// CreateStore requires the owner, when given, to be a STORE_OWNER account.
func (s *StoreServiceImpl) CreateStore(db *gorm.DB, req *dto.CreateStoreRequest) (*models.Store, error) {
	var ownerID *uint
	if req.OwnerID != nil {
		owner, err := s.userRepo.FindByID(db, *req.OwnerID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrInvalidStoreOwner
			}
			return nil, apperrors.InternalError(err)
		}
		if owner.Role != models.UserRoleStoreOwner {
			return nil, apperrors.ErrInvalidStoreOwner
		}
		ownerID = &owner.ID
	}

	store := &models.Store{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: ownerID,
	}

	if err := s.storeRepo.Create(db, store); err != nil {
		if apperrors.Is(err, repositories.ErrStoreAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return store, nil
}

func (s *StoreServiceImpl) ListStoresAdmin(db *gorm.DB, query *dto.StoreListQuery) ([]dto.AdminStoreItem, error) {
	stores, grouped, err := s.storesWithRatings(db, query)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AdminStoreItem, 0, len(stores))
	for _, store := range stores {
		ratings := grouped[store.ID]
		result = append(result, dto.AdminStoreItem{
			ID:          store.ID,
			Name:        store.Name,
			Email:       store.Email,
			Address:     store.Address,
			Rating:      averageOf(ratings),
			RatingCount: len(ratings),
		})
	}
	return result, nil
}

func (s *StoreServiceImpl) ListStores(db *gorm.DB, viewerID uint, query *dto.StoreListQuery) ([]dto.StoreListItem, error) {
	stores, grouped, err := s.storesWithRatings(db, query)
	if err != nil {
		return nil, err
	}

	result := make([]dto.StoreListItem, 0, len(stores))
	for _, store := range stores {
		ratings := grouped[store.ID]
		result = append(result, dto.StoreListItem{
			ID:            store.ID,
			Name:          store.Name,
			Address:       store.Address,
			OverallRating: averageOf(ratings),
			RatingCount:   len(ratings),
			UserRating:    userRatingIn(ratings, viewerID),
		})
	}
	return result, nil
}

// OwnerDashboard lists every owned store with its aggregate and the raters
// behind each rating.
func (s *StoreServiceImpl) OwnerDashboard(db *gorm.DB, ownerID uint) ([]dto.OwnerStoreReport, error) {
	stores, err := s.storeRepo.FindByOwnerID(db, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ratings, err := s.ratingRepo.FindByStoreIDsWithUsers(db, storeIDs(stores))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	grouped := groupByStore(ratings)

	result := make([]dto.OwnerStoreReport, 0, len(stores))
	for _, store := range stores {
		storeRatings := grouped[store.ID]

		entries := make([]dto.OwnerRatingEntry, 0, len(storeRatings))
		for i := range storeRatings {
			r := &storeRatings[i]
			profile := dto.NewUserProfile(&r.User)
			entries = append(entries, dto.OwnerRatingEntry{
				ID:     r.ID,
				Rating: r.Value,
				User:   &profile,
			})
		}

		result = append(result, dto.OwnerStoreReport{
			ID:            store.ID,
			Name:          store.Name,
			Address:       store.Address,
			AverageRating: averageOf(storeRatings),
			RatingCount:   len(storeRatings),
			Ratings:       entries,
		})
	}
	return result, nil
}

func (s *StoreServiceImpl) storesWithRatings(db *gorm.DB, query *dto.StoreListQuery) ([]models.Store, map[uint][]models.Rating, error) {
	filter := repositories.StoreFilter{
		Name:      query.Name,
		Email:     query.Email,
		Address:   query.Address,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	stores, err := s.storeRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	ratings, err := s.ratingRepo.FindByStoreIDs(db, storeIDs(stores))
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	return stores, groupByStore(ratings), nil
}
