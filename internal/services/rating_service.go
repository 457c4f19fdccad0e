package services

import (
	"gorm.io/gorm"

	"github.com/Amogh004/store-ratings-platform/internal/models"
	"github.com/Amogh004/store-ratings-platform/internal/repositories"
	"github.com/Amogh004/store-ratings-platform/pkg/apperrors"
)

type RatingService interface {
	SubmitRating(db *gorm.DB, userID, storeID uint, value int) (*models.Rating, error)
	UpdateRating(db *gorm.DB, userID, storeID uint, value int) (*models.Rating, error)
}

type RatingServiceImpl struct {
	ratingRepo repositories.RatingRepository
	storeRepo  repositories.StoreRepository
}

func NewRatingService(
	ratingRepo repositories.RatingRepository,
	storeRepo repositories.StoreRepository,
) RatingService {
	return &RatingServiceImpl{
		ratingRepo: ratingRepo,
		storeRepo:  storeRepo,
	}
}

// SubmitRating handles the NONE -> RATED transition. A pair that already
// has a rating must go through UpdateRating instead.
func (s *RatingServiceImpl) SubmitRating(db *gorm.DB, userID, storeID uint, value int) (*models.Rating, error) {
	if err := s.checkStoreAndValue(db, storeID, value); err != nil {
		return nil, err
	}

	if _, err := s.ratingRepo.FindByUserAndStore(db, userID, storeID); err == nil {
		return nil, apperrors.ErrRatingAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrRatingNotFound) {
		return nil, apperrors.InternalError(err)
	}

	rating := &models.Rating{
		UserID:  userID,
		StoreID: storeID,
		Value:   value,
	}
	if err := s.ratingRepo.Create(db, rating); err != nil {
		// A concurrent create for the same pair lost the race against the
		// unique index; report it the same as the existence check would.
		if apperrors.Is(err, repositories.ErrRatingAlreadyExists) {
			return nil, apperrors.ErrRatingAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return rating, nil
}

// UpdateRating handles the RATED -> RATED transition, overwriting the value
// in place.
func (s *RatingServiceImpl) UpdateRating(db *gorm.DB, userID, storeID uint, value int) (*models.Rating, error) {
	if err := s.checkStoreAndValue(db, storeID, value); err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.FindByUserAndStore(db, userID, storeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRatingNotFound) {
			return nil, apperrors.ErrRatingNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	rating.Value = value
	if err := s.ratingRepo.Update(db, rating); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rating, nil
}

func (s *RatingServiceImpl) checkStoreAndValue(db *gorm.DB, storeID uint, value int) error {
	// Asserted here as well as at binding time; aggregates rely on it.
	if value < 1 || value > 5 {
		return apperrors.NewBadRequestError("Rating must be an integer between 1 and 5")
	}

	if _, err := s.storeRepo.FindByID(db, storeID); err != nil {
		if apperrors.Is(err, repositories.ErrStoreNotFound) {
			return apperrors.ErrStoreNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
