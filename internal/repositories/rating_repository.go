package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Amogh004/store-ratings-platform/internal/models"
)

var (
	ErrRatingNotFound      = errors.New("rating not found")
	ErrRatingAlreadyExists = errors.New("rating already exists for this store")
)

// RatingRepository returns plain rating slices; the aggregation arithmetic
// lives in the service layer, on in-memory collections.
type RatingRepository interface {
	Create(db *gorm.DB, rating *models.Rating) error
	Update(db *gorm.DB, rating *models.Rating) error
	FindByUserAndStore(db *gorm.DB, userID, storeID uint) (*models.Rating, error)
	FindByStoreIDs(db *gorm.DB, storeIDs []uint) ([]models.Rating, error)
	FindByStoreIDsWithUsers(db *gorm.DB, storeIDs []uint) ([]models.Rating, error)
	CountAll(db *gorm.DB) (int64, error)
}

type RatingRepositoryImpl struct{}

func NewRatingRepository() RatingRepository {
	return &RatingRepositoryImpl{}
}

func (r *RatingRepositoryImpl) Create(db *gorm.DB, rating *models.Rating) error {
	if err := db.Create(rating).Error; err != nil {
		// Two concurrent first submissions can both pass the existence
		// check; the unique index rejects the loser here.
		if isDuplicateKeyError(err) {
			return ErrRatingAlreadyExists
		}
		return err
	}
	return nil
}

func (r *RatingRepositoryImpl) Update(db *gorm.DB, rating *models.Rating) error {
	result := db.Model(&models.Rating{}).
		Where("id = ?", rating.ID).
		Update("value", rating.Value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRatingNotFound
	}
	return nil
}

func (r *RatingRepositoryImpl) FindByUserAndStore(db *gorm.DB, userID, storeID uint) (*models.Rating, error) {
	var rating models.Rating
	err := db.Where("user_id = ? AND store_id = ?", userID, storeID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) FindByStoreIDs(db *gorm.DB, storeIDs []uint) ([]models.Rating, error) {
	if len(storeIDs) == 0 {
		return nil, nil
	}
	var ratings []models.Rating
	err := db.Where("store_id IN ?", storeIDs).Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RatingRepositoryImpl) FindByStoreIDsWithUsers(db *gorm.DB, storeIDs []uint) ([]models.Rating, error) {
	if len(storeIDs) == 0 {
		return nil, nil
	}
	var ratings []models.Rating
	err := db.Preload("User").Where("store_id IN ?", storeIDs).Order("id ASC").Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RatingRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Rating{}).Count(&count).Error
	return count, err
}
