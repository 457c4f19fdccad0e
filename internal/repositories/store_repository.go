package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Amogh004/store-ratings-platform/internal/models"
)

var (
	ErrStoreNotFound      = errors.New("store not found")
	ErrStoreAlreadyExists = errors.New("store already exists")
)

// StoreFilter holds the optional listing filters and sort request for the
// store list endpoints.
type StoreFilter struct {
	Name      string
	Email     string
	Address   string
	SortBy    string
	SortOrder string
}

var storeSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"address":   "address",
	"createdAt": "created_at",
}

type StoreRepository interface {
	Create(db *gorm.DB, store *models.Store) error
	FindByID(db *gorm.DB, id uint) (*models.Store, error)
	FindWithFilter(db *gorm.DB, filter StoreFilter) ([]models.Store, error)
	FindByOwnerID(db *gorm.DB, ownerID uint) ([]models.Store, error)
	CountAll(db *gorm.DB) (int64, error)
}

type StoreRepositoryImpl struct{}

func NewStoreRepository() StoreRepository {
	return &StoreRepositoryImpl{}
}

func (r *StoreRepositoryImpl) Create(db *gorm.DB, store *models.Store) error {
	var existing models.Store
	if err := db.Where("email = ?", store.Email).First(&existing).Error; err == nil {
		return ErrStoreAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := db.Create(store).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrStoreAlreadyExists
		}
		return err
	}
	return nil
}

func (r *StoreRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Store, error) {
	var store models.Store
	err := db.First(&store, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func (r *StoreRepositoryImpl) FindWithFilter(db *gorm.DB, filter StoreFilter) ([]models.Store, error) {
	q := db.Model(&models.Store{})
	q = likeFilter(q, "name", filter.Name)
	q = likeFilter(q, "email", filter.Email)
	q = likeFilter(q, "address", filter.Address)
	q = applyOrder(q, filter.SortBy, filter.SortOrder, storeSortColumns)

	var stores []models.Store
	if err := q.Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *StoreRepositoryImpl) FindByOwnerID(db *gorm.DB, ownerID uint) ([]models.Store, error) {
	var stores []models.Store
	err := db.Where("owner_id = ?", ownerID).Order("id ASC").Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *StoreRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Store{}).Count(&count).Error
	return count, err
}
