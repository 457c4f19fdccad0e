package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amogh004/store-ratings-platform/internal/models"
)

func ratingsOf(storeID uint, values ...int) []models.Rating {
	ratings := make([]models.Rating, 0, len(values))
	for i, v := range values {
		ratings = append(ratings, models.Rating{
			UserID:  uint(i + 1),
			StoreID: storeID,
			Value:   v,
		})
	}
	return ratings
}

func TestAverageOf(t *testing.T) {
	assert.Nil(t, averageOf(nil))
	assert.Nil(t, averageOf([]models.Rating{}))

	avg := averageOf(ratingsOf(1, 5, 3, 1))
	require.NotNil(t, avg)
	assert.Equal(t, 3.0, *avg)

	avg = averageOf(ratingsOf(1, 4, 5))
	require.NotNil(t, avg)
	assert.Equal(t, 4.5, *avg)

	avg = averageOf(ratingsOf(1, 2))
	require.NotNil(t, avg)
	assert.Equal(t, 2.0, *avg)
}

func TestUserRatingIn(t *testing.T) {
	ratings := []models.Rating{
		{UserID: 7, StoreID: 1, Value: 4},
		{UserID: 9, StoreID: 1, Value: 2},
	}

	got := userRatingIn(ratings, 9)
	require.NotNil(t, got)
	assert.Equal(t, 2, *got)

	assert.Nil(t, userRatingIn(ratings, 42))
	assert.Nil(t, userRatingIn(nil, 7))
}

func TestGroupByStore(t *testing.T) {
	ratings := []models.Rating{
		{UserID: 1, StoreID: 10, Value: 5},
		{UserID: 2, StoreID: 20, Value: 3},
		{UserID: 3, StoreID: 10, Value: 1},
	}

	grouped := groupByStore(ratings)
	require.Len(t, grouped, 2)
	assert.Len(t, grouped[10], 2)
	assert.Len(t, grouped[20], 1)
	assert.Empty(t, grouped[30])
}

func TestStoreIDs(t *testing.T) {
	stores := []models.Store{
		{BaseModel: models.BaseModel{ID: 3}},
		{BaseModel: models.BaseModel{ID: 8}},
	}
	assert.Equal(t, []uint{3, 8}, storeIDs(stores))
	assert.Empty(t, storeIDs(nil))
}
