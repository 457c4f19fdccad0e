package services

import "github.com/Amogh004/store-ratings-platform/internal/models"

// Rating aggregation operates on plain in-memory slices returned by the
// repositories. Values are guaranteed to be in [1,5] by request validation
// and the storage CHECK constraint, so "no ratings" is decided by count, not
// by looking for zero values.

// averageOf returns the mean rating value, or nil when there are none.
func averageOf(ratings []models.Rating) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	avg := float64(sum) / float64(len(ratings))
	return &avg
}

// userRatingIn returns the given user's rating value within the slice, or
// nil when the user has not rated.
func userRatingIn(ratings []models.Rating, userID uint) *int {
	for _, r := range ratings {
		if r.UserID == userID {
			value := r.Value
			return &value
		}
	}
	return nil
}

// groupByStore splits a flat rating slice per store ID.
func groupByStore(ratings []models.Rating) map[uint][]models.Rating {
	grouped := make(map[uint][]models.Rating)
	for _, r := range ratings {
		grouped[r.StoreID] = append(grouped[r.StoreID], r)
	}
	return grouped
}

func storeIDs(stores []models.Store) []uint {
	ids := make([]uint, 0, len(stores))
	for _, s := range stores {
		ids = append(ids, s.ID)
	}
	return ids
}
