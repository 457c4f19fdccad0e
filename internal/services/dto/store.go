package dto

type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,max=400"`
	OwnerID *uint  `json:"ownerId"`
}

type StoreListQuery struct {
	Name      string `form:"name"`
	Email     string `form:"email"`
	Address   string `form:"address"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

// AdminStoreItem is a store row with its rating summary for admin views.
// Rating is null when the store has no ratings yet.
type AdminStoreItem struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Address     string   `json:"address"`
	Rating      *float64 `json:"rating"`
	RatingCount int      `json:"ratingCount"`
}

// StoreListItem is a store row for the authenticated store browser.
// UserRating is the viewer's own rating for the store, null if not rated.
type StoreListItem struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	OverallRating *float64 `json:"overallRating"`
	RatingCount   int      `json:"ratingCount"`
	UserRating    *int     `json:"userRating"`
}

// OwnerRatingEntry is a single rating with the rater's public profile, as
// shown on the owner dashboard.
type OwnerRatingEntry struct {
	ID     uint         `json:"id"`
	Rating int          `json:"rating"`
	User   *UserProfile `json:"user"`
}

type OwnerStoreReport struct {
	ID            uint               `json:"id"`
	Name          string             `json:"name"`
	Address       string             `json:"address"`
	AverageRating *float64           `json:"averageRating"`
	RatingCount   int                `json:"ratingCount"`
	Ratings       []OwnerRatingEntry `json:"ratings"`
}
