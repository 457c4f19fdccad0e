package dto

import "github.com/Amogh004/store-ratings-platform/internal/models"

type AdminCreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"required,max=400"`
	Password string `json:"password" validate:"required,user-password"`
	Role     string `json:"role" validate:"required,user-role"`
}

// UserListQuery binds the admin user listing query string. Filters are
// optional substring matches except role, which is exact.
type UserListQuery struct {
	Name      string `form:"name"`
	Email     string `form:"email"`
	Address   string `form:"address"`
	Role      string `form:"role"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

// AdminUserResponse is a user row for admin views. OwnerAverageRating is
// only populated for STORE_OWNER accounts and stays null otherwise.
type AdminUserResponse struct {
	ID                 uint            `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	Address            string          `json:"address"`
	Role               models.UserRole `json:"role"`
	OwnerAverageRating *float64        `json:"ownerAverageRating"`
}

type DashboardStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}
