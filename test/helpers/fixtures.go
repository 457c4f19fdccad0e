package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Amogh004/store-ratings-platform/internal/auth"
	"github.com/Amogh004/store-ratings-platform/internal/models"
)

// CreateUser inserts a user directly, hashing the given raw password.
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err, "Failed to hash fixture password")

	user := &models.User{
		Name:         name,
		Email:        email,
		Address:      "1 Fixture Street",
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error, "Failed to create fixture user %s", email)

	return user
}

func CreateStore(t *testing.T, db *gorm.DB, name, email string, ownerID *uint) *models.Store {
	t.Helper()

	store := &models.Store{
		Name:    name,
		Email:   email,
		Address: "5 Market Square",
		OwnerID: ownerID,
	}
	require.NoError(t, db.Create(store).Error, "Failed to create fixture store %s", name)

	return store
}

func CreateRating(t *testing.T, db *gorm.DB, userID, storeID uint, value int) *models.Rating {
	t.Helper()

	rating := &models.Rating{
		UserID:  userID,
		StoreID: storeID,
		Value:   value,
	}
	require.NoError(t, db.Create(rating).Error, "Failed to create fixture rating")

	return rating
}

// LoginUser goes through the real login endpoint and returns the JWT.
func LoginUser(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed. Response: %s", body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token, "Login response should carry a token")

	return loginResponse.Token
}

// CreateAndLoginUser creates a user with the given role and logs it in
// through the API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email string, role models.UserRole) (string, *models.User) {
	t.Helper()

	const password = "Fixture#Pass1"
	user := CreateUser(t, ts.DB, name, email, password, role)
	token := LoginUser(t, ts, email, password)

	return token, user
}
