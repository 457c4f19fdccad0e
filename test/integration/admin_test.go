package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amogh004/store-ratings-platform/internal/models"
	"github.com/Amogh004/store-ratings-platform/internal/services/dto"
	"github.com/Amogh004/store-ratings-platform/test/helpers"
)

func TestAdminRoutes_RoleGate(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	userToken, _ := helpers.CreateAndLoginUser(t, ts, "Regular User Probing Admin", "probe@example.com", models.UserRoleUser)

	res, _ := ts.SendRequest(t, http.MethodGet, "/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/admin/users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "Forbidden")

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Administrator Account Person", "admin@example.com", models.UserRoleAdmin)
	res, _ = ts.SendRequest(t, http.MethodGet, "/admin/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestAdminCreateUser(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Administrator Account Person", "admin@example.com", models.UserRoleAdmin)

	res, body := ts.SendRequest(t, http.MethodPost, "/admin/users", adminToken, map[string]interface{}{
		"name":     "Freshly Minted Store Owner",
		"email":    "minted@example.com",
		"address":  "3 Commerce Road",
		"password": "Minted#123",
		"role":     "STORE_OWNER",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: %s", body)

	var created dto.AdminUserResponse
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, models.UserRoleStoreOwner, created.Role)

	// The created account can log in right away.
	helpers.LoginUser(t, ts, "minted@example.com", "Minted#123")

	t.Run("rejects unknown role", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/admin/users", adminToken, map[string]interface{}{
			"name":     "Person With Impossible Role",
			"email":    "weird@example.com",
			"address":  "4 Commerce Road",
			"password": "Minted#123",
			"role":     "SUPERUSER",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "role")
	})
}

func TestAdminListUsers(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Administrator Account Person", "admin@example.com", models.UserRoleAdmin)
	owner := helpers.CreateUser(t, ts.DB, "Listed Store Owner Account", "listed-owner@example.com", "Secret#99", models.UserRoleStoreOwner)
	helpers.CreateUser(t, ts.DB, "Listed Regular User Account", "listed-user@example.com", "Secret#99", models.UserRoleUser)

	store := helpers.CreateStore(t, ts.DB, "Owned Deli", "deli@example.com", &owner.ID)
	rater := helpers.CreateUser(t, ts.DB, "Deli Customer Rating Person", "deli-fan@example.com", "Secret#99", models.UserRoleUser)
	helpers.CreateRating(t, ts.DB, rater.ID, store.ID, 4)

	t.Run("role filter", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/admin/users?role=STORE_OWNER", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var users []dto.AdminUserResponse
		require.NoError(t, json.Unmarshal([]byte(body), &users))
		require.Len(t, users, 1)
		assert.Equal(t, "listed-owner@example.com", users[0].Email)

		require.NotNil(t, users[0].OwnerAverageRating, "Store owners carry their stores' average")
		assert.Equal(t, 4.0, *users[0].OwnerAverageRating)
	})

	t.Run("non-owners have no owner average", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/admin/users?email=listed-user", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var users []dto.AdminUserResponse
		require.NoError(t, json.Unmarshal([]byte(body), &users))
		require.Len(t, users, 1)
		assert.Nil(t, users[0].OwnerAverageRating)
	})

	t.Run("detail view", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/admin/users/%d", owner.ID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var user dto.AdminUserResponse
		require.NoError(t, json.Unmarshal([]byte(body), &user))
		assert.Equal(t, owner.ID, user.ID)
		assert.NotContains(t, body, "password")

		res, _ = ts.SendRequest(t, http.MethodGet, "/admin/users/9999", adminToken, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

func TestDashboardStats(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Administrator Account Person", "admin@example.com", models.UserRoleAdmin)
	user := helpers.CreateUser(t, ts.DB, "Counted Regular User Person", "counted@example.com", "Secret#99", models.UserRoleUser)
	store := helpers.CreateStore(t, ts.DB, "Counted Store", "counted-store@example.com", nil)
	helpers.CreateRating(t, ts.DB, user.ID, store.ID, 3)

	res, body := ts.SendRequest(t, http.MethodGet, "/admin/dashboard-stats", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: %s", body)

	var stats dto.DashboardStats
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalStores)
	assert.Equal(t, int64(1), stats.TotalRatings)
}
