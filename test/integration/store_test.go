package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amogh004/store-ratings-platform/internal/models"
	"github.com/Amogh004/store-ratings-platform/internal/services/dto"
	"github.com/Amogh004/store-ratings-platform/test/helpers"
)

func storeNames(items []dto.StoreListItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func TestListStores_FilterAndSort(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "Store Browser Test Account", "browser@example.com", models.UserRoleUser)
	helpers.CreateStore(t, ts.DB, "Gamma Hardware", "gamma@example.com", nil)
	helpers.CreateStore(t, ts.DB, "alpha grocery", "alpha@example.com", nil)
	helpers.CreateStore(t, ts.DB, "Beta Books", "beta@example.com", nil)

	t.Run("filter is case-insensitive substring", func(t *testing.T) {
		items := listStores(t, ts, token)
		require.Len(t, items, 3)

		res, body := ts.SendRequest(t, http.MethodGet, "/stores?name=ALPHA", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var filtered []dto.StoreListItem
		require.NoError(t, json.Unmarshal([]byte(body), &filtered))
		require.Len(t, filtered, 1)
		assert.Equal(t, "alpha grocery", filtered[0].Name)
	})

	t.Run("sort ascending and descending", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/stores?sortBy=name&sortOrder=asc", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var asc []dto.StoreListItem
		require.NoError(t, json.Unmarshal([]byte(body), &asc))
		assert.Equal(t, []string{"Beta Books", "Gamma Hardware", "alpha grocery"}, storeNames(asc))

		res, body = ts.SendRequest(t, http.MethodGet, "/stores?sortBy=name&sortOrder=DESC", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var desc []dto.StoreListItem
		require.NoError(t, json.Unmarshal([]byte(body), &desc))
		assert.Equal(t, []string{"alpha grocery", "Gamma Hardware", "Beta Books"}, storeNames(desc))
	})

	t.Run("unknown sort column falls back to natural order", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/stores?sortBy=password_hash", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var items []dto.StoreListItem
		require.NoError(t, json.Unmarshal([]byte(body), &items))
		assert.Equal(t, []string{"Gamma Hardware", "alpha grocery", "Beta Books"}, storeNames(items))
	})
}

func TestAdminCreateStore(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Administrator Account Person", "admin@example.com", models.UserRoleAdmin)

	t.Run("without owner", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/admin/stores", adminToken, map[string]interface{}{
			"name":    "New Market",
			"email":   "market@example.com",
			"address": "12 High Street",
		})
		assert.Equal(t, http.StatusCreated, res.StatusCode, "Response: %s", body)
	})

	t.Run("with a store owner", func(t *testing.T) {
		owner := helpers.CreateUser(t, ts.DB, "Legit Store Owner Account", "legit-owner@example.com", "Secret#99", models.UserRoleStoreOwner)

		res, body := ts.SendRequest(t, http.MethodPost, "/admin/stores", adminToken, map[string]interface{}{
			"name":    "Owned Market",
			"email":   "owned@example.com",
			"address": "13 High Street",
			"ownerId": owner.ID,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, "Response: %s", body)

		var store models.Store
		require.NoError(t, json.Unmarshal([]byte(body), &store))
		require.NotNil(t, store.OwnerID)
		assert.Equal(t, owner.ID, *store.OwnerID)
	})

	t.Run("owner must hold the STORE_OWNER role", func(t *testing.T) {
		normal := helpers.CreateUser(t, ts.DB, "Ordinary User Not An Owner", "not-owner@example.com", "Secret#99", models.UserRoleUser)

		res, body := ts.SendRequest(t, http.MethodPost, "/admin/stores", adminToken, map[string]interface{}{
			"name":    "Orphan Market",
			"email":   "orphan@example.com",
			"address": "14 High Street",
			"ownerId": normal.ID,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "message")
	})
}

func TestAdminListStores_RatingSummary(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Administrator Account Person", "admin@example.com", models.UserRoleAdmin)
	rated := helpers.CreateStore(t, ts.DB, "Rated Store", "rated@example.com", nil)
	helpers.CreateStore(t, ts.DB, "Unrated Store", "unrated@example.com", nil)

	rater := helpers.CreateUser(t, ts.DB, "Rater For Admin Listing It", "rater@example.com", "Secret#99", models.UserRoleUser)
	helpers.CreateRating(t, ts.DB, rater.ID, rated.ID, 5)

	res, body := ts.SendRequest(t, http.MethodGet, "/admin/stores?sortBy=name", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: %s", body)

	var items []dto.AdminStoreItem
	require.NoError(t, json.Unmarshal([]byte(body), &items))
	require.Len(t, items, 2)

	require.NotNil(t, items[0].Rating)
	assert.Equal(t, 5.0, *items[0].Rating)
	assert.Equal(t, 1, items[0].RatingCount)

	assert.Nil(t, items[1].Rating, "A store with no ratings reports null, not zero")
	assert.Equal(t, 0, items[1].RatingCount)
}
