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

func TestSignupAndLogin(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	signupBody := map[string]interface{}{
		"name":     "Johnathan Maxwell Sterling",
		"email":    "john@example.com",
		"address":  "221B Baker Street",
		"password": "Secret#99",
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/signup", "", signupBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Signup should succeed. Response: %s", body)

	var signupResponse dto.AuthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &signupResponse))
	assert.NotEmpty(t, signupResponse.Token)
	assert.Equal(t, models.UserRoleUser, signupResponse.User.Role, "Self-registration always creates a normal user")
	assert.NotContains(t, body, "password", "Responses must never leak password material")

	res, body = ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "john@example.com",
		"password": "Secret#99",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var loginResponse dto.AuthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	assert.NotEmpty(t, loginResponse.Token)

	res, body = ts.SendRequest(t, http.MethodGet, "/me", loginResponse.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "john@example.com")
}

func TestSignup_ValidationErrors(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/signup", "", map[string]interface{}{
		"name":     "Too Short",
		"email":    "not-an-email",
		"address":  "Somewhere",
		"password": "weak",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var errResponse struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &errResponse))
	assert.Contains(t, errResponse.Errors, "name")
	assert.Contains(t, errResponse.Errors, "email")
	assert.Contains(t, errResponse.Errors, "password")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	helpers.CreateUser(t, ts.DB, "Existing Account Holder Name", "taken@example.com", "Secret#99", models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/signup", "", map[string]interface{}{
		"name":     "Another Person With Long Name",
		"email":    "taken@example.com",
		"address":  "Elsewhere",
		"password": "Secret#99",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "message")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	helpers.CreateUser(t, ts.DB, "Existing Account Holder Name", "known@example.com", "Secret#99", models.UserRoleUser)

	// Unknown email and wrong password must be indistinguishable.
	res, unknownBody := ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "Secret#99",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, unknownBody, "Invalid credentials")

	res, wrongBody := ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "known@example.com",
		"password": "Wrong#999",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, unknownBody, wrongBody)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "Password Changer Test Person", "changer@example.com", models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/change-password", token, map[string]interface{}{
		"oldPassword": "WrongOld#1",
		"newPassword": "Rotated#22",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Old password is incorrect")

	res, body = ts.SendRequest(t, http.MethodPost, "/auth/change-password", token, map[string]interface{}{
		"oldPassword": "Fixture#Pass1",
		"newPassword": "Rotated#22",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: %s", body)
	assert.Contains(t, body, "Password updated successfully")

	// Old password no longer works, new one does.
	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "changer@example.com",
		"password": "Fixture#Pass1",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	helpers.LoginUser(t, ts, "changer@example.com", "Rotated#22")
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/stores", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
