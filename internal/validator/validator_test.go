package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amogh004/store-ratings-platform/internal/services/dto"
)

func TestPasswordMeetsPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Password#1", true},
		{"valid minimum length", "Abcdef!8", true},
		{"valid maximum length", "Abcdefghijklmn!2", true},
		{"too short", "Abc!567", false},
		{"too long", "Abcdefghijklmno!17", false},
		{"no uppercase", "password#1", false},
		{"no special character", "Password11", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordMeetsPolicy(tt.password))
		})
	}
}

func TestValidateSignupRequest(t *testing.T) {
	v := New()

	valid := dto.SignupRequest{
		Name:     "Johnathan Maxwell Sterling",
		Email:    "john@example.com",
		Address:  "221B Baker Street",
		Password: "Secret#99",
	}
	assert.NoError(t, v.Validate(valid))

	t.Run("name too short", func(t *testing.T) {
		req := valid
		req.Name = "John"

		err := v.Validate(req)
		require.Error(t, err)

		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "name")
		assert.NotContains(t, vErr.Errors, "email")
	})

	t.Run("invalid email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"

		err := v.Validate(req)
		require.Error(t, err)

		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "email")
	})

	t.Run("weak password", func(t *testing.T) {
		req := valid
		req.Password = "alllowercase"

		err := v.Validate(req)
		require.Error(t, err)

		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "password")
	})

	t.Run("all fields missing", func(t *testing.T) {
		err := v.Validate(dto.SignupRequest{})
		require.Error(t, err)

		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Len(t, vErr.Errors, 4)
	})
}

func TestValidateUserRole(t *testing.T) {
	v := New()

	base := dto.AdminCreateUserRequest{
		Name:     "Administrator Account Holder",
		Email:    "admin2@example.com",
		Address:  "1 Main Street",
		Password: "Secret#99",
	}

	for _, role := range []string{"ADMIN", "USER", "STORE_OWNER"} {
		req := base
		req.Role = role
		assert.NoError(t, v.Validate(req), "role %s should be accepted", role)
	}

	req := base
	req.Role = "SUPERUSER"
	err := v.Validate(req)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "role")
}

func TestValidateRatingBounds(t *testing.T) {
	v := New()

	for value := 1; value <= 5; value++ {
		assert.NoError(t, v.Validate(dto.RatingRequest{Rating: value}))
	}

	assert.Error(t, v.Validate(dto.RatingRequest{Rating: 0}))
	assert.Error(t, v.Validate(dto.RatingRequest{Rating: 6}))
	assert.Error(t, v.Validate(dto.RatingRequest{Rating: -3}))
}
