package apperrors

import "net/http"

// Factory functions for the error taxonomy. Conflicts (duplicate email,
// duplicate rating, invalid owner) respond with 400 to match the API
// contract, not 409.

func NewBadRequestError(message string) *AppError {
	return New(CodeInvalidOperation, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// ValidationError carries the field -> message map produced by the validator.
func ValidationError(details map[string]string) *AppError {
	return New(CodeValidationFailed, "Validation failed", http.StatusBadRequest).
		WithDetails(details)
}

// InternalError hides the cause from the client; it is logged server-side.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// ErrInvalidCredentials is deliberately identical for unknown email and wrong
// password so login responses cannot be used to enumerate accounts.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"Email is already registered",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"User not found",
	http.StatusNotFound,
)

var ErrStoreNotFound = New(
	CodeNotFound,
	"Store not found",
	http.StatusNotFound,
)

var ErrInvalidStoreOwner = New(
	CodeInvalidOperation,
	"Invalid store owner",
	http.StatusBadRequest,
)

var ErrRatingAlreadyExists = New(
	CodeConflict,
	"Rating already exists. Use PUT to update.",
	http.StatusBadRequest,
)

var ErrRatingNotFound = New(
	CodeNotFound,
	"Rating does not exist. Use POST to create.",
	http.StatusNotFound,
)

var ErrOldPasswordMismatch = New(
	CodeInvalidOperation,
	"Old password is incorrect",
	http.StatusBadRequest,
)
