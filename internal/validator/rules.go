package validator

import (
	"log"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/Amogh004/store-ratings-platform/internal/models"
)

const (
	ruleUserPassword = "user-password"
	ruleUserRole     = "user-role"
)

// registerCustomRules installs the platform's validation tags. Failing to
// register is a startup misconfiguration, not a runtime condition.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister(ruleUserPassword, validateUserPassword)
	mustRegister(ruleUserRole, validateUserRole)
}

func validateUserPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is 'required's job
	}
	return PasswordMeetsPolicy(value)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.UserRole(value).Valid()
}

// PasswordMeetsPolicy reports whether a password is 8-16 characters long
// and contains at least one uppercase letter and one non-alphanumeric
// character.
func PasswordMeetsPolicy(password string) bool {
	if len(password) < 8 || len(password) > 16 {
		return false
	}
	var hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSpecial = true
		}
	}
	return hasUpper && hasSpecial
}
