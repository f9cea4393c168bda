package handlers

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// usernameRe requires at least three letters followed by at least one digit.
// Combined with min=4/max=8 this matches the registration constraints.
var usernameRe = regexp.MustCompile(`^[A-Za-z]{3,}\d+$`)

// newValidator builds the validator instance shared by the handlers,
// including the custom username rule.
func newValidator() *validator.Validate {
	validate := validator.New()
	// MustCompile already guarantees the pattern; the callback cannot fail.
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	return validate
}
