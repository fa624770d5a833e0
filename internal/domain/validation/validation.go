// Package validation holds the input rules shared by the HTTP layer and the
// services, so a request accepted by one is never rejected by the other.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// UsernameTag restricts a string to letters, digits and underscores.
// Length bounds are applied separately through min and max.
const UsernameTag = "username"

// UsernameRule is the complete username constraint as a validator tag list.
const UsernameRule = "required,min=3,max=20," + UsernameTag

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation(UsernameTag, func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return v
}
