// Package validator adapts go-playground/validator to echo.
package validator

import (
	"linkforge/internal/domain/validation"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator carrying the shared custom tags.
func New() *CustomValidator {
	return &CustomValidator{validate: validation.New()}
}

// Validate runs the struct tags of i.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Describe turns a validation error into a short message naming the first failed field.
func Describe(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fe := errs[0]
		if fe.Param() != "" {
			return fe.Field() + " failed " + fe.Tag() + "=" + fe.Param()
		}

		return fe.Field() + " failed " + fe.Tag()
	}

	return "invalid input"
}
