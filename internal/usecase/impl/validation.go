package impl

import (
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/domain/validation"

	"github.com/pkg/errors"
)

const (
	minNameLength        = 2
	maxNameLength        = 50
	minPasswordLength    = 6
	maxBioLength         = 160
	maxLinkTitleLength   = 100
	maxDescriptionLength = 500
	maxIconLength        = 50
	maxProfileTitle      = 100
	maxCustomCSSLength   = 10000
	maxActivityDetails   = 500
	maxActivityType      = 32 // activities.type is VARCHAR(32)
)

var (
	validate = validation.New()

	buttonStyles       = []string{"solid", "outline", "soft", "shadow"}
	animations         = []string{"none", "fade", "slide", "bounce"}
	backgroundPatterns = []string{"none", "dots", "grid", "waves"}
)

func invalid(details string) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func validateName(name string) error {
	if !lengthBetween(strings.TrimSpace(name), minNameLength, maxNameLength) {
		return invalid("name must be 2 to 50 characters")
	}

	return nil
}

func validateEmail(email string) error {
	if err := validate.Var(email, "required,email,max=255"); err != nil {
		return invalid("email is not a valid address")
	}

	return nil
}

func validateUsername(username string) error {
	if err := validate.Var(username, validation.UsernameRule); err != nil {
		return invalid("username must be 3 to 20 letters, digits or underscores")
	}

	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return invalid("password must be at least 6 characters")
	}

	return nil
}

func validateAvatar(avatar string) error {
	if err := validate.Var(avatar, "omitempty,url,max=2048"); err != nil {
		return invalid("avatar must be a URL")
	}

	return nil
}

// validateLinkURL accepts absolute http and https URLs only.
func validateLinkURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return invalid("url must be an absolute http or https URL")
	}

	return nil
}

func validateLinkFields(title, rawURL, description, icon *string) error {
	if title != nil && !lengthBetween(strings.TrimSpace(*title), 1, maxLinkTitleLength) {
		return invalid("title must be 1 to 100 characters")
	}
	if rawURL != nil {
		if err := validateLinkURL(*rawURL); err != nil {
			return err
		}
	}
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLength {
		return invalid("description must be at most 500 characters")
	}
	if icon != nil && utf8.RuneCountInString(*icon) > maxIconLength {
		return invalid("icon must be at most 50 characters")
	}

	return nil
}

func validateDesign(design *entity.ProfileDesign) error {
	if design.Title != nil && utf8.RuneCountInString(*design.Title) > maxProfileTitle {
		return invalid("title must be at most 100 characters")
	}
	if design.Description != nil && utf8.RuneCountInString(*design.Description) > maxDescriptionLength {
		return invalid("description must be at most 500 characters")
	}
	if design.Avatar != nil {
		if err := validateAvatar(*design.Avatar); err != nil {
			return err
		}
	}
	if design.CustomCSS != nil && len(*design.CustomCSS) > maxCustomCSSLength {
		return invalid("customCss is too long")
	}

	colors := map[string]*string{
		"backgroundColor": design.BackgroundColor,
		"textColor":       design.TextColor,
		"buttonColor":     design.ButtonColor,
		"buttonTextColor": design.ButtonTextColor,
	}
	for field, value := range colors {
		if value != nil && validate.Var(*value, "hexcolor") != nil {
			return invalid(field + " must be a hex color")
		}
	}

	enums := []struct {
		field   string
		value   *string
		allowed []string
	}{
		{"buttonStyle", design.ButtonStyle, buttonStyles},
		{"animation", design.Animation, animations},
		{"backgroundPattern", design.BackgroundPattern, backgroundPatterns},
	}
	for _, e := range enums {
		if e.value != nil && !slices.Contains(e.allowed, *e.value) {
			return invalid(e.field + " must be one of " + strings.Join(e.allowed, ", "))
		}
	}

	return nil
}
