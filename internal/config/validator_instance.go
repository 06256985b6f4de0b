package config

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// validatorInstance configures and returns the shared validator instance used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report field paths with the document's JSON names, not Go names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("hex6", func(fl validator.FieldLevel) bool {
			return IsHexColor(fl.Field().String())
		})

		_ = v.RegisterValidation("secureurl", func(fl validator.FieldLevel) bool {
			return IsSecureURL(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the
// config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// IsHexColor reports whether s is a well-formed 6-digit hex color ("#RRGGBB").
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// IsSecureURL reports whether a URL is acceptable in a stored document: an
// https URL with a host, or anything targeting localhost so local development
// keeps working. The sanitizer and validator share this rule; if they drift
// apart, a freshly sanitized document could fail validation.
func IsSecureURL(raw string) bool {
	if strings.Contains(strings.ToLower(raw), "localhost") {
		return true
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return strings.EqualFold(parsed.Scheme, "https") && parsed.Host != ""
}
