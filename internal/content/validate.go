package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidCatalog is returned by Validate when the catalog breaks one of
// its invariants.
var ErrInvalidCatalog = errors.New("invalid content catalog")

var catalogValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("contacthref", func(fl validator.FieldLevel) bool {
		return ValidContactHref(fl.Field().String())
	})
	return v
}

// ValidContactHref reports whether href uses a link scheme the contact card
// knows how to render: mailto with an address, tel with digits, or http(s).
func ValidContactHref(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "mailto":
		return strings.Contains(u.Opaque, "@")
	case "tel":
		digits := strings.TrimPrefix(u.Opaque, "+")
		if digits == "" {
			return false
		}
		for _, r := range digits {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	case "http", "https":
		return u.Host != ""
	default:
		return false
	}
}

// Validate checks the catalog's invariants: required copy is present, tier
// and FAQ ids are unique, process steps are numbered 1..n in order and
// contact links use a supported scheme.
func (c Catalog) Validate() error {
	if err := catalogValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	for i, s := range c.Steps {
		if s.ID != i+1 {
			return fmt.Errorf("%w: step %q has id %d, want %d", ErrInvalidCatalog, s.Title, s.ID, i+1)
		}
	}
	highlighted := 0
	for _, t := range c.Services {
		if t.Highlight {
			highlighted++
		}
	}
	if highlighted > 1 {
		return fmt.Errorf("%w: %d tiers are highlighted, at most one may be", ErrInvalidCatalog, highlighted)
	}
	return nil
}
