package toytype

import (
	"strings"
	"unicode/utf8"

	"github.com/jacwu/toy-store/internal/domain"
)

const (
	nameMin        = 2
	nameMax        = 50
	descriptionMin = 5
	descriptionMax = 200
	iconMax        = 10
)

const (
	msgNameRequired        = "Toy type name is required"
	msgNameLength          = "Toy type name must be between 2 and 50 characters"
	msgDescriptionRequired = "Toy type description is required"
	msgDescriptionLength   = "Toy type description must be between 5 and 200 characters"
	msgIconLength          = "Icon must not exceed 10 characters"
)

// CreateToyTypeInput holds the parameters for creating a toy type.
type CreateToyTypeInput struct {
	Name        string
	Description string
	Icon        *string
}

// Validate checks all fields and collects all errors.
func (i CreateToyTypeInput) Validate() error {
	var errs []domain.FieldError

	errs = checkText(errs, "name", i.Name, nameMin, nameMax, msgNameRequired, msgNameLength)
	errs = checkText(errs, "description", i.Description, descriptionMin, descriptionMax, msgDescriptionRequired, msgDescriptionLength)
	errs = checkIcon(errs, i.Icon)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateToyTypeInput holds the parameters for a partial toy type update.
// A nil field keeps the stored value.
type UpdateToyTypeInput struct {
	ID          int64
	Name        *string
	Description *string
	Icon        *string
}

// Validate checks all fields and collects all errors.
func (i UpdateToyTypeInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		errs = checkText(errs, "name", *i.Name, nameMin, nameMax, msgNameRequired, msgNameLength)
	}
	if i.Description != nil {
		errs = checkText(errs, "description", *i.Description, descriptionMin, descriptionMax, msgDescriptionRequired, msgDescriptionLength)
	}
	errs = checkIcon(errs, i.Icon)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkText(errs []domain.FieldError, field, value string, lo, hi int, requiredMsg, lengthMsg string) []domain.FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return append(errs, domain.FieldError{Field: field, Message: requiredMsg})
	}
	if n := utf8.RuneCountInString(value); n < lo || n > hi {
		return append(errs, domain.FieldError{Field: field, Message: lengthMsg})
	}
	return errs
}

func checkIcon(errs []domain.FieldError, icon *string) []domain.FieldError {
	if icon != nil && utf8.RuneCountInString(strings.TrimSpace(*icon)) > iconMax {
		return append(errs, domain.FieldError{Field: "icon", Message: msgIconLength})
	}
	return errs
}
