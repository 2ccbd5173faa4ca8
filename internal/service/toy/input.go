package toy

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jacwu/toy-store/internal/domain"
)

const (
	nameMin              = 2
	nameMax              = 100
	descriptionMin       = 5
	descriptionMax       = 500
	detailDescriptionMax = 5000
	minPrice             = 0.01
)

const (
	msgNameRequired        = "Toy name is required"
	msgNameLength          = "Toy name must be between 2 and 100 characters"
	msgDescriptionRequired = "Toy description is required"
	msgDescriptionLength   = "Toy description must be between 5 and 500 characters"
	msgDetailLength        = "Detail description must not exceed 5000 characters"
	msgPrice               = "Price must be a number greater than 0"
	msgToyTypeID           = "Toy type ID must be an integer greater than 0"
)

// maxSafeInteger is the largest integer a JSON number carries without loss.
const maxSafeInteger = 1<<53 - 1

// CreateToyInput holds the parameters for creating a toy.
// Numbers keep their decoded JSON form so that non-integral ids are reported
// as field errors.
type CreateToyInput struct {
	Name              string
	Description       string
	DetailDescription string
	Price             *float64
	ToyTypeID         *float64
}

// Validate checks all fields and collects all errors.
func (i CreateToyInput) Validate() error {
	var errs []domain.FieldError

	errs = checkText(errs, "name", i.Name, nameMin, nameMax, msgNameRequired, msgNameLength)
	errs = checkText(errs, "description", i.Description, descriptionMin, descriptionMax, msgDescriptionRequired, msgDescriptionLength)
	errs = checkDetail(errs, i.DetailDescription)
	if i.Price == nil || !validPrice(*i.Price) {
		errs = append(errs, domain.FieldError{Field: "price", Message: msgPrice})
	}
	if i.ToyTypeID == nil || !validID(*i.ToyTypeID) {
		errs = append(errs, domain.FieldError{Field: "toyTypeId", Message: msgToyTypeID})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateToyInput holds the parameters for a partial toy update.
type UpdateToyInput struct {
	ID                int64
	Name              *string
	Description       *string
	DetailDescription *string
	Price             *float64
	ToyTypeID         *float64
}

// Validate checks all fields and collects all errors.
func (i UpdateToyInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		errs = checkText(errs, "name", *i.Name, nameMin, nameMax, msgNameRequired, msgNameLength)
	}
	if i.Description != nil {
		errs = checkText(errs, "description", *i.Description, descriptionMin, descriptionMax, msgDescriptionRequired, msgDescriptionLength)
	}
	if i.DetailDescription != nil {
		errs = checkDetail(errs, *i.DetailDescription)
	}
	if i.Price != nil && !validPrice(*i.Price) {
		errs = append(errs, domain.FieldError{Field: "price", Message: msgPrice})
	}
	if i.ToyTypeID != nil && !validID(*i.ToyTypeID) {
		errs = append(errs, domain.FieldError{Field: "toyTypeId", Message: msgToyTypeID})
	}

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

func checkDetail(errs []domain.FieldError, value string) []domain.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > detailDescriptionMax {
		return append(errs, domain.FieldError{Field: "detailDescription", Message: msgDetailLength})
	}
	return errs
}

func validPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= minPrice
}

func validID(f float64) bool {
	return f >= 1 && f <= maxSafeInteger && f == math.Trunc(f)
}
