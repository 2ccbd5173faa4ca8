package comment

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jacwu/toy-store/internal/domain"
)

const (
	authorMax  = 50
	contentMax = 1000
)

const (
	msgAuthorRequired  = "Comment author is required"
	msgAuthorLength    = "Comment author must be between 1 and 50 characters"
	msgContentRequired = "Comment content is required"
	msgContentLength   = "Comment content must be between 1 and 1000 characters"
	msgRating          = "Rating must be an integer between 1 and 5"
)

// CreateCommentInput holds the parameters for reviewing a toy.
type CreateCommentInput struct {
	ToyID   int64
	Author  string
	Content string
	Rating  *float64
}

// Validate checks all fields and collects all errors.
func (i CreateCommentInput) Validate() error {
	var errs []domain.FieldError

	errs = checkText(errs, "author", i.Author, authorMax, msgAuthorRequired, msgAuthorLength)
	errs = checkText(errs, "content", i.Content, contentMax, msgContentRequired, msgContentLength)
	if i.Rating == nil || !validRating(*i.Rating) {
		errs = append(errs, domain.FieldError{Field: "rating", Message: msgRating})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCommentInput holds the parameters for a partial comment update.
type UpdateCommentInput struct {
	ID      int64
	Author  *string
	Content *string
	Rating  *float64
}

// Validate checks all fields and collects all errors.
func (i UpdateCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.Author != nil {
		errs = checkText(errs, "author", *i.Author, authorMax, msgAuthorRequired, msgAuthorLength)
	}
	if i.Content != nil {
		errs = checkText(errs, "content", *i.Content, contentMax, msgContentRequired, msgContentLength)
	}
	if i.Rating != nil && !validRating(*i.Rating) {
		errs = append(errs, domain.FieldError{Field: "rating", Message: msgRating})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkText(errs []domain.FieldError, field, value string, hi int, requiredMsg, lengthMsg string) []domain.FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return append(errs, domain.FieldError{Field: field, Message: requiredMsg})
	}
	if utf8.RuneCountInString(value) > hi {
		return append(errs, domain.FieldError{Field: field, Message: lengthMsg})
	}
	return errs
}

// validRating accepts whole numbers in [domain.MinRating, domain.MaxRating].
func validRating(r float64) bool {
	return r == math.Trunc(r) && domain.ValidRating(int(r))
}
