package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Comment is a customer review of a toy.
type Comment struct {
	ID        int64
	ToyID     int64
	Author    string
	Content   string
	Rating    int
	CreatedAt time.Time
}

// CommentUpdateParams holds the fields of a partial comment update.
type CommentUpdateParams struct {
	Author  *string
	Content *string
	Rating  *int
}

// ValidRating reports whether r is within [MinRating, MaxRating].
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
