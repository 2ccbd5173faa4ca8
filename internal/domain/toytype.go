package domain

// ToyType is a category classification of a toy (e.g. educational, remote-control).
type ToyType struct {
	ID          int64
	Name        string
	Description string
	Icon        *string
}

// ToyTypeUpdateParams holds the fields of a partial toy type update.
// A nil field keeps the stored value.
type ToyTypeUpdateParams struct {
	Name        *string
	Description *string
	Icon        *string
}
