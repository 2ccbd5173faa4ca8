package domain

// Toy is a catalogue item. ToyTypeID must reference an existing ToyType when
// the toy is created or re-typed; it is not re-checked on read.
type Toy struct {
	ID                int64
	Name              string
	Description       string
	DetailDescription string
	Price             float64
	ToyTypeID         int64
}

// ToyUpdateParams holds the fields of a partial toy update.
type ToyUpdateParams struct {
	Name              *string
	Description       *string
	DetailDescription *string
	Price             *float64
	ToyTypeID         *int64
}

// ToyWithType is a toy annotated with its toy type.
// Type is nil when the referenced type no longer exists.
type ToyWithType struct {
	Toy
	Type *ToyType
}
