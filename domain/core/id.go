package core

import (
	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// OperationID tags the log lines of one open/filter/save sequence
type OperationID ID

// NewOperationID creates a new operation identifier
func NewOperationID() OperationID {
	return OperationID(NewID())
}

func (id OperationID) String() string {
	return string(id)
}
