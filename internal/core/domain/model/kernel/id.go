package kernel

import (
	"pizzashop/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed indicates that an ID was not created through one of the
// constructor functions. This error is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is a value object that represents the opaque identifier of a stored document.
// It wraps a UUID string so identifiers stay immutable and comparable regardless
// of which store driver assigned them.
//
// The zero value of ID is invalid and must be constructed using NewID or
// IDFromString.
//
// Example usage:
//
//	// Mint a new identifier for a document about to be persisted
//	id := kernel.NewID()
//
//	// Reconstruct from a path parameter
//	id, err := kernel.IDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type ID struct {
	value string
}

// NewID mints a new random identifier. This is the primary way to create
// identifiers for documents that are about to be persisted.
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// IDFromString reconstructs an ID from its string representation, typically a
// path parameter or a reference stored inside another document.
//
// The identifier is treated as opaque: any non-empty string is accepted, so ids
// assigned by a different store generation remain resolvable.
func IDFromString(s string) (ID, error) {
	if s == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: s}, nil
}

// String returns the identifier as it is stored and exposed to callers.
func (i ID) String() string {
	return i.value
}

// IsEqual compares two identifiers for equality.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks if the ID is properly constructed.
// Returns ErrIDIsNotConstructed for a zero-value ID.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
