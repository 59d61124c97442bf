package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when a nil
// error is passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their designated constructor functions. A zero-value struct fails validation,
// which keeps invariants established by the constructor from being bypassed.
//
// Embed the guard as a private field, set it with NewConstructorGuard inside the
// constructor, and check it in the object's Validate method:
//
//	type CreatePizzaCommand struct {
//	    name  string
//	    guard kernel.ConstructorGuard
//	}
//
//	func (c CreatePizzaCommand) Validate() error {
//	    return c.guard.Validate(ErrCreatePizzaCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call this in the
// constructor of every guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was created through its
// constructor. Returns validationError for zero-value objects, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
