package order

import (
	"fmt"

	"pizzashop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the documented workflow.
//
// State transitions:
//
//	pending ──> preparing ──> ready ──> delivered
//	   │            │           │
//	   └────────────┴───────────┴─────> cancelled
//
// delivered and cancelled are terminal. Status is a value object that
// validates transitions and converts to and from the wire representation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is created
	// without an explicit status.
	Pending

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates the order is ready for pickup or delivery.
	Ready

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was called off. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// ParseStatus converts the wire representation of a status into a Status.
//
// An empty string is a required-value error; a string outside the five valid
// statuses is an invalid-value error. Matching is exact and lowercase.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// ParseStatusOrDefault behaves like ParseStatus but maps an empty string to
// Pending, implementing the creation-time default.
func ParseStatusOrDefault(s string) (Status, error) {
	if s == "" {
		return Pending, nil
	}
	return ParseStatus(s)
}

// Validate checks if the Status value is one of the five valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateTransition checks whether moving from the current status to next is
// allowed without performing the transition.
//
// Allowed transitions:
//   - pending -> preparing
//   - preparing -> ready
//   - ready -> delivered
//   - pending, preparing, ready -> cancelled
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	allowed := map[Status][]Status{
		Pending:   {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Delivered, Cancelled},
	}

	for _, candidate := range allowed[s] {
		if candidate == next {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("cannot transition from %s to %s", s.String(), next.String()),
	)
}

// TransitionTo moves the status to next, enforcing the transition rules.
// Returns the new status on success.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.ValidateTransition(next); err != nil {
		return Unknown, err
	}
	return next, nil
}
