// Package queries contains the read-side operations. Each query is a guarded
// object whose constructor validates its parameters; handlers read through
// the repository ports and never mutate state. Empty result sets are valid
// outcomes, not errors.
package queries
