// Package commands contains the business operations that modify system state.
// All commands follow a consistent pattern: a guarded command object whose
// constructor performs fail-fast input validation before any I/O, and a
// handler that coordinates repository calls.
//
// The store contract offers no transactions; every operation issues at most
// one write, so handlers take repository ports directly. Cross-document rules
// (catalog name uniqueness, pizza reference resolution) live in the handlers.
package commands
