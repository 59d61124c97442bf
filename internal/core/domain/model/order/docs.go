// Package order contains the Order aggregate and its Status state machine.
// An order references one or more catalog pizzas by identifier, carries
// optional customer contact details, and moves through an ordered status
// chain: pending -> preparing -> ready -> delivered, with cancellation
// allowed from any non-terminal status.
package order
