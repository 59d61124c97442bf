// Package pizza contains the Pizza aggregate: a catalog entry with a unique
// name, a description, available toppings and size options, and a price.
// All invariants are enforced in the NewPizza constructor; stored documents
// are rehydrated through RestorePizza.
package pizza
