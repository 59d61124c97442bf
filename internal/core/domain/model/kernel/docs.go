// Package kernel contains shared value objects used by all aggregates:
// the opaque document identifier and the constructor guard that keeps
// domain objects from being used as bare zero values.
package kernel
