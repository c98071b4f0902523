// Package builder implements the mutation engine for form schemas. Every
// operation is a pure transform: it validates its preconditions, clones the
// input schema, applies the change, renumbers Order values, and returns the
// new value. A failed operation returns an error and leaves the caller's
// schema untouched, so there is no partial-mutation state to roll back.
package builder
