// Package schema defines the form schema data model shared by the builder,
// the validation engine, and every renderer: a FormSchema aggregate holding
// ordered sections, which in turn hold ordered typed fields.
//
// The model is plain serializable data. Render order is always driven by the
// explicit Order attribute, never by slice position; mutations that change
// structure are expected to renumber Order through the builder package.
package schema
