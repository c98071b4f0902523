// Package validation evaluates candidate-supplied values against a form
// schema. Every renderer delegates here so identical schemas always accept or
// reject identical submissions; no surface carries its own parallel rules.
//
// Outcomes are data, not errors: an Invalid outcome is the expected branch
// for user-facing data-quality conditions and carries a stable reason code
// plus a display message.
package validation
