package validation

import "fmt"

// Reason codes carried by Invalid outcomes. Renderers key display behaviour
// off these; messages are advisory text.
const (
	CodeRequiredMissing  = "REQUIRED_MISSING"
	CodeLengthOutOfRange = "LENGTH_OUT_OF_RANGE"
	CodeInvalidFormat    = "INVALID_FORMAT"
	CodeInvalidOption    = "INVALID_OPTION"
	CodeNotNumeric       = "NOT_NUMERIC"
	CodeOutOfRange       = "OUT_OF_RANGE"
	CodeInvalidFileType  = "INVALID_FILE_TYPE"
	CodeFileTooLarge     = "FILE_TOO_LARGE"
)

// Outcome is the result of validating one field. The zero value is valid.
type Outcome struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// Valid reports whether the outcome carries no violation.
func (o Outcome) Valid() bool { return o.Code == "" }

// Ok is the valid outcome.
func Ok() Outcome { return Outcome{} }

// Invalid builds a failed outcome with a formatted message.
func Invalid(code, format string, args ...any) Outcome {
	return Outcome{Code: code, Message: fmt.Sprintf(format, args...)}
}

// FileValue is the shape renderers hand over for file kind fields: the
// original filename plus its size in bytes. The core never touches file
// contents; storage and scanning live behind the submission boundary.
type FileValue struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// RangeValue is the shape salary kind fields may submit when the candidate
// provides an expected range instead of a single number.
type RangeValue struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
