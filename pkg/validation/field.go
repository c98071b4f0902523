package validation

import (
	"encoding/json"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]{5,19}$`)
)

const dateLayout = "2006-01-02"

// ValidateField evaluates a single value against the field's kind and
// validation attributes. Attributes that do not apply to the kind are
// ignored. Presence is checked first and is kind-independent: a required
// field with an absent or empty value fails with REQUIRED_MISSING before any
// format rule runs.
func ValidateField(field schema.FormField, value any) Outcome {
	if isEmpty(value) {
		if field.Required {
			return Invalid(CodeRequiredMissing, "%s is required", displayName(field))
		}
		return Ok()
	}

	switch field.Kind {
	case schema.KindText, schema.KindTextarea, schema.KindLocation:
		return validateText(field, value)
	case schema.KindEmail:
		return validateEmail(field, value)
	case schema.KindPhone:
		return validatePhone(field, value)
	case schema.KindDate:
		return validateDate(field, value)
	case schema.KindSelect, schema.KindRadio:
		return validateChoice(field, value)
	case schema.KindCheckbox:
		return validateMultiChoice(field, value)
	case schema.KindNumber:
		return validateNumber(field, value)
	case schema.KindSalary:
		return validateSalary(field, value)
	case schema.KindFile:
		return validateFile(field, value)
	default:
		// Unknown kinds are rejected at parse time; treat a stray one as a
		// format failure rather than panicking mid-submission.
		return Invalid(CodeInvalidFormat, "%s has unsupported kind %q", displayName(field), field.Kind)
	}
}

func validateText(field schema.FormField, value any) Outcome {
	text, ok := stringValue(value)
	if !ok {
		return Invalid(CodeInvalidFormat, "%s must be text", displayName(field))
	}
	return checkLength(field, text)
}

func validateEmail(field schema.FormField, value any) Outcome {
	text, ok := stringValue(value)
	if !ok || !emailPattern.MatchString(strings.TrimSpace(text)) {
		return Invalid(CodeInvalidFormat, "%s must be a valid email address", displayName(field))
	}
	return Ok()
}

func validatePhone(field schema.FormField, value any) Outcome {
	text, ok := stringValue(value)
	if !ok || !phonePattern.MatchString(strings.TrimSpace(text)) {
		return Invalid(CodeInvalidFormat, "%s must be a valid phone number", displayName(field))
	}
	return Ok()
}

func validateDate(field schema.FormField, value any) Outcome {
	text, ok := stringValue(value)
	if !ok {
		return Invalid(CodeInvalidFormat, "%s must be a date", displayName(field))
	}
	if _, err := time.Parse(dateLayout, strings.TrimSpace(text)); err != nil {
		return Invalid(CodeInvalidFormat, "%s must be a date in YYYY-MM-DD format", displayName(field))
	}
	return Ok()
}

func validateChoice(field schema.FormField, value any) Outcome {
	text, ok := stringValue(value)
	if !ok || !hasOptionValue(field, text) {
		return Invalid(CodeInvalidOption, "%s must be one of the available options", displayName(field))
	}
	return Ok()
}

func validateMultiChoice(field schema.FormField, value any) Outcome {
	selected, ok := stringSlice(value)
	if !ok {
		return Invalid(CodeInvalidOption, "%s must be a list of options", displayName(field))
	}
	for _, item := range selected {
		if !hasOptionValue(field, item) {
			return Invalid(CodeInvalidOption, "%s includes %q which is not an available option", displayName(field), item)
		}
	}
	return Ok()
}

func validateNumber(field schema.FormField, value any) Outcome {
	number, ok := numericValue(value)
	if !ok {
		return Invalid(CodeNotNumeric, "%s must be a number", displayName(field))
	}
	return checkRange(field, number)
}

func validateSalary(field schema.FormField, value any) Outcome {
	if rng, ok := rangeValue(value); ok {
		if rng.Min > rng.Max {
			return Invalid(CodeOutOfRange, "%s range minimum exceeds its maximum", displayName(field))
		}
		if outcome := checkRange(field, rng.Min); !outcome.Valid() {
			return outcome
		}
		return checkRange(field, rng.Max)
	}

	number, ok := numericValue(value)
	if !ok {
		return Invalid(CodeNotNumeric, "%s must be a number or a range", displayName(field))
	}
	return checkRange(field, number)
}

func validateFile(field schema.FormField, value any) Outcome {
	file, ok := fileValue(value)
	if !ok {
		return Invalid(CodeInvalidFormat, "%s must be a file", displayName(field))
	}

	if len(field.Validation.FileTypes) > 0 {
		ext := strings.ToLower(filepath.Ext(file.Name))
		if !allowedExtension(field.Validation.FileTypes, ext) {
			return Invalid(CodeInvalidFileType, "%s does not accept %s files", displayName(field), extLabel(ext))
		}
	}
	if max := field.Validation.MaxFileSize; max > 0 && file.Size > max {
		return Invalid(CodeFileTooLarge, "%s exceeds the %d byte limit", displayName(field), max)
	}
	return Ok()
}

func checkLength(field schema.FormField, text string) Outcome {
	length := len(text)
	min := field.Validation.MinLength
	max := field.Validation.MaxLength
	if min != nil && length < *min {
		return Invalid(CodeLengthOutOfRange, "%s must be at least %d characters", displayName(field), *min)
	}
	if max != nil && length > *max {
		return Invalid(CodeLengthOutOfRange, "%s must be at most %d characters", displayName(field), *max)
	}
	return Ok()
}

func checkRange(field schema.FormField, number float64) Outcome {
	min := field.Validation.Min
	max := field.Validation.Max
	if min != nil && number < *min {
		return Invalid(CodeOutOfRange, "%s must be at least %v", displayName(field), *min)
	}
	if max != nil && number > *max {
		return Invalid(CodeOutOfRange, "%s must be at most %v", displayName(field), *max)
	}
	return Ok()
}

func displayName(field schema.FormField) string {
	if field.Label != "" {
		return field.Label
	}
	return field.ID
}

func hasOptionValue(field schema.FormField, value string) bool {
	for _, opt := range field.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

func allowedExtension(fileTypes []string, ext string) bool {
	if ext == "" {
		return false
	}
	for _, allowed := range fileTypes {
		normalized := strings.ToLower(strings.TrimSpace(allowed))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if normalized == ext {
			return true
		}
	}
	return false
}

func extLabel(ext string) string {
	if ext == "" {
		return "extensionless"
	}
	return ext
}

func isEmpty(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(typed) == ""
	case []any:
		return len(typed) == 0
	case []string:
		return len(typed) == 0
	case FileValue:
		return typed.Name == "" && typed.Size == 0
	case *FileValue:
		return typed == nil || (typed.Name == "" && typed.Size == 0)
	default:
		return false
	}
}

func stringValue(value any) (string, bool) {
	text, ok := value.(string)
	return text, ok
}

func stringSlice(value any) ([]string, bool) {
	switch typed := value.(type) {
	case []string:
		return typed, true
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			text, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, text)
		}
		return out, true
	case string:
		// Single selection posted without list wrapping.
		return []string{typed}, true
	default:
		return nil, false
	}
}

func numericValue(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case json.Number:
		parsed, err := typed.Float64()
		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

func rangeValue(value any) (RangeValue, bool) {
	switch typed := value.(type) {
	case RangeValue:
		return typed, true
	case *RangeValue:
		if typed == nil {
			return RangeValue{}, false
		}
		return *typed, true
	case map[string]any:
		min, minOK := numericValue(typed["min"])
		max, maxOK := numericValue(typed["max"])
		if !minOK || !maxOK {
			return RangeValue{}, false
		}
		return RangeValue{Min: min, Max: max}, true
	default:
		return RangeValue{}, false
	}
}

func fileValue(value any) (FileValue, bool) {
	switch typed := value.(type) {
	case FileValue:
		return typed, true
	case *FileValue:
		if typed == nil {
			return FileValue{}, false
		}
		return *typed, true
	case map[string]any:
		name, ok := typed["name"].(string)
		if !ok || name == "" {
			return FileValue{}, false
		}
		size, _ := numericValue(typed["size"])
		return FileValue{Name: name, Size: int64(size)}, true
	default:
		return FileValue{}, false
	}
}
