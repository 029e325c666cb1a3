// Package validation checks hero records against their field definitions and
// the structural rules of the shared value types. Problems are collected into
// lists; nothing here returns a Go error for bad data.
package validation

type Code string

const (
	CodeRequiredField          Code = "REQUIRED_FIELD"
	CodeMinLength              Code = "MIN_LENGTH"
	CodeMaxLength              Code = "MAX_LENGTH"
	CodePatternMismatch        Code = "PATTERN_MISMATCH"
	CodeCustom                 Code = "CUSTOM_VALIDATION"
	CodeInvalidURL             Code = "INVALID_URL"
	CodeInvalidColor           Code = "INVALID_COLOR"
	CodeInvalidNumber          Code = "INVALID_NUMBER"
	CodeMinValue               Code = "MIN_VALUE"
	CodeMaxValue               Code = "MAX_VALUE"
	CodeAccessibilityViolation Code = "ACCESSIBILITY_VIOLATION"
	CodeAccessibilityWarning   Code = "ACCESSIBILITY_WARNING"
	CodeDependentFieldRequired Code = "DEPENDENT_FIELD_REQUIRED"
	CodeInvalidFormat          Code = "INVALID_FORMAT"
	CodeUnauthorizedDomain     Code = "UNAUTHORIZED_DOMAIN"
	CodeMaliciousContent       Code = "MALICIOUS_CONTENT"
	CodeFileTooLarge           Code = "FILE_TOO_LARGE"
	CodeInvalidFileType        Code = "INVALID_FILE_TYPE"
	CodeCorruptedFile          Code = "CORRUPTED_FILE"
	CodeLargeDimensions        Code = "LARGE_DIMENSIONS"
	CodeLongDuration           Code = "LONG_DURATION"
	CodeInsecureURL            Code = "INSECURE_URL"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type ValidationError struct {
	Field   string   `json:"field"`
	Message string   `json:"message"`
	Type    Severity `json:"type"`
	Code    Code     `json:"code"`
}

func Errorf(field string, code Code, msg string) ValidationError {
	return ValidationError{Field: field, Message: msg, Type: SeverityError, Code: code}
}

func Warnf(field string, code Code, msg string) ValidationError {
	return ValidationError{Field: field, Message: msg, Type: SeverityWarning, Code: code}
}

// Result is the outcome of a whole-record validation. IsValid depends on
// Errors only.
type Result struct {
	IsValid  bool              `json:"isValid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

// NewResult splits a mixed list by severity.
func NewResult(all []ValidationError) Result {
	r := Result{Errors: []ValidationError{}, Warnings: []ValidationError{}}
	for _, e := range all {
		if e.Type == SeverityWarning {
			r.Warnings = append(r.Warnings, e)
		} else {
			r.Errors = append(r.Errors, e)
		}
	}
	r.IsValid = len(r.Errors) == 0
	return r
}

// HasCode reports whether any entry carries code.
func HasCode(list []ValidationError, code Code) bool {
	for _, e := range list {
		if e.Code == code {
			return true
		}
	}
	return false
}
