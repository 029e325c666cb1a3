package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
)

// FieldValidator is an extra check attached to a field id or a field type.
type FieldValidator func(def schema.FieldDefinition, value any, all schema.Props) []ValidationError

// ValidatorSet is an immutable collection of extra field validators. Build it
// once and share it; there is no way to add validators afterwards.
type ValidatorSet struct {
	byField map[string][]FieldValidator
	byType  map[schema.FieldType][]FieldValidator
}

type Option func(*ValidatorSet)

func WithFieldValidator(fieldID string, fn FieldValidator) Option {
	return func(s *ValidatorSet) { s.byField[fieldID] = append(s.byField[fieldID], fn) }
}

func WithTypeValidator(t schema.FieldType, fn FieldValidator) Option {
	return func(s *ValidatorSet) { s.byType[t] = append(s.byType[t], fn) }
}

func NewValidatorSet(opts ...Option) *ValidatorSet {
	s := &ValidatorSet{
		byField: map[string][]FieldValidator{},
		byType:  map[schema.FieldType][]FieldValidator{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultValidatorSet wires the button checks and the per-item checks for
// collections of buttons and media.
func DefaultValidatorSet() *ValidatorSet {
	return NewValidatorSet(
		WithTypeValidator(schema.FieldButton, buttonValidator),
		WithFieldValidator("content.buttons", buttonListValidator),
		WithFieldValidator("gallery", mediaListValidator),
	)
}

func buttonValidator(def schema.FieldDefinition, value any, _ schema.Props) []ValidationError {
	switch b := value.(type) {
	case schema.ButtonConfig:
		return ValidateButtonConfig(b, def.ID)
	case *schema.ButtonConfig:
		if b != nil {
			return ValidateButtonConfig(*b, def.ID)
		}
	}
	return nil
}

func buttonListValidator(def schema.FieldDefinition, value any, _ schema.Props) []ValidationError {
	list, _ := value.([]schema.ButtonConfig)
	var out []ValidationError
	for i, b := range list {
		out = append(out, ValidateButtonConfig(b, fmt.Sprintf("%s[%d]", def.ID, i))...)
	}
	return out
}

func mediaListValidator(def schema.FieldDefinition, value any, _ schema.Props) []ValidationError {
	list, _ := value.([]schema.MediaConfig)
	var out []ValidationError
	for i, m := range list {
		out = append(out, ValidateMediaConfig(m, fmt.Sprintf("%s[%d]", def.ID, i))...)
	}
	return out
}

// ValidateField runs the declared rules, then the type checks, then any extra
// validators registered for the field id or type. A nil set means no extras.
func (s *ValidatorSet) ValidateField(def schema.FieldDefinition, value any, all schema.Props) []ValidationError {
	out := []ValidationError{}
	if isEmpty(value) {
		if def.Required || hasRule(def, schema.RuleRequired) {
			out = append(out, Errorf(def.ID, CodeRequiredField, requiredMessage(def)))
		}
		return out
	}
	for _, r := range def.Rules {
		if e, failed := applyRule(def, r, value, all); failed {
			out = append(out, e)
		}
	}
	out = append(out, typeChecks(def, value)...)
	if s != nil {
		for _, fn := range s.byField[def.ID] {
			out = append(out, fn(def, value, all)...)
		}
		for _, fn := range s.byType[def.Type] {
			out = append(out, fn(def, value, all)...)
		}
	}
	return out
}

func hasRule(def schema.FieldDefinition, t schema.RuleType) bool {
	for _, r := range def.Rules {
		if r.Type == t {
			return true
		}
	}
	return false
}

func requiredMessage(def schema.FieldDefinition) string {
	for _, r := range def.Rules {
		if r.Type == schema.RuleRequired && r.Message != "" {
			return r.Message
		}
	}
	return def.Label + " is required"
}

func applyRule(def schema.FieldDefinition, r schema.Rule, value any, all schema.Props) (ValidationError, bool) {
	msg := func(fallback string) string {
		if r.Message != "" {
			return r.Message
		}
		return fallback
	}
	switch r.Type {
	case schema.RuleRequired:
		// handled before the rules run
	case schema.RuleMinLength:
		if s, ok := value.(string); ok && utf8.RuneCountInString(s) < r.Length {
			return Errorf(def.ID, CodeMinLength, msg(fmt.Sprintf("%s must be at least %d characters", def.Label, r.Length))), true
		}
	case schema.RuleMaxLength:
		if s, ok := value.(string); ok && utf8.RuneCountInString(s) > r.Length {
			return Errorf(def.ID, CodeMaxLength, msg(fmt.Sprintf("%s must be at most %d characters", def.Label, r.Length))), true
		}
	case schema.RulePattern:
		if s, ok := value.(string); ok && r.Pattern != nil && !r.Pattern.MatchString(s) {
			return Errorf(def.ID, CodePatternMismatch, msg(def.Label+" has an invalid format")), true
		}
	case schema.RuleCustom:
		if r.Check != nil && !r.Check(value, all) {
			return Errorf(def.ID, CodeCustom, msg(def.Label+" is invalid")), true
		}
	}
	return ValidationError{}, false
}

func typeChecks(def schema.FieldDefinition, value any) []ValidationError {
	switch def.Type {
	case schema.FieldURL:
		if s, ok := value.(string); !ok || !IsValidURL(s) {
			return []ValidationError{Errorf(def.ID, CodeInvalidURL, def.Label+" must be an absolute URL, a path starting with / or a #fragment")}
		}
	case schema.FieldColor:
		if s, ok := value.(string); !ok || !IsValidColor(s) {
			return []ValidationError{Errorf(def.ID, CodeInvalidColor, def.Label+" must be a hex, rgb(), hsl() or named color")}
		}
	case schema.FieldNumber:
		n, ok := toFloat(value)
		if !ok {
			return []ValidationError{Errorf(def.ID, CodeInvalidNumber, def.Label+" must be a number")}
		}
		if def.Min != nil && n < *def.Min {
			return []ValidationError{Errorf(def.ID, CodeMinValue, fmt.Sprintf("%s must be at least %g", def.Label, *def.Min))}
		}
		if def.Max != nil && n > *def.Max {
			return []ValidationError{Errorf(def.ID, CodeMaxValue, fmt.Sprintf("%s must be at most %g", def.Label, *def.Max))}
		}
	case schema.FieldImage, schema.FieldVideo:
		switch m := value.(type) {
		case schema.MediaConfig:
			return ValidateMediaConfig(m, def.ID)
		case *schema.MediaConfig:
			return ValidateMediaConfig(*m, def.ID)
		}
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
