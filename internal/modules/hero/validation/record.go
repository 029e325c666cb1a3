package validation

import (
	"strings"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
)

// Validator runs whole-record validation against a registry of field
// definitions and a set of extra field validators.
type Validator struct {
	registry *schema.Registry
	set      *ValidatorSet
}

func NewValidator(registry *schema.Registry, set *ValidatorSet) *Validator {
	if registry == nil {
		registry = schema.DefaultRegistry()
	}
	if set == nil {
		set = DefaultValidatorSet()
	}
	return &Validator{registry: registry, set: set}
}

var defaultValidator = NewValidator(schema.DefaultRegistry(), DefaultValidatorSet())

// ValidateHeroSection validates p with the built-in registry and validators.
func ValidateHeroSection(p schema.Props) Result { return defaultValidator.ValidateHeroSection(p) }

// ValidateField validates one field with the built-in validators.
func ValidateField(def schema.FieldDefinition, value any, all schema.Props) []ValidationError {
	return defaultValidator.set.ValidateField(def, value, all)
}

func (v *Validator) ValidateField(def schema.FieldDefinition, value any, all schema.Props) []ValidationError {
	return v.set.ValidateField(def, value, all)
}

func (v *Validator) ValidateHeroSection(p schema.Props) Result {
	if p == nil {
		return NewResult([]ValidationError{Errorf("variant", CodeRequiredField, "Hero section is empty")})
	}
	var out []ValidationError
	base := p.Common()

	if strings.TrimSpace(base.ID) == "" {
		out = append(out, Errorf("id", CodeRequiredField, "Hero section id is required"))
	}
	switch {
	case base.Variant == "":
		out = append(out, Errorf("variant", CodeRequiredField, "Hero section variant is required"))
	case !base.Variant.Valid():
		out = append(out, Errorf("variant", CodeInvalidFormat, "Unknown hero variant "+string(base.Variant)))
	case base.Variant != p.Kind():
		out = append(out, Errorf("variant", CodeInvalidFormat, "Variant tag does not match the record shape"))
	}

	if base.Accessibility == nil {
		out = append(out, Errorf("accessibility", CodeAccessibilityViolation, "Accessibility configuration is required"))
	} else if len(base.Accessibility.AriaLabels) == 0 {
		out = append(out, Warnf("accessibility.ariaLabels", CodeAccessibilityWarning, "Consider adding ARIA labels for screen readers"))
	}

	out = append(out, validateTheme(base.Theme)...)
	out = append(out, ValidateBackgroundConfig(*schema.BackgroundOf(p), "background")...)

	if def, ok := v.registry.Lookup(p.Kind()); ok {
		for _, f := range def.Fields {
			out = append(out, v.set.ValidateField(f, f.Get(p), p)...)
		}
	}
	return NewResult(out)
}

func validateTheme(t *schema.ThemeConfig) []ValidationError {
	var th schema.ThemeConfig
	if t != nil {
		th = *t
	}
	var out []ValidationError
	for _, c := range []struct{ field, value, label string }{
		{"theme.primaryColor", th.PrimaryColor, "Primary color"},
		{"theme.secondaryColor", th.SecondaryColor, "Secondary color"},
		{"theme.backgroundColor", th.BackgroundColor, "Background color"},
		{"theme.textColor", th.TextColor, "Text color"},
	} {
		out = append(out, checkColor(c.field, c.value, c.label)...)
	}
	return out
}
