package validation

import (
	"fmt"
	"strings"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
)

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func ValidateMediaConfig(m schema.MediaConfig, field string) []ValidationError {
	var out []ValidationError
	if strings.TrimSpace(m.URL) == "" {
		out = append(out, Errorf(join(field, "url"), CodeRequiredField, "Media URL is required"))
	} else if !IsValidURL(m.URL) {
		out = append(out, Errorf(join(field, "url"), CodeInvalidURL, "Media URL is not a valid URL"))
	}
	switch m.Type {
	case schema.MediaImage:
		if strings.TrimSpace(m.Alt) == "" {
			out = append(out, Errorf(join(field, "alt"), CodeAccessibilityViolation, "Images require alternative text"))
		}
	case schema.MediaVideo:
		if m.URL != "" && !IsVideoURL(m.URL) {
			out = append(out, Errorf(join(field, "url"), CodeInvalidFormat, "Video must be an .mp4, .webm, .ogg or .mov file"))
		}
	default:
		out = append(out, Errorf(join(field, "type"), CodeInvalidFormat, fmt.Sprintf("Unsupported media type %q", m.Type)))
	}
	return out
}

func ValidateButtonConfig(b schema.ButtonConfig, field string) []ValidationError {
	var out []ValidationError
	text := strings.TrimSpace(b.Text)
	link := strings.TrimSpace(b.URL)
	switch {
	case text != "" && link == "":
		out = append(out, Errorf(join(field, "url"), CodeDependentFieldRequired, "Button URL is required when button text is set"))
	case link != "" && !IsValidURL(link):
		out = append(out, Errorf(join(field, "url"), CodeInvalidURL, "Button URL must be an absolute URL, a path starting with / or a #fragment"))
	}
	if text == "" && b.Icon != "" && strings.TrimSpace(b.AriaLabel) == "" {
		out = append(out, Warnf(join(field, "ariaLabel"), CodeAccessibilityWarning, "Icon-only buttons should have an aria label"))
	}
	return out
}

func ValidateBackgroundConfig(bg schema.BackgroundConfig, field string) []ValidationError {
	var out []ValidationError
	switch bg.Type {
	case schema.BackgroundNone, "":
	case schema.BackgroundColor:
		out = append(out, checkColor(join(field, "color"), bg.Color, "Background color")...)
	case schema.BackgroundGradient:
		if bg.Gradient == nil || len(bg.Gradient.Colors) < 2 {
			out = append(out, Errorf(join(field, "gradient.colors"), CodeInvalidFormat, "Gradient needs at least two color stops"))
			break
		}
		for i, stop := range bg.Gradient.Colors {
			out = append(out, checkColor(fmt.Sprintf("%s.gradient.colors[%d].color", field, i), stop.Color, "Gradient color")...)
		}
	case schema.BackgroundImage:
		if bg.Image == nil {
			out = append(out, Errorf(join(field, "image"), CodeRequiredField, "Background image is required"))
			break
		}
		out = append(out, ValidateMediaConfig(*bg.Image, join(field, "image"))...)
	case schema.BackgroundVideo:
		if bg.Video == nil {
			out = append(out, Errorf(join(field, "video"), CodeRequiredField, "Background video is required"))
			break
		}
		out = append(out, ValidateMediaConfig(*bg.Video, join(field, "video"))...)
	default:
		out = append(out, Errorf(join(field, "type"), CodeInvalidFormat, fmt.Sprintf("Unsupported background type %q", bg.Type)))
	}
	if o := bg.Overlay; o != nil && o.Enabled {
		out = append(out, checkColor(join(field, "overlay.color"), o.Color, "Overlay color")...)
		out = append(out, checkRange(join(field, "overlay.opacity"), o.Opacity, 0, 1, "Overlay opacity")...)
	}
	return out
}

func checkColor(field, value, label string) []ValidationError {
	if strings.TrimSpace(value) == "" {
		return []ValidationError{Errorf(field, CodeRequiredField, label+" is required")}
	}
	if !IsValidColor(value) {
		return []ValidationError{Errorf(field, CodeInvalidColor, label+" must be a hex, rgb(), hsl() or named color")}
	}
	return nil
}

func checkRange(field string, n, min, max float64, label string) []ValidationError {
	if n < min {
		return []ValidationError{Errorf(field, CodeMinValue, fmt.Sprintf("%s must be at least %g", label, min))}
	}
	if n > max {
		return []ValidationError{Errorf(field, CodeMaxValue, fmt.Sprintf("%s must be at most %g", label, max))}
	}
	return nil
}
