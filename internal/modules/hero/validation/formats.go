package validation

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

var (
	hexColor  = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbColor  = regexp.MustCompile(`^rgba?\(\s*\d{1,3}%?\s*,\s*\d{1,3}%?\s*,\s*\d{1,3}%?\s*(,\s*(0|1|0?\.\d+|\d{1,3}%)\s*)?\)$`)
	hslColor  = regexp.MustCompile(`^hsla?\(\s*\d{1,3}(deg)?\s*,\s*\d{1,3}%\s*,\s*\d{1,3}%\s*(,\s*(0|1|0?\.\d+|\d{1,3}%)\s*)?\)$`)
	urlScheme = map[string]bool{"http": true, "https": true, "mailto": true, "tel": true}
)

var namedColors = map[string]bool{
	"black": true, "silver": true, "gray": true, "grey": true, "white": true, "maroon": true,
	"red": true, "purple": true, "fuchsia": true, "green": true, "lime": true, "olive": true,
	"yellow": true, "navy": true, "blue": true, "teal": true, "aqua": true, "orange": true,
	"transparent": true, "currentcolor": true, "inherit": true,
}

var videoExtensions = map[string]bool{".mp4": true, ".webm": true, ".ogg": true, ".mov": true}

// IsValidURL accepts absolute http(s)/mailto/tel URLs, root-relative paths and
// fragments.
func IsValidURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "#") {
		return !strings.HasPrefix(raw, "//")
	}
	u, err := url.Parse(raw)
	if err != nil || !urlScheme[strings.ToLower(u.Scheme)] {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	default:
		return u.Opaque != "" || u.Path != ""
	}
}

// IsValidColor accepts hex, rgb()/rgba(), hsl()/hsla() and basic named colors.
func IsValidColor(raw string) bool {
	c := strings.TrimSpace(raw)
	if c == "" {
		return false
	}
	return hexColor.MatchString(c) ||
		rgbColor.MatchString(strings.ToLower(c)) ||
		hslColor.MatchString(strings.ToLower(c)) ||
		namedColors[strings.ToLower(c)]
}

// IsVideoURL reports whether raw ends in a supported video container extension.
func IsVideoURL(raw string) bool {
	p := raw
	if u, err := url.Parse(raw); err == nil {
		p = u.Path
	}
	return videoExtensions[strings.ToLower(path.Ext(p))]
}
