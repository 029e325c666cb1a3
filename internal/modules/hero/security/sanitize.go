package security

import "regexp"

type threat struct {
	name    string
	pattern *regexp.Regexp
}

var threats = []threat{
	{"script tag", regexp.MustCompile(`(?i)<\s*script\b`)},
	{"javascript URI", regexp.MustCompile(`(?i)javascript\s*:`)},
	{"inline event handler", regexp.MustCompile(`(?i)<[^>]*\son[a-z]+\s*=`)},
	{"iframe tag", regexp.MustCompile(`(?i)<\s*iframe\b`)},
}

var (
	scriptBlock  = regexp.MustCompile(`(?is)<\s*script\b[^>]*>.*?<\s*/\s*script\s*>`)
	scriptTag    = regexp.MustCompile(`(?i)<\s*/?\s*script\b[^>]*>`)
	eventHandler = regexp.MustCompile(`(?i)(<[^>]*?)\s+on[a-z]+\s*=\s*("[^"]*"|'[^']*'|[^\s>]*)`)
	jsURI        = regexp.MustCompile(`(?i)javascript\s*:`)
)

// detectThreat returns the name of the first dangerous pattern s contains.
func detectThreat(s string) (string, bool) {
	for _, t := range threats {
		if t.pattern.MatchString(s) {
			return t.name, true
		}
	}
	return "", false
}

// SanitizeString strips script blocks, inline event handler attributes and
// javascript: URIs. Removal repeats until the string is stable so nested
// input cannot reassemble a pattern.
func SanitizeString(s string) string {
	for {
		next := scriptBlock.ReplaceAllString(s, "")
		next = scriptTag.ReplaceAllString(next, "")
		next = eventHandler.ReplaceAllString(next, "$1")
		next = jsURI.ReplaceAllString(next, "")
		if next == s {
			return s
		}
		s = next
	}
}

// Sanitize returns a deep copy of v with every string sanitized.
func Sanitize(v any) any {
	switch t := v.(type) {
	case string:
		return SanitizeString(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Sanitize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Sanitize(val)
		}
		return out
	default:
		return v
	}
}
