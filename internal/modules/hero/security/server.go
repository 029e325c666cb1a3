package security

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/validation"
)

// Result is the outcome of validating untrusted hero data. SanitizedData is
// always populated for object input, whether or not validation passed.
type Result struct {
	IsValid       bool                         `json:"isValid"`
	Errors        []validation.ValidationError `json:"errors"`
	Warnings      []validation.ValidationError `json:"warnings"`
	SanitizedData map[string]any               `json:"sanitizedData,omitempty"`
}

type Validator struct {
	policy Policy
	prober VideoProber
}

func NewValidator(policy Policy, prober VideoProber) *Validator {
	return &Validator{policy: policy, prober: prober}
}

func (v *Validator) Policy() Policy { return v.policy }

// ValidateHeroSectionData checks raw, decoded JSON from a client.
func (v *Validator) ValidateHeroSectionData(raw any) Result {
	obj, ok := raw.(map[string]any)
	if !ok {
		return finish([]validation.ValidationError{
			validation.Errorf("", validation.CodeInvalidFormat, "Hero section data must be a JSON object"),
		}, nil)
	}

	var out []validation.ValidationError
	if id, _ := obj["id"].(string); strings.TrimSpace(id) == "" {
		out = append(out, validation.Errorf("id", validation.CodeRequiredField, "Hero section id is required"))
	}
	switch tag, _ := obj["variant"].(string); {
	case tag == "":
		out = append(out, validation.Errorf("variant", validation.CodeRequiredField, "Hero section variant is required"))
	case !schema.Variant(tag).Valid():
		out = append(out, validation.Errorf("variant", validation.CodeInvalidFormat, fmt.Sprintf("Unknown hero variant %q", tag)))
	}

	w := walker{policy: v.policy}
	w.walk(obj, "")
	out = append(out, w.found...)

	sanitized, _ := Sanitize(obj).(map[string]any)
	return finish(out, sanitized)
}

// ValidateBatch validates several payloads concurrently, preserving order.
func (v *Validator) ValidateBatch(ctx context.Context, raws []any) ([]Result, error) {
	results := make([]Result, len(raws))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, raw := range raws {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = v.ValidateHeroSectionData(raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func finish(all []validation.ValidationError, sanitized map[string]any) Result {
	r := validation.NewResult(all)
	return Result{IsValid: r.IsValid, Errors: r.Errors, Warnings: r.Warnings, SanitizedData: sanitized}
}

type walker struct {
	policy Policy
	found  []validation.ValidationError
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func (w *walker) walk(node any, path string) {
	switch t := node.(type) {
	case map[string]any:
		media := isMediaShaped(t)
		if media {
			w.checkMedia(t, path)
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p := childPath(path, k)
			if s, ok := t[k].(string); ok && k == "url" && !media {
				w.checkURL(s, p)
			}
			w.walk(t[k], p)
		}
	case []any:
		for i, item := range t {
			w.walk(item, fmt.Sprintf("%s[%d]", path, i))
		}
	case string:
		if name, bad := detectThreat(t); bad {
			w.found = append(w.found, validation.Errorf(path, validation.CodeMaliciousContent,
				fmt.Sprintf("Potentially malicious content detected (%s)", name)))
		}
	}
}

func isMediaShaped(m map[string]any) bool {
	u, ok := m["url"].(string)
	if !ok || u == "" {
		return false
	}
	t, _ := m["type"].(string)
	return t == string(schema.MediaImage) || t == string(schema.MediaVideo)
}

func (w *walker) checkURL(raw, path string) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	if !validation.IsValidURL(raw) {
		w.found = append(w.found, validation.Errorf(path, validation.CodeInvalidURL, "Invalid URL format"))
		return
	}
	if strings.HasPrefix(strings.ToLower(raw), "http://") {
		w.found = append(w.found, validation.Warnf(path, validation.CodeInsecureURL, "URL does not use HTTPS"))
	}
}

func (w *walker) checkMedia(m map[string]any, path string) {
	raw := m["url"].(string)
	field := childPath(path, "url")
	if !validation.IsValidURL(raw) {
		w.found = append(w.found, validation.Errorf(field, validation.CodeInvalidURL, "Invalid media URL format"))
		return
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return
	}
	if !w.policy.DomainAllowed(u.Hostname()) {
		w.found = append(w.found, validation.Errorf(field, validation.CodeUnauthorizedDomain,
			fmt.Sprintf("Media domain %q is not allowed", u.Hostname())))
	}
	if strings.EqualFold(u.Scheme, "http") {
		w.found = append(w.found, validation.Warnf(field, validation.CodeInsecureURL, "Media URL does not use HTTPS"))
	}
}
