// Package security re-validates hero data that crosses the API boundary:
// structure, URL and domain checks, a content-security scan with sanitization,
// and media upload checks.
package security

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Policy holds the tunable limits. Zero values in a policy file keep the
// built-in defaults.
type Policy struct {
	AllowedDomains       []string      `yaml:"allowed_domains"`
	MaxImageBytes        int64         `yaml:"max_image_bytes"`
	MaxVideoBytes        int64         `yaml:"max_video_bytes"`
	AllowedImageTypes    []string      `yaml:"allowed_image_types"`
	AllowedVideoTypes    []string      `yaml:"allowed_video_types"`
	MaxImageWidth        int           `yaml:"max_image_width"`
	MaxImageHeight       int           `yaml:"max_image_height"`
	MinAspectRatio       float64       `yaml:"min_aspect_ratio"`
	MaxAspectRatio       float64       `yaml:"max_aspect_ratio"`
	MaxVideoDuration     time.Duration `yaml:"max_video_duration"`
	MaxVideoWidth        int           `yaml:"max_video_width"`
	MaxVideoHeight       int           `yaml:"max_video_height"`
	ProbeTimeout         time.Duration `yaml:"probe_timeout"`
	SuspiciousExtensions []string      `yaml:"suspicious_extensions"`
}

func DefaultPolicy() Policy {
	return Policy{
		AllowedDomains: []string{
			"localhost",
			"images.unsplash.com",
			"res.cloudinary.com",
			"cdn.nexacms.com",
			"youtube.com",
			"vimeo.com",
		},
		MaxImageBytes:     10 << 20,
		MaxVideoBytes:     100 << 20,
		AllowedImageTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		AllowedVideoTypes: []string{"video/mp4", "video/webm", "video/ogg", "video/quicktime"},
		MaxImageWidth:     4096,
		MaxImageHeight:    4096,
		MinAspectRatio:    0.25,
		MaxAspectRatio:    4,
		MaxVideoDuration:  10 * time.Minute,
		MaxVideoWidth:     3840,
		MaxVideoHeight:    2160,
		ProbeTimeout:      15 * time.Second,
		SuspiciousExtensions: []string{
			".exe", ".bat", ".cmd", ".com", ".scr", ".pif", ".vbs", ".js",
			".jar", ".msi", ".dll", ".ps1", ".sh", ".php",
		},
	}
}

// LoadPolicy reads a YAML policy file over the defaults. An empty path
// returns the defaults.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	if strings.TrimSpace(path) == "" {
		return p, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read media policy: %w", err)
	}
	return ParsePolicy(raw)
}

func ParsePolicy(raw []byte) (Policy, error) {
	var override Policy
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return Policy{}, fmt.Errorf("parse media policy: %w", err)
	}
	return DefaultPolicy().merge(override), nil
}

func (p Policy) merge(o Policy) Policy {
	if len(o.AllowedDomains) > 0 {
		p.AllowedDomains = o.AllowedDomains
	}
	if o.MaxImageBytes > 0 {
		p.MaxImageBytes = o.MaxImageBytes
	}
	if o.MaxVideoBytes > 0 {
		p.MaxVideoBytes = o.MaxVideoBytes
	}
	if len(o.AllowedImageTypes) > 0 {
		p.AllowedImageTypes = o.AllowedImageTypes
	}
	if len(o.AllowedVideoTypes) > 0 {
		p.AllowedVideoTypes = o.AllowedVideoTypes
	}
	if o.MaxImageWidth > 0 {
		p.MaxImageWidth = o.MaxImageWidth
	}
	if o.MaxImageHeight > 0 {
		p.MaxImageHeight = o.MaxImageHeight
	}
	if o.MinAspectRatio > 0 {
		p.MinAspectRatio = o.MinAspectRatio
	}
	if o.MaxAspectRatio > 0 {
		p.MaxAspectRatio = o.MaxAspectRatio
	}
	if o.MaxVideoDuration > 0 {
		p.MaxVideoDuration = o.MaxVideoDuration
	}
	if o.MaxVideoWidth > 0 {
		p.MaxVideoWidth = o.MaxVideoWidth
	}
	if o.MaxVideoHeight > 0 {
		p.MaxVideoHeight = o.MaxVideoHeight
	}
	if o.ProbeTimeout > 0 {
		p.ProbeTimeout = o.ProbeTimeout
	}
	if len(o.SuspiciousExtensions) > 0 {
		p.SuspiciousExtensions = o.SuspiciousExtensions
	}
	return p
}

// DomainAllowed matches host against the allow-list exactly or as a subdomain.
func (p Policy) DomainAllowed(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	for _, d := range p.AllowedDomains {
		d = strings.ToLower(d)
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
