package security

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/validation"
	"github.com/Owhab/nexacms-sub002/internal/platform/localmedia"
)

// VideoProber reads container metadata from an uploaded video.
type VideoProber interface {
	ProbeVideo(ctx context.Context, data []byte, suffix string) (localmedia.VideoInfo, error)
}

type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

type MediaInfo struct {
	MimeType string        `json:"mimeType"`
	Width    int           `json:"width,omitempty"`
	Height   int           `json:"height,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

type UploadResult struct {
	IsValid  bool                         `json:"isValid"`
	Errors   []validation.ValidationError `json:"errors"`
	Warnings []validation.ValidationError `json:"warnings"`
	Info     *MediaInfo                   `json:"info,omitempty"`
}

const uploadField = "file"

// ValidateMediaUpload checks an uploaded file against the policy. Type, size
// and extension problems are errors; dimension and duration problems are
// warnings. Undecodable media is reported as CORRUPTED_FILE.
func (v *Validator) ValidateMediaUpload(ctx context.Context, up Upload, kind schema.MediaType) UploadResult {
	var out []validation.ValidationError
	size := up.Size
	if size <= 0 {
		size = int64(len(up.Data))
	}

	if ext, bad := v.suspiciousExtension(up.Filename); bad {
		out = append(out, validation.Errorf(uploadField, validation.CodeMaliciousContent,
			fmt.Sprintf("Files with extension %s are not allowed", ext)))
	}

	var maxBytes int64
	var allowed []string
	switch kind {
	case schema.MediaImage:
		maxBytes, allowed = v.policy.MaxImageBytes, v.policy.AllowedImageTypes
	case schema.MediaVideo:
		maxBytes, allowed = v.policy.MaxVideoBytes, v.policy.AllowedVideoTypes
	default:
		out = append(out, validation.Errorf("mediaType", validation.CodeInvalidFileType, fmt.Sprintf("Unsupported media type %q", kind)))
		return uploadResult(out, nil)
	}

	if maxBytes > 0 && size > maxBytes {
		out = append(out, validation.Errorf(uploadField, validation.CodeFileTooLarge,
			fmt.Sprintf("File is %d bytes; the limit is %d bytes", size, maxBytes)))
	}

	declared := normalizeMime(up.ContentType)
	if !contains(allowed, declared) {
		out = append(out, validation.Errorf(uploadField, validation.CodeInvalidFileType,
			fmt.Sprintf("File type %q is not allowed", up.ContentType)))
	}

	var detected string
	if len(up.Data) > 0 {
		detected = normalizeMime(mimetype.Detect(up.Data).String())
		if fam := family(detected); fam != "" && fam != string(kind) {
			out = append(out, validation.Errorf(uploadField, validation.CodeInvalidFileType,
				fmt.Sprintf("File content looks like %s, not %s", detected, kind)))
		}
	}

	if hasErrors(out) {
		return uploadResult(out, nil)
	}

	info := &MediaInfo{MimeType: detected}
	if info.MimeType == "" {
		info.MimeType = declared
	}
	switch kind {
	case schema.MediaImage:
		out = append(out, v.checkImage(up.Data, info)...)
	case schema.MediaVideo:
		out = append(out, v.checkVideo(ctx, up, info)...)
	}
	return uploadResult(out, info)
}

func (v *Validator) checkImage(data []byte, info *MediaInfo) []validation.ValidationError {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return []validation.ValidationError{validation.Errorf(uploadField, validation.CodeCorruptedFile, "Image could not be decoded")}
	}
	info.Width, info.Height = cfg.Width, cfg.Height

	var out []validation.ValidationError
	if (v.policy.MaxImageWidth > 0 && cfg.Width > v.policy.MaxImageWidth) ||
		(v.policy.MaxImageHeight > 0 && cfg.Height > v.policy.MaxImageHeight) {
		out = append(out, validation.Warnf(uploadField, validation.CodeLargeDimensions,
			fmt.Sprintf("Image is %dx%d; recommended maximum is %dx%d", cfg.Width, cfg.Height, v.policy.MaxImageWidth, v.policy.MaxImageHeight)))
	}
	if cfg.Height > 0 {
		ratio := float64(cfg.Width) / float64(cfg.Height)
		if (v.policy.MinAspectRatio > 0 && ratio < v.policy.MinAspectRatio) ||
			(v.policy.MaxAspectRatio > 0 && ratio > v.policy.MaxAspectRatio) {
			out = append(out, validation.Warnf(uploadField, validation.CodeLargeDimensions,
				fmt.Sprintf("Unusual aspect ratio %.2f", ratio)))
		}
	}
	return out
}

type probeResult struct {
	info localmedia.VideoInfo
	err  error
}

func (v *Validator) checkVideo(ctx context.Context, up Upload, info *MediaInfo) []validation.ValidationError {
	if v.prober == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := v.policy.ProbeTimeout
	if timeout <= 0 {
		timeout = DefaultPolicy().ProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan probeResult, 1)
	go func() {
		vi, err := v.prober.ProbeVideo(ctx, up.Data, filepath.Ext(up.Filename))
		done <- probeResult{vi, err}
	}()

	var res probeResult
	select {
	case <-ctx.Done():
		return []validation.ValidationError{validation.Errorf(uploadField, validation.CodeCorruptedFile, "Timed out reading video metadata")}
	case res = <-done:
	}
	if res.err != nil {
		return []validation.ValidationError{validation.Errorf(uploadField, validation.CodeCorruptedFile, "Video could not be decoded")}
	}
	info.Width, info.Height, info.Duration = res.info.Width, res.info.Height, res.info.Duration

	var out []validation.ValidationError
	if v.policy.MaxVideoDuration > 0 && res.info.Duration > v.policy.MaxVideoDuration {
		out = append(out, validation.Warnf(uploadField, validation.CodeLongDuration,
			fmt.Sprintf("Video is %s long; recommended maximum is %s", res.info.Duration.Round(time.Second), v.policy.MaxVideoDuration)))
	}
	if (v.policy.MaxVideoWidth > 0 && res.info.Width > v.policy.MaxVideoWidth) ||
		(v.policy.MaxVideoHeight > 0 && res.info.Height > v.policy.MaxVideoHeight) {
		out = append(out, validation.Warnf(uploadField, validation.CodeLargeDimensions,
			fmt.Sprintf("Video is %dx%d; recommended maximum is %dx%d", res.info.Width, res.info.Height, v.policy.MaxVideoWidth, v.policy.MaxVideoHeight)))
	}
	return out
}

// suspiciousExtension checks every dotted suffix so "invoice.exe.png" is caught too.
func (v *Validator) suspiciousExtension(name string) (string, bool) {
	parts := strings.Split(strings.ToLower(filepath.Base(name)), ".")
	for _, p := range parts[1:] {
		ext := "." + p
		if contains(v.policy.SuspiciousExtensions, ext) {
			return ext, true
		}
	}
	return "", false
}

func normalizeMime(m string) string {
	m = strings.ToLower(strings.TrimSpace(m))
	if i := strings.IndexByte(m, ';'); i >= 0 {
		m = strings.TrimSpace(m[:i])
	}
	return m
}

// family maps a sniffed MIME type to its top-level type; "" when the sniffer
// cannot tell.
func family(m string) string {
	switch m {
	case "", "application/octet-stream":
		return ""
	case "application/ogg":
		return string(schema.MediaVideo)
	}
	if i := strings.IndexByte(m, '/'); i > 0 {
		return m[:i]
	}
	return m
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func hasErrors(list []validation.ValidationError) bool {
	for _, e := range list {
		if e.Type == validation.SeverityError {
			return true
		}
	}
	return false
}

func uploadResult(all []validation.ValidationError, info *MediaInfo) UploadResult {
	r := validation.NewResult(all)
	return UploadResult{IsValid: r.IsValid, Errors: r.Errors, Warnings: r.Warnings, Info: info}
}
