package localmedia

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Owhab/nexacms-sub002/internal/platform/ctxutil"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

// Tools is the glue around the ffprobe binary used to read uploaded video
// metadata. Uploads arrive as bytes, so they are spooled to a work directory
// before probing.
type Tools interface {
	AssertReady(ctx context.Context) error
	ProbeVideo(ctx context.Context, data []byte, suffix string) (VideoInfo, error)
	WriteTempFile(ctx context.Context, data []byte, suffix string) (string, func(), error)
}

type VideoInfo struct {
	Width    int
	Height   int
	Duration time.Duration
	Codec    string
}

type Options struct {
	FFProbePath string
	WorkRoot    string
	Timeout     time.Duration
}

type tools struct {
	log *logger.Logger

	ffprobePath string
	workRoot    string

	defaultTimeout time.Duration
}

func New(log *logger.Logger, opts Options) Tools {
	t := &tools{
		log:            log.With("service", "MediaTools"),
		ffprobePath:    "ffprobe",
		workRoot:       filepath.Join(os.TempDir(), "nexacms-media"),
		defaultTimeout: 15 * time.Second,
	}
	if opts.FFProbePath != "" {
		t.ffprobePath = opts.FFProbePath
	}
	if opts.WorkRoot != "" {
		t.workRoot = opts.WorkRoot
	}
	if opts.Timeout > 0 {
		t.defaultTimeout = opts.Timeout
	}
	return t
}

func (m *tools) AssertReady(ctx context.Context) error {
	if _, err := exec.LookPath(m.ffprobePath); err != nil {
		return fmt.Errorf("missing required binary %q in PATH: %w", m.ffprobePath, err)
	}
	if err := os.MkdirAll(m.workRoot, 0o755); err != nil {
		return fmt.Errorf("create workRoot: %w", err)
	}
	return nil
}

func (m *tools) WriteTempFile(ctx context.Context, data []byte, suffix string) (string, func(), error) {
	if err := os.MkdirAll(m.workRoot, 0o755); err != nil {
		return "", func() {}, fmt.Errorf("mkdir workRoot: %w", err)
	}
	h := sha256.Sum256(data)
	base := hex.EncodeToString(h[:])[:16]
	if suffix != "" && !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	path := filepath.Join(m.workRoot, fmt.Sprintf("%s-%d%s", base, time.Now().UnixNano(), suffix))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", func() {}, fmt.Errorf("write temp file: %w", err)
	}
	cleanup := func() { _ = os.Remove(path) }
	return path, cleanup, nil
}

type probeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
		Duration  string `json:"duration"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func (m *tools) ProbeVideo(ctx context.Context, data []byte, suffix string) (VideoInfo, error) {
	ctx = ctxutil.Default(ctx)
	if len(data) == 0 {
		return VideoInfo{}, fmt.Errorf("empty video")
	}
	if err := m.AssertReady(ctx); err != nil {
		return VideoInfo{}, err
	}
	path, cleanup, err := m.WriteTempFile(ctx, data, suffix)
	if err != nil {
		return VideoInfo{}, err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(ctx, m.defaultTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, m.ffprobePath,
		"-v", "error",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return VideoInfo{}, fmt.Errorf("ffprobe timed out: %w", ctx.Err())
		}
		return VideoInfo{}, fmt.Errorf("ffprobe failed: %w", err)
	}
	info, err := ParseProbeOutput(out)
	if err != nil {
		return VideoInfo{}, err
	}
	m.log.Debug("probed video", "width", info.Width, "height", info.Height, "duration", info.Duration.String())
	return info, nil
}

// ParseProbeOutput reads ffprobe's JSON report and returns the first video stream.
func ParseProbeOutput(out []byte) (VideoInfo, error) {
	var p probeOutput
	if err := json.Unmarshal(out, &p); err != nil {
		return VideoInfo{}, fmt.Errorf("decode ffprobe output: %w", err)
	}
	for _, s := range p.Streams {
		if s.CodecType != "video" {
			continue
		}
		info := VideoInfo{Width: s.Width, Height: s.Height, Codec: s.CodecName}
		dur := s.Duration
		if dur == "" || dur == "N/A" {
			dur = p.Format.Duration
		}
		if secs, err := strconv.ParseFloat(dur, 64); err == nil {
			info.Duration = time.Duration(secs * float64(time.Second))
		}
		return info, nil
	}
	return VideoInfo{}, fmt.Errorf("no video stream found")
}
