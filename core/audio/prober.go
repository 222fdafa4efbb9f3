package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"mlmusic/model"

	"go.senan.xyz/taglib"
)

// Prober reports the play length of an audio file in whole seconds.
// Failures wrap model.ErrAudioProbe so callers can keep the previous
// duration instead of persisting a wrong one.
type Prober interface {
	Probe(ctx context.Context, path string) (int, error)
}

// TaglibProber reads the length in-process via taglib. It needs no
// external binaries and is the default.
type TaglibProber struct{}

func (TaglibProber) Probe(_ context.Context, path string) (int, error) {
	props, err := taglib.ReadProperties(path)
	if err != nil {
		return 0, fmt.Errorf("%w: reading %s: %v", model.ErrAudioProbe, path, err)
	}

	seconds := int(props.Length / time.Second)
	if seconds <= 0 {
		return 0, fmt.Errorf("%w: no length in %s", model.ErrAudioProbe, path)
	}
	return seconds, nil
}

// FFProbeProber shells out to ffprobe. Useful where taglib cannot parse
// the container but ffmpeg can.
type FFProbeProber struct {
	// FFmpegPath is the ffmpeg binary path; the ffprobe binary is assumed
	// to sit next to it.
	FFmpegPath string
}

type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func (p FFProbeProber) Probe(ctx context.Context, path string) (int, error) {
	ffprobePath := strings.Replace(p.FFmpegPath, "ffmpeg", "ffprobe", 1)

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "json",
		path,
	}

	cmd := exec.CommandContext(ctx, ffprobePath, args...)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("%w: ffprobe failed for %s: %v: %s", model.ErrAudioProbe, path, err, stderr.String())
	}

	var probeData ffprobeOutput
	if err := json.Unmarshal(out.Bytes(), &probeData); err != nil {
		return 0, fmt.Errorf("%w: unmarshal ffprobe output for %s: %v", model.ErrAudioProbe, path, err)
	}

	if probeData.Format.Duration == "" {
		return 0, fmt.Errorf("%w: no duration in ffprobe output for %s", model.ErrAudioProbe, path)
	}

	seconds, err := strconv.ParseFloat(probeData.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parse duration %q for %s: %v", model.ErrAudioProbe, probeData.Format.Duration, path, err)
	}

	return int(math.Round(seconds)), nil
}
