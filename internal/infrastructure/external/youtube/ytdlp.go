package youtube

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// runner invokes the yt-dlp binary
type runner struct {
	binary string
}

func newRunner(binary string) runner {
	if binary == "" {
		binary = "yt-dlp"
	}
	return runner{binary: binary}
}

// run executes yt-dlp and returns its stdout. A non-zero exit carries the
// trimmed stderr in the error.
func (r runner) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%s: %w", r.binary, err)
		}
		return nil, fmt.Errorf("%s: %w: %s", r.binary, err, msg)
	}
	return stdout.Bytes(), nil
}
