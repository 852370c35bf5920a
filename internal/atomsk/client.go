package atomsk

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/vk/polygraingo/internal/ctxlog"
)

// Client invokes the atomsk binary with per-run scratch storage. Artifacts
// are phase-qualified, so concurrent phase branches never collide on paths.
type Client struct {
	bin     string
	scratch string
}

// NewClient builds a client. bin is the atomsk executable (resolved via
// PATH if not absolute); scratch is the directory for intermediate files and
// must already exist.
func NewClient(bin, scratch string) *Client {
	return &Client{bin: bin, scratch: scratch}
}

// run executes one synchronous atomsk invocation. stderr is captured and
// attached to the error, since atomsk reports its diagnostics there.
func (c *Client) run(ctx context.Context, args ...string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Invoking atomsk.", "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, c.bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("atomsk %s: %w", args[0], err)
		}
		return fmt.Errorf("atomsk %s: %w: %s", args[0], err, msg)
	}
	return nil
}

// sanitize turns a phase identifier into a path-safe file-name fragment.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
