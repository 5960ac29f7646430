package manpage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// DefaultTimeout bounds a single man(1) invocation.
const DefaultTimeout = 10 * time.Second

// Ensure Fetcher implements clawdoc.Fetcher at compile time.
var _ clawdoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves reference pages by invoking man(1).
type Fetcher struct {
	// Timeout bounds the man invocation. Zero means DefaultTimeout.
	Timeout time.Duration
}

// NewFetcher creates a fetcher with the default timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{Timeout: DefaultTimeout}
}

// Fetch runs man for the named page and returns its formatted output
// with overstrike sequences removed. A missing page maps to ENOTFOUND;
// a timeout or execution failure maps to EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, source string) (string, error) {
	page := strings.TrimPrefix(source, "man:")
	if page == "" {
		return "", clawdoc.Errorf(clawdoc.EINVALID, "Page name required.")
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "man", page)
	cmd.Env = append(os.Environ(),
		"MANPAGER=cat",
		"PAGER=cat",
		"MANWIDTH=80",
		"LC_ALL=C",
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", clawdoc.Errorf(clawdoc.EUNAVAILABLE, "Timed out fetching man page %q.", page)
		}
		if strings.Contains(stderr.String(), "No manual entry") {
			return "", clawdoc.Errorf(clawdoc.ENOTFOUND, "No manual entry for %q.", page)
		}
		return "", clawdoc.Errorf(clawdoc.EUNAVAILABLE, "man %s: %v", page, err)
	}

	return StripOverstrike(stdout.String()), nil
}

// StripOverstrike removes backspace overstrike sequences that troff
// uses for bold (c\bc) and underline (_\bc) rendering, keeping the
// final character of each sequence.
func StripOverstrike(s string) string {
	if !strings.ContainsRune(s, '\b') {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\b' {
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
