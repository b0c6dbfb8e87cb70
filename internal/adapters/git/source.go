// Package git resolves working-tree revisions with the host git client.
package git

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultBinary is the version-control client looked up on PATH.
const DefaultBinary = "git"

// Source implements ports.RevisionSource using the host git client.
type Source struct {
	binary string
}

// NewSource creates a Source using the git binary from PATH.
func NewSource() *Source {
	return &Source{binary: DefaultBinary}
}

// NewSourceWithBinary creates a Source invoking the given executable.
func NewSourceWithBinary(binary string) *Source {
	return &Source{binary: binary}
}

// Head returns the abbreviated HEAD revision of the repository at dir.
// A missing git client surfaces as exec.ErrNotFound in the error chain, so
// the caller can switch to the sandbox-backed fallback.
func (s *Source) Head(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, s.binary, "-C", dir, "rev-parse", "--short=7", "HEAD") //nolint:gosec // fixed argument list

	out, err := cmd.Output()
	if err != nil {
		wrapped := zerr.Wrap(err, "failed to resolve HEAD revision")
		wrapped = zerr.With(wrapped, "dir", dir)
		if exitErr, ok := err.(*exec.ExitError); ok {
			wrapped = zerr.With(wrapped, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", wrapped
	}

	rev := strings.TrimSpace(string(out))
	if rev == "" {
		return "", zerr.With(zerr.New("git reported an empty revision"), "dir", dir)
	}
	return rev, nil
}

// Available reports whether the host has a usable git client.
func (s *Source) Available() bool {
	_, err := exec.LookPath(s.binary)
	return err == nil
}

// IsNotInstalled reports whether err means the client binary is missing
// rather than the repository being broken.
func IsNotInstalled(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}
