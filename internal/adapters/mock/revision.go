package mock

import (
	"context"
	"os/exec"
	"strings"

	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.trai.ch/zerr"
)

// RevisionSource resolves the working tree's revision through the sandbox
// itself. It exists for hosts without a version-control client: the tree is
// copied into the root and queried there, where the build dependencies
// (including git) are known to be installable.
type RevisionSource struct {
	sandbox *Sandbox
	root    domain.BuildRootHandle
}

// NewRevisionSource creates a sandbox-backed RevisionSource for the root.
func NewRevisionSource(sandbox *Sandbox, root domain.BuildRootHandle) *RevisionSource {
	return &RevisionSource{sandbox: sandbox, root: root}
}

// Head copies dir into the root and returns the abbreviated HEAD revision
// reported by git inside it. The orchestrator resets and copies in again
// afterwards; re-provisioning the same root twice is safe and cheap compared
// to building.
func (r *RevisionSource) Head(ctx context.Context, dir string) (string, error) {
	if err := r.sandbox.Reset(ctx, r.root); err != nil {
		return "", err
	}
	if err := r.sandbox.CopyIn(ctx, r.root, dir); err != nil {
		return "", err
	}

	out, err := r.sandbox.output(ctx, r.root,
		"--unpriv", "--cwd", domain.ExchangePath, "--chroot", "--",
		"git", "rev-parse", "--short=7", "HEAD")
	if err != nil {
		return "", zerr.Wrap(err, "failed to query revision through build root")
	}

	rev := strings.TrimSpace(out)
	if rev == "" {
		return "", zerr.With(zerr.New("empty revision from build root"), "root", r.root.String())
	}
	return rev, nil
}

// output invokes the tool and captures stdout instead of streaming it.
func (s *Sandbox) output(ctx context.Context, root domain.BuildRootHandle, args ...string) (string, error) {
	full := append([]string{"--configdir", root.ConfigDir, "--root", root.Root}, args...)

	cmd := exec.CommandContext(ctx, s.binary, full...) //nolint:gosec // tool arguments are assembled above
	out, err := cmd.Output()
	if err != nil {
		wrapped := zerr.Wrap(err, "tool invocation failed")
		wrapped = zerr.With(wrapped, "root", root.String())
		if exitErr, ok := err.(*exec.ExitError); ok {
			wrapped = zerr.With(wrapped, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", wrapped
	}
	return string(out), nil
}
