// Package mock wraps the mock(1) chroot build tool behind the Sandbox port.
package mock

import (
	"context"
	"os/exec"
	"strings"

	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.rpmci.dev/rpmci/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBinary is the build-root tool looked up on PATH.
const DefaultBinary = "mock"

// Sandbox implements ports.Sandbox by shelling out to the mock CLI.
// Each method is one tool invocation; stdout is streamed line by line into
// the logger so CI output stays readable, and stderr is captured into the
// returned error for triage.
type Sandbox struct {
	logger ports.Logger
	binary string
}

// NewSandbox creates a Sandbox using the mock binary from PATH.
func NewSandbox(logger ports.Logger) *Sandbox {
	return NewSandboxWithBinary(logger, DefaultBinary)
}

// NewSandboxWithBinary creates a Sandbox invoking the given executable.
// Tests substitute a stub script here.
func NewSandboxWithBinary(logger ports.Logger, binary string) *Sandbox {
	return &Sandbox{logger: logger, binary: binary}
}

// Reset removes any pre-existing contents at the exchange path. A stale
// exchange directory could leak artifacts from a previous run into the next,
// so a failure here is fatal to the whole orchestration.
func (s *Sandbox) Reset(ctx context.Context, root domain.BuildRootHandle) error {
	return s.run(ctx, root, "reset exchange path",
		"--chroot", "--", "rm", "-rf", domain.ExchangePath)
}

// CopyIn copies the host directory into the exchange path inside the root.
func (s *Sandbox) CopyIn(ctx context.Context, root domain.BuildRootHandle, hostDir string) error {
	return s.run(ctx, root, "copy source tree into build root",
		"--copyin", hostDir, domain.ExchangePath)
}

// Chown hands the copied tree over to the unprivileged build user; copy-in
// leaves root-owned files that later unprivileged steps cannot touch.
func (s *Sandbox) Chown(ctx context.Context, root domain.BuildRootHandle) error {
	return s.run(ctx, root, "chown exchange path",
		"--chroot", "--", "chown", "-R", domain.BuildUser+":"+domain.BuildUser, domain.ExchangePath)
}

// Install installs the packages into the root. An empty set is a no-op.
func (s *Sandbox) Install(ctx context.Context, root domain.BuildRootHandle, packages []string) error {
	if len(packages) == 0 {
		return nil
	}
	args := append([]string{"--install"}, packages...)
	return s.run(ctx, root, "install build dependencies", args...)
}

// Exec runs the command inside the root as the unprivileged build user with
// the exchange path as working directory.
func (s *Sandbox) Exec(ctx context.Context, root domain.BuildRootHandle, command []string) error {
	args := append([]string{"--unpriv", "--cwd", domain.ExchangePath, "--chroot", "--"}, command...)
	return s.run(ctx, root, "execute command in build root", args...)
}

// CopyOut copies the exchange path out of the root into the host directory.
func (s *Sandbox) CopyOut(ctx context.Context, root domain.BuildRootHandle, hostDir string) error {
	return s.run(ctx, root, "copy exchange path out of build root",
		"--copyout", domain.ExchangePath, hostDir)
}

// run invokes the tool with the root selection flags prepended. The failing
// tool's stderr is attached to the error unmodified, and the inner exit code
// travels as a domain.ExitError so callers can propagate it verbatim.
func (s *Sandbox) run(ctx context.Context, root domain.BuildRootHandle, step string, args ...string) error {
	full := append([]string{"--configdir", root.ConfigDir, "--root", root.Root}, args...)

	cmd := exec.CommandContext(ctx, s.binary, full...) //nolint:gosec // tool arguments are assembled above
	cmd.Stdout = &lineWriter{logger: s.logger}

	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.Wrap(&domain.ExitError{Code: exitCode, Err: err}, "failed to "+step)
		wrapped = zerr.With(wrapped, "root", root.String())
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		return zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
	}

	return nil
}

// lineWriter splits tool output into lines for the logger.
type lineWriter struct {
	logger ports.Logger
}

func (w *lineWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		w.logger.Info(line)
	}
	return len(p), nil
}
