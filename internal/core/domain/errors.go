package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrSpecNotFound is returned when the spec document does not exist or cannot be written.
	ErrSpecNotFound = zerr.New("spec document not found")

	// ErrPatternMismatch is returned when the spec document has no gitrev placeholder line.
	// This is a hard failure: building with a stale revision must never happen silently.
	ErrPatternMismatch = zerr.New("gitrev placeholder not found in spec document")

	// ErrInvalidStamp is returned when a revision stamp is constructed from bad inputs.
	ErrInvalidStamp = zerr.New("invalid revision stamp")

	// ErrInvalidRoot is returned when a build-root handle is constructed from bad inputs.
	ErrInvalidRoot = zerr.New("invalid build root")

	// ErrProvision is returned when the build root cannot be created or reset.
	ErrProvision = zerr.New("build root provisioning failed")

	// ErrDependencyInstall is returned when installing packages into the build root fails.
	ErrDependencyInstall = zerr.New("dependency installation failed")

	// ErrCommand is returned when the build command inside the root exits nonzero.
	ErrCommand = zerr.New("build command failed")

	// ErrCopyOut is returned when the exchange directory cannot be copied out of the root.
	ErrCopyOut = zerr.New("copy-out from build root failed")

	// ErrNoArtifact is returned when no harvested file matches the expected patterns.
	// Callers decide whether a successful build with missing artifacts is fatal.
	ErrNoArtifact = zerr.New("no artifacts matched the expected patterns")
)

// Fail ties one of the sentinel error kinds above to the underlying tool
// error, so callers can classify with errors.Is while the original diagnostic
// chain (stderr text, exit codes) stays reachable with errors.As.
func Fail(kind, err error) error {
	if err == nil {
		return kind
	}
	return errors.Join(kind, err)
}
