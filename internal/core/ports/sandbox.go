// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.rpmci.dev/rpmci/internal/core/domain"
)

// Sandbox wraps the external build-root tool with one method per logical
// workflow step. Every method is a discrete external-tool invocation; a
// returned error carries the tool's diagnostics and, where applicable, the
// inner exit code via domain.ExitError.
//
//go:generate go run go.uber.org/mock/mockgen -source=sandbox.go -destination=mocks/mock_sandbox.go -package=mocks
type Sandbox interface {
	// Reset removes any pre-existing contents at the root's exchange path,
	// initializing the root first if it does not exist yet.
	Reset(ctx context.Context, root domain.BuildRootHandle) error

	// CopyIn copies the contents of the host directory into the exchange
	// path inside the root.
	CopyIn(ctx context.Context, root domain.BuildRootHandle, hostDir string) error

	// Chown hands the exchange path over to the unprivileged build user.
	// The copy-in step may leave root-owned files behind that later
	// unprivileged steps cannot touch.
	Chown(ctx context.Context, root domain.BuildRootHandle) error

	// Install installs the given packages into the root. An empty set
	// returns nil without invoking the tool.
	Install(ctx context.Context, root domain.BuildRootHandle, packages []string) error

	// Exec runs the command inside the root as the unprivileged build user
	// with the exchange path as working directory.
	Exec(ctx context.Context, root domain.BuildRootHandle, command []string) error

	// CopyOut copies the exchange path out of the root into the host
	// directory.
	CopyOut(ctx context.Context, root domain.BuildRootHandle, hostDir string) error
}
