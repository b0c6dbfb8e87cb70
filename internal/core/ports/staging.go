package ports

import (
	"context"

	"go.rpmci.dev/rpmci/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=staging.go -destination=mocks/mock_staging.go -package=mocks

// Stager manages the host-side staging area artifacts are harvested into.
type Stager interface {
	// Prepare clears and recreates the staging directory.
	Prepare(dir string) error
	// Collect returns the staged files whose base name matches any of the
	// glob patterns, in deterministic order.
	Collect(dir string, patterns []string) ([]string, error)
	// Move relocates a staged file into destDir and returns its new path.
	Move(path, destDir string) (string, error)
}

// Digester computes content digests of harvested artifacts.
type Digester interface {
	// Digest computes the content digest of a single file.
	Digest(path string) (string, error)
	// DigestAll digests the files and returns them as artifacts in input
	// order.
	DigestAll(ctx context.Context, paths []string) ([]domain.Artifact, error)
}
