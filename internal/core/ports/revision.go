package ports

import "context"

// RevisionSource resolves the abbreviated revision identifier of a working
// tree. The primary implementation queries the host version-control client;
// a fallback queries through the sandbox when no client is on the host.
//
//go:generate go run go.uber.org/mock/mockgen -source=revision.go -destination=mocks/mock_revision.go -package=mocks
type RevisionSource interface {
	// Head returns the abbreviated (7+ character) revision identifier of
	// the working tree at dir.
	Head(ctx context.Context, dir string) (string, error)
}
