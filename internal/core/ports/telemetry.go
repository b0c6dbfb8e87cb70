package ports

import (
	"context"
	"io"

	"go.rpmci.dev/rpmci/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records workflow steps as vertices of a progress tape.
type Telemetry interface {
	// Record starts recording a new vertex.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the standard output stream.
	Stdout() io.Writer
	// Stderr returns a writer capturing the error output stream.
	Stderr() io.Writer
	// Log records a structured log message associated with this vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
	// Cached marks the vertex as skipped work.
	Cached()
}

// VertexConfig holds configuration for a starting vertex.
type VertexConfig struct {
	// Internal marks vertices that should be hidden from progress views.
	Internal bool
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

// WithInternal marks the vertex as internal bookkeeping work.
func WithInternal() VertexOption {
	return func(c *VertexConfig) {
		c.Internal = true
	}
}

type vertexCtxKey struct{}

// ContextWithVertex attaches the vertex to the context for nested steps.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexCtxKey{}, v)
}

// VertexFromContext returns the vertex attached to the context, or nil.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexCtxKey{}).(Vertex)
	return v
}
