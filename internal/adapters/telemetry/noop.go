// Package telemetry provides implementations of the Telemetry port.
package telemetry

import (
	"context"
	"io"

	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.rpmci.dev/rpmci/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry, used when no progress
// view is attached (the plain CI mode).
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record starts a no-op vertex.
func (t *NoOp) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	v := &NoOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout discards output.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr discards output.
func (v *NoOpVertex) Stderr() io.Writer { return io.Discard }

// Log does nothing.
func (v *NoOpVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
