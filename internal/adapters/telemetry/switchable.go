package telemetry

import (
	"context"
	"sync"

	"go.rpmci.dev/rpmci/internal/core/ports"
)

// Switchable is a Telemetry that delegates to a replaceable backend. The
// wiring installs it with a no-op backend; the CLI swaps in a real recorder
// before the workflow starts when a progress view is requested.
type Switchable struct {
	mu      sync.RWMutex
	backend ports.Telemetry
}

// NewSwitchable creates a Switchable with a no-op backend.
func NewSwitchable() *Switchable {
	return &Switchable{backend: NewNoOp()}
}

// Set replaces the backend. Must be called before recording starts.
func (s *Switchable) Set(backend ports.Telemetry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backend = backend
}

// Record starts a vertex on the current backend.
func (s *Switchable) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend.Record(ctx, name, opts...)
}

// Close closes the current backend.
func (s *Switchable) Close() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend.Close()
}
