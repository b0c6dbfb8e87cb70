package app

import (
	"go.rpmci.dev/rpmci/internal/adapters/config"
	"go.rpmci.dev/rpmci/internal/adapters/telemetry"
	"go.rpmci.dev/rpmci/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger

	// Config is the concrete loader, exposed so the CLI can point it at a
	// different configuration file.
	Config *config.Loader

	// Telemetry is the switchable recorder the run command retargets when
	// a progress view is requested.
	Telemetry *telemetry.Switchable
}
