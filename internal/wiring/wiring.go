// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.rpmci.dev/rpmci/internal/adapters/config"
	_ "go.rpmci.dev/rpmci/internal/adapters/fs"
	_ "go.rpmci.dev/rpmci/internal/adapters/git"
	_ "go.rpmci.dev/rpmci/internal/adapters/history"
	_ "go.rpmci.dev/rpmci/internal/adapters/logger"
	_ "go.rpmci.dev/rpmci/internal/adapters/mock"
	_ "go.rpmci.dev/rpmci/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.rpmci.dev/rpmci/internal/app"
	_ "go.rpmci.dev/rpmci/internal/engine/workflow"
)
