package ports

import "go.rpmci.dev/rpmci/internal/core/domain"

// ConfigLoader defines the interface for loading the workflow configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory and
	// returns the workflow defaults. CLI arguments override them later.
	Load(cwd string) (*domain.Workflow, error)
}
