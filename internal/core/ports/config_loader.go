// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/cross/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project file at path. A missing file yields the built-in defaults.
	Load(path string) (*domain.Config, error)
}
