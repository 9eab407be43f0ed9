// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cross/internal/adapters/config"
	_ "go.trai.ch/cross/internal/adapters/git"
	_ "go.trai.ch/cross/internal/adapters/logger"
	_ "go.trai.ch/cross/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/cross/internal/app"
)
