package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cross/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/cross/internal/adapters/git"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cross/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/cross/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cross/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the application and the adapters the CLI talks to directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			logger.NodeID,
			git.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	vcs, err := graft.Dep[ports.VersionControl](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, executor, log, vcs), nil
}
