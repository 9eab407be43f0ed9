package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cross/internal/adapters/shell"
	"go.trai.ch/cross/internal/core/ports"
)

// NodeID is the unique identifier for the git Graft node.
const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.VersionControl]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.VersionControl, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewRepository(executor, ""), nil
		},
	})
}
