package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stager/internal/adapters/logger"
	"go.trai.ch/stager/internal/core/ports"
)

// NodeID is the unique identifier for the Subprocess Graft node.
const NodeID graft.ID = "adapter.subprocess"

func init() {
	graft.Register(graft.Node[ports.Subprocess]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Subprocess, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}
