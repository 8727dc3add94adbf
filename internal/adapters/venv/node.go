package venv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stager/internal/adapters/logger"
	"go.trai.ch/stager/internal/adapters/shell"
	"go.trai.ch/stager/internal/core/ports"
)

// FactoryNodeID is the unique identifier for the EnvFactory Graft node.
const FactoryNodeID graft.ID = "adapter.venv.factory"

func init() {
	graft.Register(graft.Node[ports.EnvFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvFactory, error) {
			sub, err := graft.Dep[ports.Subprocess](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(sub, log), nil
		},
	})
}
