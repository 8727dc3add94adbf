// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stager/internal/adapters/config"
	_ "go.trai.ch/stager/internal/adapters/fs"
	_ "go.trai.ch/stager/internal/adapters/logger"
	_ "go.trai.ch/stager/internal/adapters/shell"
	_ "go.trai.ch/stager/internal/adapters/telemetry"
	_ "go.trai.ch/stager/internal/adapters/venv"
	// Register app nodes.
	_ "go.trai.ch/stager/internal/app"
)
