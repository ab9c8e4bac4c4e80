// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/anvil/internal/adapters/config"
	_ "go.trai.ch/anvil/internal/adapters/logger"
	_ "go.trai.ch/anvil/internal/adapters/render"
	_ "go.trai.ch/anvil/internal/adapters/telemetry"
	_ "go.trai.ch/anvil/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/anvil/internal/app"
	_ "go.trai.ch/anvil/internal/engine/planner"
	_ "go.trai.ch/anvil/internal/engine/registry"
)
