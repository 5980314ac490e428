package modkit

import (
	"gitgauge/internal/adapters/forge"
	"gitgauge/internal/platform/config"
	"gitgauge/internal/platform/logger"
)

// Deps carries the shared dependencies handed to every module constructor.
// This is plain wiring; modules pick what they need and ignore the rest
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Forge forge.Client
}
