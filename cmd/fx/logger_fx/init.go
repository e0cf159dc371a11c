package loggerfx

import (
	"go.uber.org/fx"
	"homestead/pkg/logger"
)

var Module = fx.Provide(
	logger.New)
