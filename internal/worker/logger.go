package worker

import "github.com/SuperOrca/sbshards/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
