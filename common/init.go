package common

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/Laisky/zap"

	"github.com/qa-demo/casegen/common/config"
	"github.com/qa-demo/casegen/common/logger"
)

var (
	Port   = flag.Int("port", 3000, "the listening port")
	LogDir = flag.String("log-dir", "", "specify the log directory")
)

// Init parses command line flags and normalizes the configured directories.
func Init() {
	flag.Parse()

	config.ScenariosDir = ExpandPath(config.ScenariosDir)
	config.ReportsDir = ExpandPath(config.ReportsDir)
	config.PublicDir = ExpandPath(config.PublicDir)

	if *LogDir != "" {
		expanded := ExpandPath(*LogDir)
		lg := logger.Logger.With(zap.String("log_dir", expanded))

		var err error
		expanded, err = filepath.Abs(expanded)
		if err != nil {
			lg.Fatal("failed to get absolute log dir", zap.Error(err))
		}

		if err = os.MkdirAll(expanded, 0o755); err != nil {
			lg.Fatal("failed to create log dir", zap.Error(err))
		}

		lg.Info("set log dir", zap.String("log_dir", expanded))
		logger.LogDir = expanded
		*LogDir = expanded
	}
}
