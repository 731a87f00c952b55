package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	gutils "github.com/Laisky/go-utils/v5"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/qa-demo/casegen/common/config"
)

const loggerName = "casegen"

var (
	// Logger is the process-wide structured logger.
	Logger glog.Logger
	// LogDir enables the dated gin log file when non-empty.
	LogDir string

	setupLogOnce sync.Once
)

func init() {
	level := glog.LevelInfo
	if config.DebugEnabled {
		level = glog.LevelDebug
	}

	var err error
	if Logger, err = glog.NewConsoleWithName(loggerName, level); err != nil {
		panic(fmt.Sprintf("failed to create logger: %+v", err))
	}
}

// logFileName is the file gin output is mirrored to on day now.
func logFileName(now time.Time) string {
	return fmt.Sprintf("%s-%s.log", loggerName, now.Format("20060102"))
}

// SetupLogger mirrors gin's access and error output into LogDir. It runs once.
func SetupLogger() {
	setupLogOnce.Do(func() {
		if LogDir == "" {
			return
		}

		logPath := filepath.Join(LogDir, logFileName(time.Now()))
		fd, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			Logger.Fatal("failed to open log file", zap.String("path", logPath), zap.Error(err))
		}

		gin.DefaultWriter = io.MultiWriter(os.Stdout, fd)
		gin.DefaultErrorWriter = io.MultiWriter(os.Stderr, fd)
		Logger.Info("gin output mirrored to file", zap.String("path", logPath))
	})
}

// SetupEnhancedLogger tags entries with the host name and, when LOG_PUSH_API
// is set, forwards error entries to it at most once per second.
func SetupEnhancedLogger(ctx context.Context) {
	lg := Logger

	opts, err := alertOptions(ctx)
	if err != nil {
		Logger.Error("alert pusher disabled", zap.Error(err))
	}
	if len(opts) > 0 {
		lg = lg.WithOptions(opts...)
		Logger.Info("alert pusher configured",
			zap.String("alert_api", config.LogPushAPI),
			zap.String("alert_type", config.LogPushType))
	}

	if hostname, err := os.Hostname(); err == nil {
		lg = lg.With(zap.String("host", hostname))
	}

	level := glog.LevelInfo
	if config.DebugEnabled {
		level = glog.LevelDebug
	}
	_ = lg.ChangeLevel(level)
	Logger = lg
}

func alertOptions(ctx context.Context) ([]zap.Option, error) {
	if config.LogPushAPI == "" {
		return nil, nil
	}

	limiter, err := gutils.NewRateLimiter(ctx, gutils.RateLimiterArgs{
		Max:     1,
		NPerSec: 1,
	})
	if err != nil {
		return nil, err
	}

	pusher, err := glog.NewAlert(
		ctx,
		config.LogPushAPI,
		glog.WithAlertType(config.LogPushType),
		glog.WithAlertToken(config.LogPushToken),
		glog.WithAlertHookLevel(zap.ErrorLevel),
		glog.WithRateLimiter(limiter),
	)
	if err != nil {
		return nil, err
	}

	return []zap.Option{zap.HooksWithFields(pusher.GetZapHook())}, nil
}
