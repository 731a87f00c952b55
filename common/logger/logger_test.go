package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/qa-demo/casegen/common/config"
)

func TestSetupEnhancedLogger(t *testing.T) {
	ctx := context.Background()
	originalLogger := Logger
	t.Cleanup(func() { Logger = originalLogger })

	t.Run("without_alert_pusher", func(t *testing.T) {
		config.LogPushAPI = ""
		SetupEnhancedLogger(ctx)
		Logger.Info("test log message without alert pusher")
	})

	t.Run("debug_mode", func(t *testing.T) {
		originalDebugEnabled := config.DebugEnabled
		config.DebugEnabled = true
		t.Cleanup(func() { config.DebugEnabled = originalDebugEnabled })

		SetupEnhancedLogger(ctx)
		Logger.Debug("test debug message")
	})
}

func TestSetupLoggerWritesGinOutputToFile(t *testing.T) {
	dir := t.TempDir()

	originalLogDir := LogDir
	originalDefaultWriter := gin.DefaultWriter
	originalDefaultErrorWriter := gin.DefaultErrorWriter
	t.Cleanup(func() {
		LogDir = originalLogDir
		gin.DefaultWriter = originalDefaultWriter
		gin.DefaultErrorWriter = originalDefaultErrorWriter
		ResetSetupLogOnceForTests()
	})

	LogDir = dir
	ResetSetupLogOnceForTests()
	SetupLogger()

	_, err := fmt.Fprintln(gin.DefaultWriter, "gin access entry")
	require.NoError(t, err)

	logPath := filepath.Join(dir, logFileName(time.Now()))
	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "gin access entry")
}

func TestSetupLoggerWithoutLogDirKeepsWriters(t *testing.T) {
	originalLogDir := LogDir
	originalDefaultWriter := gin.DefaultWriter
	t.Cleanup(func() {
		LogDir = originalLogDir
		gin.DefaultWriter = originalDefaultWriter
		ResetSetupLogOnceForTests()
	})

	LogDir = ""
	ResetSetupLogOnceForTests()
	SetupLogger()

	require.Equal(t, originalDefaultWriter, gin.DefaultWriter)
}

func TestLogFileName(t *testing.T) {
	day := time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC)
	require.Equal(t, "casegen-20240309.log", logFileName(day))
}

func TestAlertOptionsDisabledWithoutPushAPI(t *testing.T) {
	original := config.LogPushAPI
	config.LogPushAPI = ""
	t.Cleanup(func() { config.LogPushAPI = original })

	opts, err := alertOptions(context.Background())
	require.NoError(t, err)
	require.Empty(t, opts)
}
