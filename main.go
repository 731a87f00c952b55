package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Laisky/errors/v2"
	gmw "github.com/Laisky/gin-middlewares/v6"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/qa-demo/casegen/common"
	"github.com/qa-demo/casegen/common/client"
	"github.com/qa-demo/casegen/common/config"
	"github.com/qa-demo/casegen/common/graceful"
	"github.com/qa-demo/casegen/common/logger"
	"github.com/qa-demo/casegen/generator"
	"github.com/qa-demo/casegen/middleware"
	"github.com/qa-demo/casegen/router"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	common.Init()
	logger.SetupLogger()

	// Setup enhanced logger with alertPusher integration
	logger.SetupEnhancedLogger(ctx)

	logger.Logger.Info("casegen started", zap.String("version", common.Version))

	if config.GinMode != gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	client.Init()
	gen := generator.NewFromConfig()

	logLevel := glog.LevelInfo
	if config.DebugEnabled {
		logLevel = glog.LevelDebug
	}

	// Initialize HTTP server
	server := gin.New()
	server.RedirectTrailingSlash = false
	server.Use(
		middleware.PanicRecover(),
		gmw.NewLoggerMiddleware(
			gmw.WithLoggerMwColored(),
			gmw.WithLevel(logLevel.String()),
			gmw.WithLogger(logger.Logger.Named("gin")),
		),
	)
	server.Use(middleware.RequestId())
	server.Use(middleware.RequestTracker())
	server.Use(gzip.Gzip(gzip.DefaultCompression))

	router.SetRouter(server, gen)

	port := config.ServerPort
	if port == "" {
		port = strconv.Itoa(*common.Port)
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	logger.Logger.Info("server started", zap.String("address", "http://localhost:"+port))
	if gen.Mode() == generator.ModeMock {
		logger.Logger.Info("running in mock mode, set OPENAI_API_KEY to use a real model")
	} else {
		logger.Logger.Info("running in provider mode", zap.String("model", gen.Model()))
	}

	<-ctx.Done()
	stop()
	logger.Logger.Info("shutdown signal received, draining in-flight requests",
		zap.Int64("in_flight", graceful.InFlight()))

	graceful.SetDraining()
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(config.ShutdownTimeoutSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("HTTP server shutdown error", zap.Error(err))
	}
	if err := graceful.Drain(shutdownCtx); err != nil {
		logger.Logger.Error("in-flight requests did not drain before timeout", zap.Error(err))
		os.Exit(1)
	}

	logger.Logger.Info("server stopped")
}
