package main

import (
	"ces/internal/audit"
	"ces/internal/database"
	"ces/internal/router"
	"ces/internal/session"
	"ces/pkg/config"
	"ces/pkg/jwt"
	"ces/pkg/logger"
	"ces/pkg/transport"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.GetConfig()

	// 初始化日志
	if err := logger.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	appLogger := logger.GetLogger()
	appLogger.Info("Starting CES Console...")

	deps := router.Dependencies{
		Config:     cfg,
		Logger:     appLogger,
		JWTManager: jwt.GetJWTManager(),
		Transport: transport.NewHTTPTransport(transport.Options{
			BaseURL:   cfg.CES.BaseURL,
			Timeout:   time.Duration(cfg.CES.TimeoutSeconds) * time.Second,
			Token:     cfg.CES.Token,
			UserAgent: cfg.CES.UserAgent,
			Logger:    appLogger,
		}),
	}

	// 操作日志（可选）
	if cfg.Database.Enabled {
		if err := database.Initialize(cfg); err != nil {
			appLogger.Fatalf("Failed to initialize database: %v", err)
		}
		defer func() {
			if err := database.Close(); err != nil {
				appLogger.Error("Failed to close database:", err)
			}
		}()

		if err := database.Migrate(); err != nil {
			appLogger.Fatalf("Failed to migrate database: %v", err)
		}
		deps.Recorder = audit.NewGormRecorder(database.GetDB())
	} else {
		appLogger.Info("Database disabled, operation logs will not be recorded")
	}

	// 令牌注销（可选）
	if cfg.Redis.Enabled {
		client := database.GetRedisClient()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err != nil {
			appLogger.Fatalf("Failed to connect redis: %v", err)
		}
		defer func() {
			if err := database.CloseRedis(); err != nil {
				appLogger.Error("Failed to close Redis:", err)
			}
		}()
		deps.Revoker = session.NewRedisRevoker(client, cfg.Redis.Prefix)
	} else {
		appLogger.Info("Redis disabled, logout will not revoke tokens")
	}

	// 设置Gin模式
	gin.SetMode(cfg.Server.Mode)

	r := router.SetupRouter(deps)

	// CES超时之外再留出余量
	writeTimeout := time.Duration(cfg.CES.TimeoutSeconds)*time.Second + 5*time.Second
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout,
	}

	// 启动服务
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	appLogger.Infof("Server started on port %s, CES backend %s", cfg.Server.Port, cfg.CES.BaseURL)

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown:", err)
	}
	appLogger.Info("Server exited")
}
