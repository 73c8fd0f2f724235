package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"go-gin-contacts/internal/core/cache"
	"go-gin-contacts/internal/core/config"
	"go-gin-contacts/internal/core/database"
	"go-gin-contacts/internal/core/events"
	"go-gin-contacts/internal/core/logger"
	"go-gin-contacts/internal/core/server"
	"go-gin-contacts/internal/repo"
	"go-gin-contacts/internal/service"
	"go-gin-contacts/internal/transport/http/handler"
	"go-gin-contacts/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log, cfg.App.Name)
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	if cfg.App.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.ToWriter(log.Named("gin"), zapcore.DebugLevel)

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// 可选依赖：redis token 缓存、MQ 事件
	tokens, closeCache := openTokenCache(cfg, log)
	defer closeCache()
	pub, closePub := openPublisher(cfg, log)
	defer closePub()

	store := repo.NewStore(db)
	deps := service.Deps{Tokens: tokens, Events: pub, Log: log}
	authSvc := service.NewAuthService(store, time.Duration(cfg.Auth.TokenTTLDays)*24*time.Hour, deps)

	reg := router.NewRegistry(
		handler.NewUserHandler(service.NewUserService(store, deps), authSvc),
		handler.NewContactHandler(service.NewContactService(store, deps)),
		handler.NewAddressHandler(service.NewAddressService(store, deps)),
	)

	// 路由（用户端）
	r := router.NewAPIEngine(log, limitsOf(cfg), authSvc, reg)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("contacts api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api", baseURL+"/api"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("contacts api start FAILED", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("contacts api stopped gracefully")
}

func limitsOf(cfg *config.Config) router.Limits {
	return router.Limits{
		RPS:          cfg.Limits.RPS,
		Burst:        cfg.Limits.Burst,
		Concurrency:  cfg.Limits.Concurrency,
		MaxBodyBytes: cfg.Limits.MaxBodyBytes,
		Timeout:      time.Duration(cfg.Limits.TimeoutSec) * time.Second,
	}
}

// openTokenCache redis 不可用时降级为直查数据库
func openTokenCache(cfg *config.Config, l *zap.Logger) (*cache.TokenCache, func()) {
	if !cfg.Redis.Enabled {
		return nil, func() {}
	}
	c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		l.Warn("redis unavailable, token cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		_ = c.Close()
		return nil, func() {}
	}
	l.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	return cache.NewTokenCache(c, time.Duration(cfg.Redis.TokenTTLSec)*time.Second), func() { _ = c.Close() }
}

// openPublisher MQ 连不上不影响启动
func openPublisher(cfg *config.Config, l *zap.Logger) (events.Publisher, func()) {
	if !cfg.AMQP.Enabled {
		return events.Nop{}, func() {}
	}
	p, err := events.NewAMQP(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		l.Warn("amqp unavailable, events disabled", zap.Error(err))
		return events.Nop{}, func() {}
	}
	l.Info("amqp connected", zap.String("exchange", cfg.AMQP.Exchange))
	return p, func() { _ = p.Close() }
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	}, l)
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
