package main

import (
	"context"
	"errors"
	"flag"
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
	"gorm.io/gorm"

	"go-gin-contacts/internal/core/auth"
	"go-gin-contacts/internal/core/cache"
	"go-gin-contacts/internal/core/config"
	"go-gin-contacts/internal/core/database"
	"go-gin-contacts/internal/core/logger"
	"go-gin-contacts/internal/core/server"
	"go-gin-contacts/internal/repo"
	"go-gin-contacts/internal/service"
	"go-gin-contacts/internal/transport/http/handler"
	"go-gin-contacts/internal/transport/http/router"
)

func main() {
	issueFor := flag.String("issue-token", "", "print an admin JWT for the given operator and exit")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log, cfg.App.Name+"-admin")
	defer cleanup()

	jwter := auth.NewJWTer(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.AccessTokenTTLMin)*time.Minute)

	// 运维签发令牌：不连数据库
	if *issueFor != "" {
		tok, err := jwter.Issue(*issueFor, auth.RoleAdmin)
		if err != nil {
			log.Fatal("issue token", zap.Error(err))
		}
		fmt.Println(tok)
		return
	}

	if cfg.App.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	// DB 连接（失败直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	// 强制下线时要顺带清 redis 里的 token
	var tokens *cache.TokenCache
	if cfg.Redis.Enabled {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer func() { _ = c.Close() }()
		tokens = cache.NewTokenCache(c, time.Duration(cfg.Redis.TokenTTLSec)*time.Second)
	}

	store := repo.NewStore(db)
	adminSvc := service.NewAdminService(store, service.Deps{Tokens: tokens, Log: log})
	reg := router.NewRegistry(handler.NewAdminHandler(adminSvc, log))

	// 路由（后台端）
	lim := router.DefaultLimits()
	lim.Timeout = time.Duration(cfg.Limits.TimeoutSec) * time.Second
	r := router.NewAdminEngine(log, lim, jwter, reg)

	// HTTP Server
	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, 5*time.Second, 10*time.Second, 60*time.Second)

	// 启动前打印可点击地址
	host4human := cfg.App.Admin.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.Admin.Port)
	log.Info("admin api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("admin_v1", baseURL+"/admin/v1"),
	)

	// 异步启动；失败立即标红退出
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("admin api start FAILED", zap.Error(err))
		}
	}()

	// 关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("admin api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username, // 传入用户名
		Password:           cfg.DB.Password, // 传入密码
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	}, l)
	if err != nil {
		l.Fatal("db open", zap.Error(err)) // 失败日志
	}
	return db
}
