package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"retail-service/api"
	"retail-service/config"
	_ "retail-service/docs"
	"retail-service/logger"
	"retail-service/service"
	"syscall"
	"time"

	daprd "github.com/dapr/go-sdk/service/http"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title 零售餐饮管理服务 API
// @version 1.0
// @description 多租户零售/餐饮管理后台服务，提供客户管理、文件上传、枚举元数据与配置查询
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatalf("error: %v", err)
	}
}

// run 启动服务直到收到退出信号；所有退出路径都会执行容器清理
func run() error {
	cfg := config.Load()
	logger.InitLogger(cfg.Infra.Logging.Level, cfg.Infra.Logging.Format)

	container, err := service.NewContainer(cfg, prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("服务初始化失败: %w", err)
	}
	defer container.Close()

	if err := container.Start(); err != nil {
		return fmt.Errorf("后台任务启动失败: %w", err)
	}

	mux := chi.NewRouter()

	// 如果有BASE_CONTEXT，则在该路径下挂载所有路由
	if cfg.Infra.BaseContext != "" {
		mux.Route(cfg.Infra.BaseContext, func(r chi.Router) {
			api.InitRoute(r, container)
			r.Handle("/metrics", promhttp.Handler())
			r.Handle("/swagger*", httpSwagger.WrapHandler)
		})
	} else {
		api.InitRoute(mux, container)
		mux.Handle("/metrics", promhttp.Handler())
		mux.Handle("/swagger*", httpSwagger.WrapHandler)
	}

	s := daprd.NewServiceWithMux(cfg.App.Addr(), mux)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("收到退出信号，正在停止服务")
		shutdownDone := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(shutdownDone)
		}()
		select {
		case <-shutdownDone:
		case <-time.After(10 * time.Second):
			s.Stop()
		}
	}()

	slog.Info("服务启动", "addr", cfg.App.Addr(), "node_env", cfg.App.NodeEnv)
	if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
