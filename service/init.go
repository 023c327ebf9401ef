/*
 * @module service/init
 * @description 服务初始化模块，负责数据库连接、迁移、限流器与各业务服务的装配
 * @architecture 分层架构 - 服务层
 * @stateFlow 应用启动时在 main 中构造一次 Container，显式注入到路由层
 * @rules 不使用包级全局服务实例；所有依赖经由 Container 传递
 * @dependencies gorm.io/gorm, github.com/prometheus/client_golang
 * @refs config/infra_config.go
 */

package service

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"retail-service/config"
	"retail-service/service/cleanup"
	"retail-service/service/clients"
	"retail-service/service/database"
	"retail-service/service/metrics"
	"retail-service/service/rate_limiter"
	"retail-service/service/upload"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Container 进程级依赖容器
type Container struct {
	Config        config.Config
	DB            *gorm.DB
	Metrics       *metrics.Metrics
	Limiter       rate_limiter.Limiter
	ClientService *clients.Service
	UploadService *upload.Service
	UploadCleanup *cleanup.UploadCleanupService
}

// NewContainer 连接数据库、执行迁移并装配所有服务
func NewContainer(cfg config.Config, reg prometheus.Registerer) (*Container, error) {
	db, err := database.Open(cfg.Infra.Database)
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}

	return NewContainerWithDB(cfg, db, reg), nil
}

// NewContainerWithDB 使用已有数据库连接装配服务
func NewContainerWithDB(cfg config.Config, db *gorm.DB, reg prometheus.Registerer) *Container {
	uploadService := upload.NewService(db, filepath.Clean(cfg.App.UploadDest), cfg.App.MaxFileSize)

	c := &Container{
		Config:        cfg,
		DB:            db,
		Metrics:       metrics.New(reg),
		Limiter:       newLimiter(cfg.Infra.Redis),
		ClientService: clients.NewService(db),
		UploadService: uploadService,
		UploadCleanup: cleanup.NewUploadCleanupService(
			uploadService,
			cfg.Infra.UploadRetentionDays,
			cfg.Infra.UploadCleanupCron,
		),
	}

	slog.Info("服务初始化完成",
		"node_env", cfg.App.NodeEnv,
		"upload_dest", cfg.App.UploadDest,
		"max_file_size", cfg.App.MaxFileSize,
		"throttle_ttl", cfg.App.ThrottleTTL,
		"throttle_limit", cfg.App.ThrottleLimit)

	return c
}

// newLimiter 配置了Redis时使用分布式限流，连接失败回退到进程内限流
func newLimiter(cfg config.RedisConfig) rate_limiter.Limiter {
	if !cfg.Enabled() {
		slog.Info("未配置Redis，使用进程内限流器")
		return rate_limiter.NewMemoryRateLimiter()
	}

	limiter, err := rate_limiter.NewRedisRateLimiter(cfg)
	if err != nil {
		slog.Warn("Redis限流器初始化失败，使用进程内限流器", "error", err)
		return rate_limiter.NewMemoryRateLimiter()
	}
	return limiter
}

// Start 启动后台任务
func (c *Container) Start() error {
	if err := c.UploadCleanup.StartScheduledCleanup(); err != nil {
		return fmt.Errorf("启动上传文件清理失败: %w", err)
	}
	return nil
}

// Ping 检查数据库是否可用
func (c *Container) Ping() error {
	return database.Ping(c.DB)
}

// Close 停止后台任务并释放资源
func (c *Container) Close() {
	c.UploadCleanup.StopScheduledCleanup()

	if err := c.Limiter.Close(); err != nil {
		slog.Warn("关闭限流器失败", "error", err)
	}
	if sqlDB, err := c.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
