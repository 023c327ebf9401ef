/*
 * @module config/infra_config
 * @description 基础设施配置：数据库、Redis、日志、路由前缀、上传清理
 * @architecture 配置层
 * @stateFlow 环境变量快照 -> 默认值回退 -> InfraConfig
 * @rules 与 AppConfig 相同的解析规则，永不失败
 * @dependencies github.com/joho/godotenv
 * @refs config/app_config.go
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"

	"github.com/joho/godotenv"
)

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver     string // postgres, sqlite
	URL        string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	Schema     string
	SQLitePath string
}

// DSN 返回连接字符串，优先使用 DATABASE_URL
func (c DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.SQLitePath
	}
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s TimeZone=Asia/Shanghai",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Schema)
}

// RedisConfig Redis配置，Host 为空表示不使用Redis
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled 是否配置了Redis
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// Addr Redis地址
func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string
	Format string
}

// InfraConfig 基础设施配置
type InfraConfig struct {
	Database            DatabaseConfig
	Redis               RedisConfig
	Logging             LoggingConfig
	BaseContext         string
	UploadRetentionDays int
	UploadCleanupCron   string
}

// 默认值
const (
	DefaultUploadRetentionDays = 30
	DefaultUploadCleanupCron   = "0 0 3 * * *" // 每天凌晨3点
)

// ResolveInfra 解析基础设施配置
func ResolveInfra(env Env, app AppConfig) InfraConfig {
	defaultFormat := "text"
	if app.IsProduction() {
		defaultFormat = "json"
	}

	return InfraConfig{
		Database: DatabaseConfig{
			Driver:     stringOrDefault(env, "DB_DRIVER", "postgres"),
			URL:        stringOrDefault(env, "DATABASE_URL", ""),
			Host:       stringOrDefault(env, "DB_HOST", "localhost"),
			Port:       strconv.Itoa(intOrDefault(env, "DB_PORT", 5432)),
			User:       stringOrDefault(env, "DB_USER", "postgres"),
			Password:   stringOrDefault(env, "DB_PASSWORD", ""),
			Name:       stringOrDefault(env, "DB_NAME", "postgres"),
			SSLMode:    stringOrDefault(env, "DB_SSLMODE", "disable"),
			Schema:     stringOrDefault(env, "DB_SCHEMA", "public"),
			SQLitePath: stringOrDefault(env, "SQLITE_PATH", "retail.db"),
		},
		Redis: RedisConfig{
			Host:     stringOrDefault(env, "REDIS_HOST", ""),
			Port:     strconv.Itoa(intOrDefault(env, "REDIS_PORT", 6379)),
			Password: stringOrDefault(env, "REDIS_PASSWORD", ""),
			DB:       intOrDefault(env, "REDIS_DB", 0),
		},
		Logging: LoggingConfig{
			Level:  stringOrDefault(env, "LOG_LEVEL", "info"),
			Format: stringOrDefault(env, "LOG_FORMAT", defaultFormat),
		},
		BaseContext:         stringOrDefault(env, "BASE_CONTEXT", ""),
		UploadRetentionDays: retentionDays(env),
		UploadCleanupCron:   stringOrDefault(env, "UPLOAD_CLEANUP_CRON", DefaultUploadCleanupCron),
	}
}

// retentionDays 上传文件保留天数，负数回退默认值，避免截止时间落在未来导致全部删除
func retentionDays(env Env) int {
	days := intOrDefault(env, "UPLOAD_RETENTION_DAYS", DefaultUploadRetentionDays)
	if days < 0 {
		return DefaultUploadRetentionDays
	}
	return days
}

// Config 进程级配置，在 main 中构造一次后注入各组件
type Config struct {
	App   AppConfig
	Infra InfraConfig
}

// Load 加载 .env 文件（可选）并从进程环境变量解析配置
func Load() Config {
	if err := loadDotEnv(); err != nil {
		slog.Warn("加载 .env 文件失败，使用环境变量", "error", err)
	}
	return FromEnv(OSEnv{})
}

// loadDotEnv 加载 .env 文件，文件不存在不视为错误
func loadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("未找到 .env 文件，使用环境变量")
		return nil
	}
	return err
}

// FromEnv 从指定环境变量快照解析全部配置
func FromEnv(env Env) Config {
	app := Resolve(env)
	return Config{
		App:   app,
		Infra: ResolveInfra(env, app),
	}
}
