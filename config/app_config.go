/*
 * @module config/app_config
 * @description 应用配置解析模块，从环境变量快照生成带默认值的强类型配置
 * @architecture 配置层 - 进程启动时构造一次，之后只读
 * @stateFlow 环境变量快照 -> 类型转换 -> 默认值回退 -> AppConfig
 * @rules 解析永不失败：缺失、空值、无法解析或为0的数值一律回退到默认值；不做范围校验
 * @dependencies github.com/spf13/cast
 * @refs config/infra_config.go
 */

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// 环境变量键
const (
	EnvPort          = "PORT"
	EnvNodeEnv       = "NODE_ENV"
	EnvMaxFileSize   = "MAX_FILE_SIZE"
	EnvUploadDest    = "UPLOAD_DEST"
	EnvThrottleTTL   = "THROTTLE_TTL"
	EnvThrottleLimit = "THROTTLE_LIMIT"
)

// 默认值
const (
	DefaultPort          = 3000
	DefaultNodeEnv       = "development"
	DefaultMaxFileSize   = int64(10 * 1024 * 1024) // 10 MiB
	DefaultUploadDest    = "./uploads"
	DefaultThrottleTTL   = 60 // 秒
	DefaultThrottleLimit = 10
)

// Env 环境变量读取接口
type Env interface {
	Lookup(key string) (string, bool)
}

// OSEnv 读取当前进程环境变量
type OSEnv struct{}

// Lookup 实现 Env
func (OSEnv) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv 固定的环境变量快照
type MapEnv map[string]string

// Lookup 实现 Env
func (m MapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// AppConfig 应用配置，构造后不可变，按值传递给各个组件
type AppConfig struct {
	Port          int    `json:"port"`
	NodeEnv       string `json:"node_env"`
	MaxFileSize   int64  `json:"max_file_size"`
	UploadDest    string `json:"upload_dest"`
	ThrottleTTL   int    `json:"throttle_ttl"`
	ThrottleLimit int    `json:"throttle_limit"`
}

// Resolve 从环境变量快照解析应用配置
func Resolve(env Env) AppConfig {
	return AppConfig{
		Port:          intOrDefault(env, EnvPort, DefaultPort),
		NodeEnv:       stringOrDefault(env, EnvNodeEnv, DefaultNodeEnv),
		MaxFileSize:   int64OrDefault(env, EnvMaxFileSize, DefaultMaxFileSize),
		UploadDest:    stringOrDefault(env, EnvUploadDest, DefaultUploadDest),
		ThrottleTTL:   intOrDefault(env, EnvThrottleTTL, DefaultThrottleTTL),
		ThrottleLimit: intOrDefault(env, EnvThrottleLimit, DefaultThrottleLimit),
	}
}

// ThrottleWindow 限流时间窗口
func (c AppConfig) ThrottleWindow() time.Duration {
	return time.Duration(c.ThrottleTTL) * time.Second
}

// Addr HTTP监听地址
func (c AppConfig) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// IsProduction 是否为生产环境
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.NodeEnv, "production")
}

// stringOrDefault 获取字符串环境变量，缺失或为空时返回默认值
func stringOrDefault(env Env, key, defaultValue string) string {
	if value, ok := env.Lookup(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// intOrDefault 获取整数环境变量，缺失、解析失败或为0时返回默认值
func intOrDefault(env Env, key string, defaultValue int) int {
	value, ok := lookupTrimmed(env, key)
	if !ok {
		return defaultValue
	}
	digits, err := decimalString(value)
	if err != nil {
		return defaultValue
	}
	n, err := cast.ToIntE(digits)
	if err != nil || n == 0 {
		return defaultValue
	}
	return n
}

// int64OrDefault 同 intOrDefault，用于字节数等大整数
func int64OrDefault(env Env, key string, defaultValue int64) int64 {
	value, ok := lookupTrimmed(env, key)
	if !ok {
		return defaultValue
	}
	digits, err := decimalString(value)
	if err != nil {
		return defaultValue
	}
	n, err := cast.ToInt64E(digits)
	if err != nil || n == 0 {
		return defaultValue
	}
	return n
}

var decimalPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)

// decimalString 校验十进制整数并去掉前导零。
// cast 按 Go 字面量规则解析（0x、0o、前导0为八进制、下划线分隔），因此先归一化为纯十进制。
func decimalString(value string) (string, error) {
	if !decimalPattern.MatchString(value) {
		return "", fmt.Errorf("非十进制整数: %q", value)
	}
	sign := ""
	if value[0] == '+' || value[0] == '-' {
		sign, value = value[:1], value[1:]
	}
	digits := strings.TrimLeft(value, "0")
	if digits == "" {
		return "0", nil
	}
	return sign + digits, nil
}

func lookupTrimmed(env Env, key string) (string, bool) {
	value, ok := env.Lookup(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
