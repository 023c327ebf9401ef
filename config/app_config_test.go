/*
 * @module config/app_config_test
 * @description 应用配置解析单元测试
 * @architecture 测试层 - 纯函数测试，无外部依赖
 * @rules 覆盖默认值回退、类型转换、解析失败回退与幂等性
 * @dependencies testing, testify
 * @refs app_config.go, infra_config.go
 */

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Defaults(t *testing.T) {
	cfg := Resolve(MapEnv{})

	assert.Equal(t, AppConfig{
		Port:          3000,
		NodeEnv:       "development",
		MaxFileSize:   10485760,
		UploadDest:    "./uploads",
		ThrottleTTL:   60,
		ThrottleLimit: 10,
	}, cfg)
}

func TestResolve_ValidValues(t *testing.T) {
	cfg := Resolve(MapEnv{
		EnvPort:          "8080",
		EnvNodeEnv:       "production",
		EnvMaxFileSize:   "2048",
		EnvUploadDest:    "/var/data/uploads",
		EnvThrottleTTL:   "30",
		EnvThrottleLimit: "100",
	})

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "production", cfg.NodeEnv)
	assert.Equal(t, int64(2048), cfg.MaxFileSize)
	assert.Equal(t, "/var/data/uploads", cfg.UploadDest)
	assert.Equal(t, 30, cfg.ThrottleTTL)
	assert.Equal(t, 100, cfg.ThrottleLimit)
	assert.True(t, cfg.IsProduction())
}

func TestResolve_Fallbacks(t *testing.T) {
	testCases := []struct {
		name  string
		env   MapEnv
		check func(t *testing.T, cfg AppConfig)
	}{
		{
			name: "非数字的文件大小回退默认值",
			env:  MapEnv{EnvMaxFileSize: "abc"},
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, DefaultMaxFileSize, cfg.MaxFileSize)
			},
		},
		{
			name: "非数字端口回退默认值",
			env:  MapEnv{EnvPort: "http"},
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, DefaultPort, cfg.Port)
			},
		},
		{
			name: "零值视为未设置",
			env:  MapEnv{EnvThrottleTTL: "0", EnvThrottleLimit: "0", EnvMaxFileSize: "0"},
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, DefaultThrottleTTL, cfg.ThrottleTTL)
				assert.Equal(t, DefaultThrottleLimit, cfg.ThrottleLimit)
				assert.Equal(t, DefaultMaxFileSize, cfg.MaxFileSize)
			},
		},
		{
			name: "空字符串回退默认值",
			env:  MapEnv{EnvNodeEnv: "", EnvUploadDest: "", EnvPort: "   "},
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, DefaultNodeEnv, cfg.NodeEnv)
				assert.Equal(t, DefaultUploadDest, cfg.UploadDest)
				assert.Equal(t, DefaultPort, cfg.Port)
			},
		},
		{
			name: "负数端口原样接受",
			env:  MapEnv{EnvPort: "-1"},
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, -1, cfg.Port)
			},
		},
		{
			name: "前导零按十进制解析",
			env:  MapEnv{EnvPort: "010", EnvMaxFileSize: "010", EnvThrottleTTL: "+030"},
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, 10, cfg.Port)
				assert.Equal(t, int64(10), cfg.MaxFileSize)
				assert.Equal(t, 30, cfg.ThrottleTTL)
			},
		},
		{
			name: "前导零且含8和9的端口",
			env:  MapEnv{EnvPort: "08080"},
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, 8080, cfg.Port)
			},
		},
		{
			name: "全零视为未设置",
			env:  MapEnv{EnvPort: "000"},
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, DefaultPort, cfg.Port)
			},
		},
		{
			name: "两端空白被忽略",
			env:  MapEnv{EnvThrottleLimit: " 25 "},
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, 25, cfg.ThrottleLimit)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, Resolve(tc.env))
		})
	}
}

func TestResolve_PortExact(t *testing.T) {
	for _, port := range []string{"1", "80", "443", "3000", "65535"} {
		cfg := Resolve(MapEnv{EnvPort: port})
		assert.Equal(t, port, cfg.Addr()[1:])
	}
}

func TestResolve_Idempotent(t *testing.T) {
	env := MapEnv{EnvPort: "9000", EnvMaxFileSize: "abc", EnvNodeEnv: "test"}

	first := Resolve(env)
	second := Resolve(env)

	assert.Equal(t, first, second)
}

func TestAppConfig_ThrottleWindow(t *testing.T) {
	cfg := Resolve(MapEnv{EnvThrottleTTL: "15"})
	assert.Equal(t, 15*time.Second, cfg.ThrottleWindow())
}

func TestResolve_NonDecimalLiterals(t *testing.T) {
	for _, value := range []string{"0x10", "0o17", "0b101", "3000.5", "1e3", "3_000", "3000abc", "--1"} {
		t.Run(value, func(t *testing.T) {
			cfg := Resolve(MapEnv{EnvPort: value, EnvMaxFileSize: value})
			assert.Equal(t, DefaultPort, cfg.Port)
			assert.Equal(t, DefaultMaxFileSize, cfg.MaxFileSize)
		})
	}
}

func TestResolveInfra(t *testing.T) {
	t.Run("默认值", func(t *testing.T) {
		cfg := FromEnv(MapEnv{})

		assert.Equal(t, "postgres", cfg.Infra.Database.Driver)
		assert.Equal(t, "5432", cfg.Infra.Database.Port)
		assert.False(t, cfg.Infra.Redis.Enabled())
		assert.Equal(t, "info", cfg.Infra.Logging.Level)
		assert.Equal(t, "text", cfg.Infra.Logging.Format)
		assert.Equal(t, DefaultUploadRetentionDays, cfg.Infra.UploadRetentionDays)
		assert.Contains(t, cfg.Infra.Database.DSN(), "host=localhost")
	})

	t.Run("生产环境默认JSON日志", func(t *testing.T) {
		cfg := FromEnv(MapEnv{EnvNodeEnv: "production"})
		assert.Equal(t, "json", cfg.Infra.Logging.Format)
	})

	t.Run("DATABASE_URL优先", func(t *testing.T) {
		cfg := FromEnv(MapEnv{"DATABASE_URL": "postgres://u:p@db:5432/retail"})
		assert.Equal(t, "postgres://u:p@db:5432/retail", cfg.Infra.Database.DSN())
	})

	t.Run("sqlite使用文件路径", func(t *testing.T) {
		cfg := FromEnv(MapEnv{"DB_DRIVER": "sqlite", "SQLITE_PATH": "/tmp/retail.db"})
		assert.Equal(t, "/tmp/retail.db", cfg.Infra.Database.DSN())
	})

	t.Run("端口与库号按十进制解析", func(t *testing.T) {
		cfg := FromEnv(MapEnv{"DB_PORT": "05432", "REDIS_HOST": "cache", "REDIS_DB": "010"})
		assert.Equal(t, "5432", cfg.Infra.Database.Port)
		assert.Equal(t, 10, cfg.Infra.Redis.DB)
	})

	t.Run("负数保留天数回退默认值", func(t *testing.T) {
		cfg := FromEnv(MapEnv{"UPLOAD_RETENTION_DAYS": "-1"})
		assert.Equal(t, DefaultUploadRetentionDays, cfg.Infra.UploadRetentionDays)

		cfg = FromEnv(MapEnv{"UPLOAD_RETENTION_DAYS": "7"})
		assert.Equal(t, 7, cfg.Infra.UploadRetentionDays)
	})

	t.Run("Redis地址", func(t *testing.T) {
		cfg := FromEnv(MapEnv{"REDIS_HOST": "cache", "REDIS_DB": "x"})
		require.True(t, cfg.Infra.Redis.Enabled())
		assert.Equal(t, "cache:6379", cfg.Infra.Redis.Addr())
		assert.Equal(t, 0, cfg.Infra.Redis.DB)
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, loadDotEnv(filepath.Join(dir, "missing.env")), "文件不存在不应报错")

	broken := filepath.Join(dir, "broken.env")
	require.NoError(t, os.WriteFile(broken, []byte("RETAIL_TEST_BROKEN=\"unterminated\n"), 0o644))
	assert.Error(t, loadDotEnv(broken), "格式错误的文件应返回错误")
}
