package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server struct {
		Port         string        `mapstructure:"port"`
		Mode         string        `mapstructure:"mode"`
		PublicOrigin string        `mapstructure:"public_origin"`
		ShutdownWait time.Duration `mapstructure:"shutdown_wait"`
		CORSOrigins  []string      `mapstructure:"cors_origins"`
	} `mapstructure:"server"`

	Database struct {
		Driver string `mapstructure:"driver"` // postgres | sqlite
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"database"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"` // json | console
	} `mapstructure:"log"`

	Seed struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"seed"`

	ML struct {
		ServiceURL     string        `mapstructure:"service_url"`
		Timeout        time.Duration `mapstructure:"timeout"`
		HealthInterval string        `mapstructure:"health_interval"` // cron 表达式，如 @every 30s
	} `mapstructure:"ml"`

	Upload struct {
		MaxBytes int64 `mapstructure:"max_bytes"`
	} `mapstructure:"upload"`

	RateLimit struct {
		ClassifyPerMinute int `mapstructure:"classify_per_minute"`
	} `mapstructure:"rate_limit"`

	Kafka struct {
		Enabled  bool     `mapstructure:"enabled"`
		Brokers  []string `mapstructure:"brokers"`
		Topic    string   `mapstructure:"topic"`
		ClientID string   `mapstructure:"client_id"`
	} `mapstructure:"kafka"`

	Storage struct {
		Provider  string `mapstructure:"provider"` // s3 | local
		Bucket    string `mapstructure:"bucket"`
		Region    string `mapstructure:"region"`
		AccessKey string `mapstructure:"access_key"`
		SecretKey string `mapstructure:"secret_key"`
		Endpoint  string `mapstructure:"endpoint"`
		CDNDomain string `mapstructure:"cdn_domain"`
		BasePath  string `mapstructure:"base_path"`
		BaseURL   string `mapstructure:"base_url"`
	} `mapstructure:"storage"`
}

// 环境变量与配置键的显式映射（兼容旧部署用的变量名）
var envBindings = map[string]string{
	"server.port":          "SERVER_PORT",
	"server.public_origin": "PUBLIC_ORIGIN",
	"database.driver":      "DATABASE_DRIVER",
	"database.dsn":         "DATABASE_DSN",
	"ml.service_url":       "ML_SERVICE_URL",
	"ml.timeout":           "ML_TIMEOUT",
	"kafka.brokers":        "KAFKA_BROKERS",
	"storage.provider":     "STORAGE_PROVIDER",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.public_origin", "http://localhost:3000")
	v.SetDefault("server.shutdown_wait", 5*time.Second)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "warisan.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("seed.enabled", true)

	v.SetDefault("ml.service_url", "")
	v.SetDefault("ml.timeout", 8*time.Second)
	v.SetDefault("ml.health_interval", "@every 30s")

	v.SetDefault("upload.max_bytes", int64(5*1024*1024))
	v.SetDefault("rate_limit.classify_per_minute", 30)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"127.0.0.1:9092"})
	v.SetDefault("kafka.topic", "warisan-events")
	v.SetDefault("kafka.client_id", "warisan-digital")

	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.base_path", "./uploads")
	v.SetDefault("storage.base_url", "http://localhost:8080/uploads")
}

// Load 读取 config/config.yaml（可选），再叠加环境变量
// paths 为空时搜索 ./config 和当前目录
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if len(paths) == 0 {
		paths = []string{"./config", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// KAFKA_BROKERS=a:9092,b:9092
	if len(cfg.Kafka.Brokers) == 1 && strings.Contains(cfg.Kafka.Brokers[0], ",") {
		cfg.Kafka.Brokers = strings.Split(cfg.Kafka.Brokers[0], ",")
	}
	cfg.ML.ServiceURL = strings.TrimRight(cfg.ML.ServiceURL, "/")
	cfg.Server.PublicOrigin = strings.TrimRight(cfg.Server.PublicOrigin, "/")

	return &cfg, nil
}

// MLEnabled 是否配置了远端识别服务
func (c *Config) MLEnabled() bool {
	return c.ML.ServiceURL != ""
}
