package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	JWT            JWTConfig
	Redis          RedisConfig
	Tracing        TracingConfig        `mapstructure:"tracing"`
	CORS           CORSConfig           `mapstructure:"cors"`
	RateLimit      RateLimitConfig      `mapstructure:"rate_limit"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
	Revision       RevisionConfig       `mapstructure:"revision"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool `mapstructure:"-"` // 强制执行数据库迁移
	MigrateOnly  bool `mapstructure:"-"` // 仅迁移模式（迁移后退出）
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// RecommendationConfig 推荐打分的可调参数
type RecommendationConfig struct {
	TopicBaseline   int `mapstructure:"topic_baseline"`   // 未练习过的主题基准分（0-50）
	PatternBaseline int `mapstructure:"pattern_baseline"` // 未练习过的模式基准分（0-30）
	CooldownDays    int `mapstructure:"cooldown_days"`    // 已解决推荐的冷却天数
	DefaultTopK     int `mapstructure:"default_top_k"`
}

type RevisionConfig struct {
	DefaultDueLimit int `mapstructure:"default_due_limit"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("CODECOACH")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("recommendation.topic_baseline", 25)
	viper.SetDefault("recommendation.pattern_baseline", 15)
	viper.SetDefault("recommendation.cooldown_days", 14)
	viper.SetDefault("recommendation.default_top_k", 5)
	viper.SetDefault("revision.default_due_limit", 5)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	// 生产环境校验 JWT Secret 强度
	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	if cfg.Recommendation.TopicBaseline < 0 || cfg.Recommendation.TopicBaseline > 50 {
		return nil, fmt.Errorf("recommendation.topic_baseline must be within [0,50], got %d", cfg.Recommendation.TopicBaseline)
	}
	if cfg.Recommendation.PatternBaseline < 0 || cfg.Recommendation.PatternBaseline > 30 {
		return nil, fmt.Errorf("recommendation.pattern_baseline must be within [0,30], got %d", cfg.Recommendation.PatternBaseline)
	}

	return &cfg, nil
}
