package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Recommend     RecommendConfig     `mapstructure:"recommend"`
	Cache         CacheConfig         `mapstructure:"cache"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
	Worker        WorkerConfig        `mapstructure:"worker"`
	Log           LogConfig           `mapstructure:"log"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Mode    string `mapstructure:"mode"`
	Port    int    `mapstructure:"port"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
}

// DSN 返回PostgreSQL连接字符串
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// Addr 返回Redis地址
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint     string `mapstructure:"endpoint"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	UseSSL       bool   `mapstructure:"use_ssl"`
	PosterBucket string `mapstructure:"poster_bucket"`
}

// KafkaConfig Kafka配置
type KafkaConfig struct {
	Brokers []string          `mapstructure:"brokers"`
	Topics  map[string]string `mapstructure:"topics"`
}

// Topic 返回逻辑名对应的 topic，未配置时使用逻辑名本身
func (k *KafkaConfig) Topic(name string) string {
	if t, ok := k.Topics[name]; ok && t != "" {
		return t
	}
	return name
}

// ElasticsearchConfig Elasticsearch配置
type ElasticsearchConfig struct {
	Hosts []string          `mapstructure:"hosts"`
	Index map[string]string `mapstructure:"index"`
}

// IndexName 返回逻辑名对应的索引名
func (e *ElasticsearchConfig) IndexName(name string) string {
	if idx, ok := e.Index[name]; ok && idx != "" {
		return idx
	}
	return name
}

// RecommendConfig 推荐参数
type RecommendConfig struct {
	NeighborLimit  int `mapstructure:"neighbor_limit"`  // 参与推荐的相似用户数
	CandidateLimit int `mapstructure:"candidate_limit"` // 推荐结果上限
}

// CacheConfig 排行/推荐缓存配置
type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
	TTL     int  `mapstructure:"ttl"` // 秒
}

// TTLDuration 返回缓存有效期
func (c *CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Enabled bool  `mapstructure:"enabled"`
	RPS     int64 `mapstructure:"rps"`
}

// WorkerConfig 索引同步 worker 配置
type WorkerConfig struct {
	GroupID        string `mapstructure:"group_id"`
	ReindexOnStart bool   `mapstructure:"reindex_on_start"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// 全局配置实例
var globalConfig *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "filmorate-go")
	v.SetDefault("app.mode", "debug")
	v.SetDefault("app.port", 8080)
	v.SetDefault("recommend.neighbor_limit", 5)
	v.SetDefault("recommend.candidate_limit", 20)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", 300)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.rps", 20)
	v.SetDefault("minio.poster_bucket", "film-posters")
	v.SetDefault("worker.group_id", "filmorate-go-film-sync")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "console")
}

// Load 加载配置文件
// 同目录或工作目录下存在 .env 时先加载，环境变量可覆盖 yaml 中的值（如 DATABASE_HOST）
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	globalConfig = &cfg

	return &cfg, nil
}

// Validate 校验关键配置
func (c *Config) Validate() error {
	if c.Recommend.NeighborLimit <= 0 {
		return fmt.Errorf("recommend.neighbor_limit must be positive, got %d", c.Recommend.NeighborLimit)
	}
	if c.Recommend.CandidateLimit <= 0 {
		return fmt.Errorf("recommend.candidate_limit must be positive, got %d", c.Recommend.CandidateLimit)
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when cache is enabled, got %d", c.Cache.TTL)
	}
	return nil
}

// Get 获取全局配置
func Get() *Config {
	if globalConfig == nil {
		panic("config not loaded, please call Load() first")
	}
	return globalConfig
}
