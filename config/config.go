package config

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Admin    AdminConfig    `yaml:"admin"`
	Mail     MailConfig     `yaml:"mail"`
	Session  SessionConfig  `yaml:"session"`
}

type ServerConfig struct {
	Addr          string `yaml:"addr"`
	Mode          string `yaml:"mode"`
	Timezone      string `yaml:"timezone"`
	SecretKey     string `yaml:"secret_key"`
	SecureCookies bool   `yaml:"secure_cookies"`
	CSRF          bool   `yaml:"csrf"`
	StaticDir     string `yaml:"static_dir"`
	UploadDir     string `yaml:"upload_dir"`
	LogLevel      string `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`

	MaxConns        int           `yaml:"max_conns"`
	MinConns        int           `yaml:"min_conns"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time"`
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`

	PoolSize    int           `yaml:"pool_size"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

// AdminConfig is the single shared admin credential. PasswordHash (bcrypt) wins over Password.
type AdminConfig struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

type MailConfig struct {
	ResendAPIKey string `yaml:"resend_api_key"`
	From         string `yaml:"from"`
	NotifyTo     string `yaml:"notify_to"`
	UseStream    bool   `yaml:"use_stream"`
}

type SessionConfig struct {
	CookieName string        `yaml:"cookie_name"`
	TTL        time.Duration `yaml:"ttl"`
}

// LoadConfig reads the environment and, when VBE_CONFIG names a YAML file,
// overlays the keys present in that file.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Admin:    GetAdminConfig(),
		Mail:     GetMailConfig(),
		Session:  GetSessionConfig(),
	}

	if path := os.Getenv("VBE_CONFIG"); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // test database runs on 5433
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",

		MaxConns:        4,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // test redis runs on 6380
		Password: "",
		DB:       1,

		PoolSize:    4,
		DialTimeout: 2 * time.Second,
	}

	return &Config{
		Server: ServerConfig{
			Addr:      ":0",
			Mode:      "test",
			Timezone:  "Asia/Seoul",
			SecretKey: "test-secret",
			StaticDir: "static",
			UploadDir: os.TempDir(),
			LogLevel:  "error",
		},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Admin:    AdminConfig{Username: "admin", Password: "blackeagles2025"},
		Session:  SessionConfig{CookieName: "vbe_session", TTL: time.Hour},
	}
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Addr:          getEnv("SERVER_ADDR", ":8080"),
		Mode:          getEnv("GIN_MODE", "release"),
		Timezone:      getEnv("TZ_NAME", "Asia/Seoul"),
		SecretKey:     getEnv("SECRET_KEY", "devsecret-change-this-in-production"),
		SecureCookies: getEnvBool("SECURE_COOKIES", false),
		CSRF:          getEnvBool("CSRF_ENABLED", true),
		StaticDir:     getEnv("STATIC_DIR", "static"),
		UploadDir:     getEnv("UPLOAD_DIR", "static/uploads"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "blackeagles"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),

		MaxConns:        getEnvInt("DB_MAX_CONNS", 10),
		MinConns:        getEnvInt("DB_MIN_CONNS", 2),
		MaxConnLifetime: getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		MaxConnIdleTime: getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
	}
}

func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),

		PoolSize:    getEnvInt("REDIS_POOL_SIZE", 10),
		DialTimeout: getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
	}
}

func GetAdminConfig() AdminConfig {
	return AdminConfig{
		Username:     getEnv("ADMIN_USERNAME", "admin"),
		Password:     getEnv("ADMIN_PASSWORD", "blackeagles2025"),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}
}

func GetMailConfig() MailConfig {
	return MailConfig{
		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		From:         getEnv("MAIL_DEFAULT_SENDER", "Virtual Black Eagles <noreply@example.com>"),
		NotifyTo:     getEnv("MAIL_NOTIFY_TO", ""),
		UseStream:    getEnvBool("MAIL_USE_STREAM", false),
	}
}

func GetSessionConfig() SessionConfig {
	return SessionConfig{
		CookieName: getEnv("SESSION_COOKIE", "vbe_session"),
		TTL:        getEnvDuration("SESSION_TTL", 24*time.Hour),
	}
}

// Location is the zone in which "today" is evaluated.
func (s ServerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// Key derives a 32-byte key from the secret for CSRF and cookie signing.
func (s ServerConfig) Key(purpose string) []byte {
	sum := sha256.Sum256([]byte(purpose + ":" + s.SecretKey))
	return sum[:]
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		return fallback
	}
	return d
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return fallback
	}
	return v
}
