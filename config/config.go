package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Redis  RedisConfig  `mapstructure:"redis"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Email  EmailConfig  `mapstructure:"email"`
	S3     S3Config     `mapstructure:"s3"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// DBConfig holds database specific configuration
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// RedisConfig holds redis specific configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	Expiration        time.Duration `mapstructure:"expiration"`
	RefreshExpiration time.Duration `mapstructure:"refresh_expiration"`
}

// CORSConfig holds CORS specific configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds SMTP transport configuration
type EmailConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	FromName    string `mapstructure:"from_name"`
	FromAddress string `mapstructure:"from_address"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// S3Config holds resume storage configuration (S3 or MinIO)
type S3Config struct {
	Region       string `mapstructure:"region"`
	BaseEndpoint string `mapstructure:"base_endpoint"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	Bucket       string `mapstructure:"bucket"`
}

// Load configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app/config")
	viper.AddConfigPath("/app")

	// --- Set Default Values ---
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.name", "placeverse")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("jwt.secret", "change-me-in-production")
	viper.SetDefault("jwt.expiration", "15m")
	viper.SetDefault("jwt.refresh_expiration", "24h")
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	viper.SetDefault("email.host", "localhost")
	viper.SetDefault("email.port", 587)
	viper.SetDefault("email.from_name", "PlaceVerse")
	viper.SetDefault("email.from_address", "no-reply@placeverse.local")
	viper.SetDefault("email.frontend_url", "http://localhost:3000")
	viper.SetDefault("s3.region", "us-east-1")
	viper.SetDefault("s3.bucket", "placeverse-resumes")

	// --- Read Config File (Optional) ---
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found, using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %v", err)
		}
	}

	// --- Bind Environment Variables ---
	viper.SetEnvPrefix("PLACEVERSE")
	viper.AutomaticEnv()
	viper.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")
	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("email.password", "EMAIL_PASS")
	viper.BindEnv("s3.secret_key", "S3_SECRET_KEY")

	// --- Unmarshal Config ---
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// --- Manual Override from Specific Environment Variables (Highest Priority) ---
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if portStr := os.Getenv("DB_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.DB.Port = port
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.DB.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if host := os.Getenv("EMAIL_HOST"); host != "" {
		cfg.Email.Host = host
	}
	if portStr := os.Getenv("EMAIL_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Email.Port = port
		}
	}
	if user := os.Getenv("EMAIL_USER"); user != "" {
		cfg.Email.User = user
	}

	// Handle CORS_ALLOWED_ORIGINS env var (comma-separated string -> slice)
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		cfg.CORS.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.CORS.AllowedOrigins {
			cfg.CORS.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}

	log.Printf("Configuration loaded: Server Port=%d, DB Host=%s, Redis Addr=%s, Allowed Origins=%v",
		cfg.Server.Port, cfg.DB.Host, cfg.Redis.Addr, cfg.CORS.AllowedOrigins)

	return &cfg, nil
}
