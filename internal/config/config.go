package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	ChefDirectory ChefDirectoryConfig `toml:"chef_directory"`
	Notifications NotificationsConfig `toml:"notifications"`
	Auth          AuthConfig          `toml:"auth"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ChefDirectoryConfig настройки внешнего API каталога поваров
type ChefDirectoryConfig struct {
	BaseURL         string `toml:"base_url"`
	GetDataEndpoint string `toml:"get_data_endpoint"`
	Timeout         int    `toml:"timeout"` // секунды
}

// NotificationsConfig настройки side-channel уведомлений (MSG91 flow API)
type NotificationsConfig struct {
	Enabled    bool   `toml:"enabled"`
	URL        string `toml:"url"`
	AuthKey    string `toml:"auth_key"`
	TemplateID string `toml:"template_id"`
	Recipient  string `toml:"recipient"`
	Timeout    int    `toml:"timeout"` // секунды
}

// AuthConfig настройки аутентификации
type AuthConfig struct {
	OTPLength         int `toml:"otp_length"`
	SessionTTLMinutes int `toml:"session_ttl_minutes"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.ChefDirectory.BaseURL == "" {
		return fmt.Errorf("config: chef_directory.base_url is required")
	}
	if c.Auth.OTPLength <= 0 {
		c.Auth.OTPLength = 6
	}
	if c.Auth.SessionTTLMinutes <= 0 {
		c.Auth.SessionTTLMinutes = 24 * 60
	}
	return nil
}
