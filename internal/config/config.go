package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// UIConfig locates the single-page application on disk.
type UIConfig struct {
	Dir   string `mapstructure:"dir"`
	Shell string `mapstructure:"shell"`
}

type LoggingConfig struct {
	Level  string            `mapstructure:"level"`
	Format string            `mapstructure:"format"`
	File   LoggingFileConfig `mapstructure:"file"`
}

type LoggingFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port"`
	Path    string `mapstructure:"path"`
}

// setDefaults registers every default on v.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("ui.dir", "./ui")
	v.SetDefault("ui.shell", "index.html")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "./logs/zwr.log")
	v.SetDefault("logging.file.max_size", 10)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 7)
	v.SetDefault("logging.file.compress", true)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config

	setDefaults(v)

	// Unmarshal the whole tree rather than per section: viper only merges
	// defaults, file and environment per leaf key.
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.UI.Dir == "" {
		return fmt.Errorf("ui.dir is required")
	}
	if c.UI.Shell == "" || filepath.IsAbs(c.UI.Shell) || strings.Contains(c.UI.Shell, "..") {
		return fmt.Errorf("ui.shell must be a file name relative to ui.dir, got %q", c.UI.Shell)
	}

	// ParseLevel maps "" to NoLevel, which would silence every leveled event.
	if c.Logging.Level == "" {
		return fmt.Errorf("logging.level is required")
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be one of: console, json")
	}
	if c.Logging.File.Enabled && c.Logging.File.Path == "" {
		return fmt.Errorf("logging.file.path is required when file logging is enabled")
	}

	if c.Metrics.Enabled {
		if c.Metrics.Port < 1 || c.Metrics.Port > 65535 {
			return fmt.Errorf("metrics.port must be between 1 and 65535, got %d", c.Metrics.Port)
		}
		if c.Metrics.Port == c.Server.Port {
			return fmt.Errorf("metrics.port must differ from server.port")
		}
		if !strings.HasPrefix(c.Metrics.Path, "/") {
			return fmt.Errorf("metrics.path must start with '/'")
		}
	}

	return nil
}

// ShellPath is the on-disk location of the SPA shell document.
func (c *Config) ShellPath() string {
	return filepath.Join(c.UI.Dir, c.UI.Shell)
}

// ListenAddr binds all interfaces.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) MetricsAddr() string {
	return fmt.Sprintf(":%d", c.Metrics.Port)
}

// RestartRequired reports whether moving from c to next changes a key that
// only takes effect on a new listener.
func (c *Config) RestartRequired(next *Config) bool {
	return c.Server != next.Server || c.UI != next.UI || c.Metrics != next.Metrics
}
