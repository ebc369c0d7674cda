package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "./ui", cfg.UI.Dir)
	assert.Equal(t, "index.html", cfg.UI.Shell)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Logging.File.Enabled)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	assert.Equal(t, ":8080", cfg.ListenAddr())
	assert.Equal(t, filepath.Join("./ui", "index.html"), cfg.ShellPath())
}

func TestLoad_FromFile(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "zwr.toml")

	content := `
[server]
port = 9000
shutdown_timeout = "3s"

[ui]
dir = "/srv/ui"

[logging]
level = "debug"
format = "json"

[metrics]
enabled = true
port = 9100
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	v := viper.New()
	v.SetConfigFile(configFile)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/srv/ui", cfg.UI.Dir)
	assert.Equal(t, "index.html", cfg.UI.Shell)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9100", cfg.MetricsAddr())
}

func TestLoad_EmptyLevelRejected(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "zwr.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[logging]\nlevel = \"\"\n"), 0644))

	v := viper.New()
	v.SetConfigFile(configFile)
	require.NoError(t, v.ReadInConfig())

	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level is required")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ZWR_SERVER_PORT", "8181")
	t.Setenv("ZWR_LOGGING_LEVEL", "warn")

	v := viper.New()
	v.SetEnvPrefix("ZWR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load(viper.New())
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "port too large",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "empty ui dir",
			mutate:  func(c *Config) { c.UI.Dir = "" },
			wantErr: "ui.dir",
		},
		{
			name:    "shell escapes ui dir",
			mutate:  func(c *Config) { c.UI.Shell = "../index.html" },
			wantErr: "ui.shell",
		},
		{
			name:    "absolute shell",
			mutate:  func(c *Config) { c.UI.Shell = "/etc/passwd" },
			wantErr: "ui.shell",
		},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "empty level",
			mutate:  func(c *Config) { c.Logging.Level = "" },
			wantErr: "logging.level",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name: "file logging without path",
			mutate: func(c *Config) {
				c.Logging.File.Enabled = true
				c.Logging.File.Path = ""
			},
			wantErr: "logging.file.path",
		},
		{
			name: "metrics port clashes with server",
			mutate: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.Port = c.Server.Port
			},
			wantErr: "must differ",
		},
		{
			name: "metrics path without slash",
			mutate: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.Path = "metrics"
			},
			wantErr: "metrics.path",
		},
		{
			name: "metrics settings ignored while disabled",
			mutate: func(c *Config) {
				c.Metrics.Port = c.Server.Port
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRestartRequired(t *testing.T) {
	base, err := Load(viper.New())
	require.NoError(t, err)

	same := *base
	same.Logging.Level = "debug"
	assert.False(t, base.RestartRequired(&same), "log level is applied live")

	moved := *base
	moved.Server.Port = 9999
	assert.True(t, base.RestartRequired(&moved))

	newDir := *base
	newDir.UI.Dir = "/other"
	assert.True(t, base.RestartRequired(&newDir))
}
