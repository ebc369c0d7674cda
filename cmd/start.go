package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bnema/zwr/internal/config"
	"github.com/bnema/zwr/internal/logging"
	"github.com/bnema/zwr/internal/server"
	"github.com/bnema/zwr/pkg/version"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the front door",
	Long:  `Serve the UI and redirect registry short links on the configured port.`,
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.Setup(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	logger.Info().
		Str("version", version.Version()).
		Int("port", cfg.Server.Port).
		Bool("metrics", cfg.Metrics.Enabled).
		Msg("Starting zwr...")

	if v.ConfigFileUsed() != "" {
		current := cfg
		v.OnConfigChange(func(e fsnotify.Event) {
			logger.Info().
				Str("file", e.Name).
				Str("op", e.Op.String()).
				Msg("Configuration file changed, reloading...")
			current = reloadConfig(v, current, logger)
		})
		v.WatchConfig()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, logger, logging.AccessLogger).Start(ctx); err != nil {
		logger.Error().Err(err).Msg("Front door stopped with error")
		return err
	}

	logger.Info().Msg("Front door stopped")
	return nil
}

// reloadConfig re-reads v and applies what can change at runtime. On error
// the current config stays in effect.
func reloadConfig(v *viper.Viper, current *config.Config, logger zerolog.Logger) *config.Config {
	next, err := config.Load(v)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to reload configuration")
		return current
	}

	if err := logging.SetLevel(next.Logging.Level); err != nil {
		logger.Error().Err(err).Msg("Failed to apply log level")
	}

	if current.RestartRequired(next) {
		logger.Warn().Msg("Listener or UI settings changed, restart zwr to apply them")
	}

	logger.Info().Msg("Configuration reloaded successfully")
	return next
}
