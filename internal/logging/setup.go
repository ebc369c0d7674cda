package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bnema/zwr/internal/config"
)

var (
	MainLogger   zerolog.Logger
	AccessLogger zerolog.Logger
)

// Setup initializes the logging system based on the configuration and
// returns the main logger.
func Setup(cfg *config.Config) (zerolog.Logger, error) {
	return setup(cfg, os.Stderr)
}

func setup(cfg *config.Config, stderr io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var out io.Writer = stderr
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: stderr}
	}

	if cfg.Logging.File.Enabled {
		fileWriter, err := newFileWriter(cfg.Logging.File)
		if err != nil {
			return zerolog.Nop(), err
		}
		// File output stays JSON regardless of the console format.
		out = io.MultiWriter(out, fileWriter)
	}

	MainLogger = zerolog.New(out).With().Timestamp().Logger()
	AccessLogger = MainLogger.With().Str("component", "access").Logger()
	log.Logger = MainLogger

	MainLogger.Debug().
		Str("level", level.String()).
		Str("format", cfg.Logging.Format).
		Bool("file", cfg.Logging.File.Enabled).
		Msg("Logging initialized")

	return MainLogger, nil
}

func newFileWriter(cfg config.LoggingFileConfig) (*lumberjack.Logger, error) {
	// Owner-only directory, log lines may carry client addresses.
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}, nil
}

// SetLevel applies a new global level, used on config reload.
func SetLevel(level string) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if parsed != zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(parsed)
		MainLogger.Info().Str("level", parsed.String()).Msg("Log level changed")
	}
	return nil
}
