package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "ZWR"

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "zwr",
	Short: "zwr - registry short link front door",
	Long: `zwr serves the registry web UI and turns short links such as
https://registry.example/library/nginx:1.27 into UI deep links.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(viper.GetViper(), cfgFile, envFile)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./zwr.toml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

// initConfig layers .env, environment and an optional config file onto v.
// Only an explicitly requested config file is mandatory.
func initConfig(v *viper.Viper, cfgFile, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("zwr")

		// Current directory (highest priority)
		v.AddConfigPath(".")

		if userConfigDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(userConfigDir, "zwr"))
		}
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".zwr"))
		}
		v.AddConfigPath("/etc/zwr")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	return nil
}
