package cmd

import (
	"fmt"
	"os"
	"time"

	logging "github.com/ipfs/go-log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pollyhq/polly-go/internal/config"
)

var (
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "polly",
	Short: "Polly poll-voting API client",
	Long: `Polly is a CLI client for the Polly poll-voting service.

It provides commands for account registration and login, poll creation,
listing, voting, results retrieval, and deletion, plus an end-to-end demo
workflow. Every remote call is reported as a normalized result with a
success flag, status code, payload, and message.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize()

	// Initialize viper instance first
	v = config.New()

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.polly/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "log format (json, text)")
	rootCmd.PersistentFlags().String("api-url", "http://localhost:8000", "Polly API base URL")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "request timeout")

	// Bind flags to viper
	if err := v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(err)
	}
	if err := v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		panic(err)
	}
	if err := v.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url")); err != nil {
		panic(err)
	}
	if err := v.BindPFlag("api.timeout", rootCmd.PersistentFlags().Lookup("timeout")); err != nil {
		panic(err)
	}
}

func initConfig() error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	var err error
	cfg, err = config.Load(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Log.Level != "" {
		lvl, err := logging.LevelFromString(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("invalid log level (%s): %w", cfg.Log.Level, err)
		}
		logging.SetAllLoggers(lvl)
	} else {
		logging.SetAllLoggers(logging.LevelInfo)
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}

// GetViper returns the viper instance
func GetViper() *viper.Viper {
	return v
}
