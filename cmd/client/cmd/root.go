// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"hardstore/cmd/client/cmd/types"
	"hardstore/internal/app/client"
	"hardstore/internal/app/client/config"
	"hardstore/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	debug      bool
	jsonOutput bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "hardstore",
	Short: "Hardstore - storefront client for the hardware supply backend",
	Long: `Hardstore is a terminal client for the hardware supply storefront.

It browses the product catalog, submits quote requests, shows business
contact information and hands conversations off to WhatsApp, the dialer
or maps. Catalog snapshots are cached locally so the client stays useful
on a flaky connection.`,
	PersistentPreRunE: setupApp,
	PersistentPostRun: func(*cobra.Command, []string) {
		if app != nil {
			_ = app.Close()
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var (
			netErr  *client.NetworkError
			httpErr *client.HTTPError
		)
		switch {
		case errors.As(err, &netErr):
			fmt.Fprintf(os.Stderr, "Error: %s\n", client.UserMessage(err))
			fmt.Fprintln(os.Stderr, "Check your connection and try again.")
		case errors.As(err, &httpErr):
			fmt.Fprintf(os.Stderr, "Error: %s\n", client.UserMessage(err))
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Command-line flags win over environment and file configuration.
	if serverURL != "" {
		cfg.BaseURL = serverURL
	}
	if debug {
		cfg.LogLevel = "debug"
		cfg.Env = "local"
	}

	log = logger.New(cfg.Env)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize the client: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		configDir := filepath.Join(home, ".hardstore")
		viper.AddConfigPath(configDir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file, defaults apply.
	}

	return config.Load()
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "storefront API base URL")

	// Subcommands register themselves in init() of their files.
}
