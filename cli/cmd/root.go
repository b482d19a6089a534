package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Sheesh1006/service-backend/cli/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "notes-cli",
	Short: "Lecture notes CLI",
	Long: `A command-line interface for turning lecture recordings into PDF notes.
Uploads a video and an optional presentation to the relay service, or renders
notes you already have into the same PDF layout offline.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.notes-cli/config.yaml)")
	rootCmd.PersistentFlags().String("relay-url", "", "relay server URL")
	rootCmd.PersistentFlags().String("token", "", "JWT token for authentication")
	rootCmd.PersistentFlags().Duration("timeout", 0, "overall request timeout")

	viper.BindPFlag("relay.endpoint", rootCmd.PersistentFlags().Lookup("relay-url"))
	viper.BindPFlag("auth.token", rootCmd.PersistentFlags().Lookup("token"))
	viper.BindPFlag("relay.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func GetConfig() *config.Config {
	return cfg
}
