package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ikrivosheev/rabbitmq-http-client/cmd/rmqadmin/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rmqadmin",
	Short: "RabbitMQ management API CLI",
	Long: `A command-line interface for the RabbitMQ HTTP management API.

Manage virtual hosts, queues, exchanges, bindings, users, policies,
shovels, federation upstreams, and cluster health from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.rmqadmin/config.yml)")
	rootCmd.PersistentFlags().StringP("endpoint", "e", "", "management API endpoint URL")
	rootCmd.PersistentFlags().StringP("username", "u", "", "username for HTTP basic authentication")
	rootCmd.PersistentFlags().StringP("password", "p", "", "password for HTTP basic authentication")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("insecure-tls", false, "skip TLS certificate verification (honored only with RMQ_DEV_MODE)")

	_ = viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("username"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("insecure-tls", rootCmd.PersistentFlags().Lookup("insecure-tls"))

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewOverviewCommand())
	rootCmd.AddCommand(commands.NewVHostsCommand())
	rootCmd.AddCommand(commands.NewQueuesCommand())
	rootCmd.AddCommand(commands.NewExchangesCommand())
	rootCmd.AddCommand(commands.NewBindingsCommand())
	rootCmd.AddCommand(commands.NewUsersCommand())
	rootCmd.AddCommand(commands.NewPoliciesCommand())
	rootCmd.AddCommand(commands.NewParametersCommand())
	rootCmd.AddCommand(commands.NewShovelsCommand())
	rootCmd.AddCommand(commands.NewFederationCommand())
	rootCmd.AddCommand(commands.NewConnectionsCommand())
	rootCmd.AddCommand(commands.NewChannelsCommand())
	rootCmd.AddCommand(commands.NewConsumersCommand())
	rootCmd.AddCommand(commands.NewNodesCommand())
	rootCmd.AddCommand(commands.NewDefinitionsCommand())
	rootCmd.AddCommand(commands.NewHealthCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".rmqadmin")
		if err := os.MkdirAll(configDir, 0o700); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("RMQ")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
