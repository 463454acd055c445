package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmqclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		endpoint string
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to a RabbitMQ cluster",
		Long:  "Verify credentials against a management API endpoint and save them to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if endpoint == "" {
				endpoint = viper.GetString("endpoint")
			}

			if endpoint == "" {
				fmt.Print("Endpoint (e.g. http://localhost:15672): ")
				endpoint, _ = reader.ReadString('\n')
				endpoint = strings.TrimSpace(endpoint)
			}

			if endpoint == "" {
				return ErrEndpointNotConfigured
			}

			if username == "" {
				username = viper.GetString("username")
			}

			if username == "" {
				fmt.Print("Username: ")
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			client, err := rmqclient.New(&rmq.Config{
				Endpoint:      endpoint,
				Username:      username,
				Password:      password,
				SkipTLSVerify: viper.GetBool("insecure-tls"),
			})
			if err != nil {
				return fmt.Errorf("creating client: %w", err)
			}

			ctx := context.Background()

			identity, err := client.Users().WhoAmI(ctx)
			if err != nil {
				return fmt.Errorf("authenticating against %s: %w", endpoint, err)
			}

			overview, err := client.Overview(ctx)
			if err != nil {
				return fmt.Errorf("fetching overview: %w", err)
			}

			if err := saveLogin(endpoint, username, password); err != nil {
				return err
			}

			fmt.Printf("Logged in to cluster %q (%s %s) as %s\n",
				overview.ClusterName, overview.ProductName, overview.ProductVersion, identity.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "management API endpoint URL")
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")

	return cmd
}

func saveLogin(endpoint, username, password string) error {
	viper.Set("endpoint", endpoint)
	viper.Set("username", username)
	viper.Set("password", password)

	path := viper.ConfigFileUsed()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("locating home directory: %w", err)
		}

		path = filepath.Join(home, ".rmqadmin", "config.yml")
	}

	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	return nil
}
