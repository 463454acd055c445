package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NewConnectionsCommand creates the connections command group.
func NewConnectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connections",
		Aliases: []string{"connection", "conns"},
		Short:   "Inspect and close client connections",
	}

	cmd.AddCommand(newConnectionsListCommand())
	cmd.AddCommand(newConnectionsGetCommand())
	cmd.AddCommand(newConnectionsCloseCommand())

	return cmd
}

func newConnectionsListCommand() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List client connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if username != "" {
				connections, err := client.Connections().ListOf(ctx, username)
				if err != nil {
					return fmt.Errorf("listing connections: %w", err)
				}

				return renderOutput(connections, func() error {
					if len(connections) == 0 {
						fmt.Println("No connections found")

						return nil
					}

					table := tablewriter.NewWriter(os.Stdout)
					table.Header("Name", "User", "VHost", "Node")

					for _, conn := range connections {
						_ = table.Append([]string{conn.Name, conn.Username, conn.VirtualHost, conn.Node})
					}

					if err := table.Render(); err != nil {
						return fmt.Errorf("rendering table: %w", err)
					}

					return nil
				})
			}

			connections, err := client.Connections().List(ctx)
			if err != nil {
				return fmt.Errorf("listing connections: %w", err)
			}

			return renderOutput(connections, func() error {
				return renderConnectionTable(connections)
			})
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "limit listing to one user's connections")

	return cmd
}

func renderConnectionTable(connections []rmq.Connection) error {
	if len(connections) == 0 {
		fmt.Println("No connections found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "User", "State", "Protocol", "Channels", "Client", "Connected")

	for _, conn := range connections {
		connectedAt := time.UnixMilli(int64(conn.ConnectedAt)).UTC().Format(time.RFC3339)

		client := conn.ClientProperties.Product
		if conn.ClientProperties.ConnectionName != "" {
			client = conn.ClientProperties.ConnectionName
		}

		_ = table.Append([]string{
			conn.Name,
			conn.Username,
			conn.State,
			conn.Protocol,
			formatCount(int64(conn.ChannelCount)),
			client,
			connectedAt,
		})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func newConnectionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show one connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			connection, err := client.Connections().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("fetching connection: %w", err)
			}

			return renderOutput(connection, func() error {
				return renderConnectionTable([]rmq.Connection{*connection})
			})
		},
	}
}

func newConnectionsCloseCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "close <name>",
		Short: "Close a client connection",
		Long:  "Ask the broker to close a connection; the reason is relayed to the client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Connections().Close(context.Background(), args[0], reason); err != nil {
				return fmt.Errorf("closing connection: %w", err)
			}

			fmt.Printf("Connection %q closed\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reason relayed to the client")

	return cmd
}
