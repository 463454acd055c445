package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NewChannelsCommand creates the channels command group.
func NewChannelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "channels",
		Aliases: []string{"channel"},
		Short:   "Inspect channels",
	}

	cmd.AddCommand(newChannelsListCommand())

	return cmd
}

func newChannelsListCommand() *cobra.Command {
	var connection string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List channels",
		Long:  "List channels cluster-wide or on one connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				channels []rmq.Channel
				listErr  error
			)

			if connection != "" {
				channels, listErr = client.Channels().ListOn(ctx, connection)
			} else {
				channels, listErr = client.Channels().List(ctx)
			}

			if listErr != nil {
				return fmt.Errorf("listing channels: %w", listErr)
			}

			return renderOutput(channels, func() error {
				if len(channels) == 0 {
					fmt.Println("No channels found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "VHost", "State", "Consumers", "Unacked", "Prefetch", "Confirms")

				for _, channel := range channels {
					_ = table.Append([]string{
						channel.Name,
						channel.VirtualHost,
						channel.State,
						formatCount(int64(channel.ConsumerCount)),
						formatCount(int64(channel.MessagesUnacknowledged)),
						formatCount(int64(channel.PrefetchCount)),
						formatBool(channel.PublisherConfirms),
					})
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("rendering table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&connection, "connection", "", "limit listing to one connection")

	return cmd
}
