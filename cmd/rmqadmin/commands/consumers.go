package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NewConsumersCommand creates the consumers command group.
func NewConsumersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "consumers",
		Aliases: []string{"consumer"},
		Short:   "Inspect consumers",
	}

	cmd.AddCommand(newConsumersListCommand())

	return cmd
}

func newConsumersListCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List consumers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				consumers []rmq.Consumer
				listErr   error
			)

			if vhost != "" {
				consumers, listErr = client.Consumers().ListIn(ctx, vhost)
			} else {
				consumers, listErr = client.Consumers().List(ctx)
			}

			if listErr != nil {
				return fmt.Errorf("listing consumers: %w", listErr)
			}

			return renderOutput(consumers, func() error {
				if len(consumers) == 0 {
					fmt.Println("No consumers found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Tag", "Queue", "VHost", "Active", "Manual Ack", "Prefetch", "Exclusive")

				for _, consumer := range consumers {
					_ = table.Append([]string{
						consumer.ConsumerTag,
						consumer.Queue.Name,
						consumer.Queue.VirtualHost,
						formatBool(consumer.Active),
						formatBool(consumer.ManualAck),
						formatCount(int64(consumer.PrefetchCount)),
						formatBool(consumer.Exclusive),
					})
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("rendering table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "", "limit listing to one virtual host")

	return cmd
}
