package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NewFederationCommand creates the federation upstreams command group.
func NewFederationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "federation",
		Short: "Manage federation upstreams",
	}

	cmd.AddCommand(newFederationListCommand())
	cmd.AddCommand(newFederationDeclareCommand())
	cmd.AddCommand(newFederationDeleteCommand())

	return cmd
}

func newFederationListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List federation upstreams",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			upstreams, err := client.FederationUpstreams().List(context.Background())
			if err != nil {
				return fmt.Errorf("listing federation upstreams: %w", err)
			}

			return renderOutput(upstreams, func() error {
				if len(upstreams) == 0 {
					fmt.Println("No federation upstreams found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("VHost", "Name", "URI", "Ack Mode", "Prefetch")

				for _, upstream := range upstreams {
					_ = table.Append([]string{
						upstream.VirtualHost,
						upstream.Name,
						upstream.URI,
						upstream.AckMode,
						formatCount(int64(upstream.PrefetchCount)),
					})
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("rendering table: %w", err)
				}

				return nil
			})
		},
	}
}

func newFederationDeclareCommand() *cobra.Command {
	var (
		vhost          string
		uri            string
		ackMode        string
		prefetchCount  int
		reconnectDelay int
		exchange       string
		queue          string
	)

	cmd := &cobra.Command{
		Use:   "declare <name>",
		Short: "Declare a federation upstream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			settings := rmq.FederationUpstreamSettings{
				URI:            uri,
				AckMode:        ackMode,
				PrefetchCount:  prefetchCount,
				ReconnectDelay: reconnectDelay,
				Exchange:       exchange,
				Queue:          queue,
			}

			if err := client.FederationUpstreams().Declare(context.Background(), vhost, args[0], settings); err != nil {
				return fmt.Errorf("declaring federation upstream: %w", err)
			}

			fmt.Printf("Federation upstream %q declared in vhost %q\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().StringVar(&uri, "uri", "", "upstream AMQP URI")
	cmd.Flags().StringVar(&ackMode, "ack-mode", "", "ack mode (on-confirm, on-publish, no-ack)")
	cmd.Flags().IntVar(&prefetchCount, "prefetch-count", 0, "prefetch count (0 uses the server default)")
	cmd.Flags().IntVar(&reconnectDelay, "reconnect-delay", 0, "reconnect delay in seconds (0 uses the server default)")
	cmd.Flags().StringVar(&exchange, "exchange", "", "federate only this exchange")
	cmd.Flags().StringVar(&queue, "queue", "", "federate only this queue")
	_ = cmd.MarkFlagRequired("uri")

	return cmd
}

func newFederationDeleteCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a federation upstream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.FederationUpstreams().Delete(context.Background(), vhost, args[0]); err != nil {
				return fmt.Errorf("deleting federation upstream: %w", err)
			}

			fmt.Printf("Federation upstream %q deleted from vhost %q\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")

	return cmd
}
