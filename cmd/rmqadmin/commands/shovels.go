package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NewShovelsCommand creates the shovels command group.
func NewShovelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shovels",
		Aliases: []string{"shovel"},
		Short:   "Manage dynamic shovels",
	}

	cmd.AddCommand(newShovelsListCommand())
	cmd.AddCommand(newShovelsDeclareCommand())
	cmd.AddCommand(newShovelsDeleteCommand())

	return cmd
}

func newShovelsListCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dynamic shovels",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				shovels []rmq.Shovel
				listErr error
			)

			if vhost != "" {
				shovels, listErr = client.Shovels().ListIn(ctx, vhost)
			} else {
				shovels, listErr = client.Shovels().List(ctx)
			}

			if listErr != nil {
				return fmt.Errorf("listing shovels: %w", listErr)
			}

			return renderOutput(shovels, func() error {
				if len(shovels) == 0 {
					fmt.Println("No shovels found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("VHost", "Name", "State", "Node", "Source", "Destination")

				for _, shovel := range shovels {
					_ = table.Append([]string{
						shovel.VirtualHost,
						shovel.Name,
						shovel.State,
						shovel.Node,
						shovel.Source,
						shovel.Destination,
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

func newShovelsDeclareCommand() *cobra.Command {
	var (
		vhost          string
		sourceURI      string
		destinationURI string
		sourceQueue    string
		destQueue      string
		ackMode        string
	)

	cmd := &cobra.Command{
		Use:   "declare <name>",
		Short: "Declare a dynamic shovel",
		Long:  "Declare a queue-to-queue dynamic shovel backed by a runtime parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			settings := rmq.ShovelSettings{
				SourceURI:        sourceURI,
				DestinationURI:   destinationURI,
				SourceQueue:      sourceQueue,
				DestinationQueue: destQueue,
				AckMode:          ackMode,
			}

			if err := client.Shovels().Declare(context.Background(), vhost, args[0], settings); err != nil {
				return fmt.Errorf("declaring shovel: %w", err)
			}

			fmt.Printf("Shovel %q declared in vhost %q\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().StringVar(&sourceURI, "source-uri", "amqp://", "source AMQP URI")
	cmd.Flags().StringVar(&destinationURI, "destination-uri", "amqp://", "destination AMQP URI")
	cmd.Flags().StringVar(&sourceQueue, "source-queue", "", "source queue")
	cmd.Flags().StringVar(&destQueue, "destination-queue", "", "destination queue")
	cmd.Flags().StringVar(&ackMode, "ack-mode", "", "ack mode (on-confirm, on-publish, no-ack)")
	_ = cmd.MarkFlagRequired("source-queue")
	_ = cmd.MarkFlagRequired("destination-queue")

	return cmd
}

func newShovelsDeleteCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a dynamic shovel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Shovels().Delete(context.Background(), vhost, args[0]); err != nil {
				return fmt.Errorf("deleting shovel: %w", err)
			}

			fmt.Printf("Shovel %q deleted from vhost %q\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")

	return cmd
}
