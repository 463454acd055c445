package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NewBindingsCommand creates the bindings command group.
func NewBindingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bindings",
		Aliases: []string{"binding"},
		Short:   "Manage bindings",
		Long:    "List, declare, and delete bindings between exchanges and queues or exchanges",
	}

	cmd.AddCommand(newBindingsListCommand())
	cmd.AddCommand(newBindingsDeclareCommand())
	cmd.AddCommand(newBindingsDeleteCommand())

	return cmd
}

func newBindingsListCommand() *cobra.Command {
	var (
		vhost  string
		queue  string
		source string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bindings",
		Long:  "List bindings cluster-wide, in one virtual host, for one queue, or from one exchange",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				bindings []rmq.BindingInfo
				listErr  error
			)

			switch {
			case queue != "":
				bindings, listErr = client.Bindings().ListForQueue(ctx, vhost, queue)
			case source != "":
				bindings, listErr = client.Bindings().ListWithSource(ctx, vhost, source)
			case vhost != "":
				bindings, listErr = client.Bindings().ListIn(ctx, vhost)
			default:
				bindings, listErr = client.Bindings().List(ctx)
			}

			if listErr != nil {
				return fmt.Errorf("listing bindings: %w", listErr)
			}

			return renderOutput(bindings, func() error {
				return renderBindingTable(bindings)
			})
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().StringVar(&queue, "queue", "", "list bindings of one queue")
	cmd.Flags().StringVar(&source, "source", "", "list bindings from one exchange")

	return cmd
}

func renderBindingTable(bindings []rmq.BindingInfo) error {
	if len(bindings) == 0 {
		fmt.Println("No bindings found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("VHost", "Source", "Destination", "Type", "Routing Key", "Properties Key")

	for _, binding := range bindings {
		source := binding.Source
		if source == "" {
			source = "(default)"
		}

		_ = table.Append([]string{
			binding.VirtualHost,
			source,
			binding.Destination,
			string(binding.DestinationType),
			binding.RoutingKey,
			binding.PropertiesKey,
		})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func newBindingsDeclareCommand() *cobra.Command {
	var (
		vhost      string
		destType   string
		routingKey string
		arguments  string
	)

	cmd := &cobra.Command{
		Use:   "declare <source-exchange> <destination>",
		Short: "Declare a binding",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			destination := rmq.BindingDestinationType(destType)
			if !destination.IsKnown() {
				return fmt.Errorf("unknown destination type %q", destType)
			}

			bindingArgs, err := parseArgumentsFlag(arguments)
			if err != nil {
				return err
			}

			settings := rmq.BindingSettings{RoutingKey: routingKey, Arguments: bindingArgs}

			err = client.Bindings().Declare(context.Background(), vhost, args[0], destination, args[1], settings)
			if err != nil {
				return fmt.Errorf("declaring binding: %w", err)
			}

			fmt.Printf("Binding %s -> %s declared in vhost %q\n", args[0], args[1], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().StringVar(&destType, "destination-type", "queue", "destination type (queue, exchange)")
	cmd.Flags().StringVar(&routingKey, "routing-key", "", "routing key")
	cmd.Flags().StringVar(&arguments, "arguments", "", "optional arguments as a JSON object")

	return cmd
}

func newBindingsDeleteCommand() *cobra.Command {
	var (
		vhost         string
		destType      string
		propertiesKey string
	)

	cmd := &cobra.Command{
		Use:   "delete <source-exchange> <destination>",
		Short: "Delete a binding",
		Long:  "Delete the binding identified by its properties key among those between source and destination",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			destination := rmq.BindingDestinationType(destType)
			if !destination.IsKnown() {
				return fmt.Errorf("unknown destination type %q", destType)
			}

			err = client.Bindings().Delete(context.Background(), vhost, args[0], destination, args[1], propertiesKey)
			if err != nil {
				return fmt.Errorf("deleting binding: %w", err)
			}

			fmt.Printf("Binding %s -> %s deleted from vhost %q\n", args[0], args[1], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().StringVar(&destType, "destination-type", "queue", "destination type (queue, exchange)")
	cmd.Flags().StringVar(&propertiesKey, "properties-key", "", "properties key of the binding (defaults to the no-arguments binding)")

	return cmd
}
