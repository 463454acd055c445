package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NewExchangesCommand creates the exchanges command group.
func NewExchangesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exchanges",
		Aliases: []string{"exchange", "x"},
		Short:   "Manage exchanges",
		Long:    "List, inspect, declare, and delete exchanges, and publish test messages",
	}

	cmd.AddCommand(newExchangesListCommand())
	cmd.AddCommand(newExchangesGetCommand())
	cmd.AddCommand(newExchangesDeclareCommand())
	cmd.AddCommand(newExchangesDeleteCommand())
	cmd.AddCommand(newExchangesPublishCommand())

	return cmd
}

func newExchangesListCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exchanges",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				exchanges []rmq.ExchangeInfo
				listErr   error
			)

			if vhost != "" {
				exchanges, listErr = client.Exchanges().ListIn(ctx, vhost)
			} else {
				exchanges, listErr = client.Exchanges().List(ctx)
			}

			if listErr != nil {
				return fmt.Errorf("listing exchanges: %w", listErr)
			}

			return renderOutput(exchanges, func() error {
				return renderExchangeTable(exchanges)
			})
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "", "limit listing to one virtual host")

	return cmd
}

func renderExchangeTable(exchanges []rmq.ExchangeInfo) error {
	if len(exchanges) == 0 {
		fmt.Println("No exchanges found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("VHost", "Name", "Type", "Durable", "Auto-delete", "Arguments")

	for _, exchange := range exchanges {
		name := exchange.Name
		if name == "" {
			name = "(default)"
		}

		_ = table.Append([]string{
			exchange.VirtualHost,
			name,
			string(exchange.Type),
			formatBool(exchange.Durable),
			formatBool(exchange.AutoDelete),
			formatArguments(exchange.Arguments),
		})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func newExchangesGetCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Show one exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			exchange, err := client.Exchanges().Get(context.Background(), vhost, args[0])
			if err != nil {
				return fmt.Errorf("fetching exchange: %w", err)
			}

			return renderOutput(exchange, func() error {
				return renderExchangeTable([]rmq.ExchangeInfo{*exchange})
			})
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")

	return cmd
}

func newExchangesDeclareCommand() *cobra.Command {
	var (
		vhost        string
		exchangeType string
		durable      bool
		autoDelete   bool
		arguments    string
	)

	cmd := &cobra.Command{
		Use:   "declare <name>",
		Short: "Declare an exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			exchangeArgs, err := parseArgumentsFlag(arguments)
			if err != nil {
				return err
			}

			settings := rmq.NewExchangeSettings(rmq.ExchangeType(exchangeType), durable, autoDelete, exchangeArgs)

			if err := client.Exchanges().Declare(context.Background(), vhost, args[0], settings); err != nil {
				return fmt.Errorf("declaring exchange: %w", err)
			}

			fmt.Printf("Exchange %q declared in vhost %q\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().StringVar(&exchangeType, "type", "direct", "exchange type (direct, fanout, topic, headers)")
	cmd.Flags().BoolVar(&durable, "durable", true, "survive broker restarts")
	cmd.Flags().BoolVar(&autoDelete, "auto-delete", false, "delete when the last binding is removed")
	cmd.Flags().StringVar(&arguments, "arguments", "", "optional arguments as a JSON object")

	return cmd
}

func newExchangesDeleteCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Exchanges().Delete(context.Background(), vhost, args[0]); err != nil {
				return fmt.Errorf("deleting exchange: %w", err)
			}

			fmt.Printf("Exchange %q deleted from vhost %q\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")

	return cmd
}

func newExchangesPublishCommand() *cobra.Command {
	var (
		vhost      string
		routingKey string
		payload    string
	)

	cmd := &cobra.Command{
		Use:   "publish <exchange>",
		Short: "Publish a test message through an exchange",
		Long:  "Publish one message via the HTTP API and report whether it was routed. A diagnostics affordance, not a throughput path.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := rmq.PublishOptions{RoutingKey: routingKey, Payload: payload}

			routed, err := client.Exchanges().Publish(context.Background(), vhost, args[0], opts)
			if err != nil {
				return fmt.Errorf("publishing message: %w", err)
			}

			if routed.Routed {
				fmt.Println("Message routed to at least one queue")
			} else {
				fmt.Println("Message was not routed to any queue")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().StringVar(&routingKey, "routing-key", "", "routing key")
	cmd.Flags().StringVar(&payload, "payload", "", "message payload")

	return cmd
}
