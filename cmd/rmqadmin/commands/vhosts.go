package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NewVHostsCommand creates the virtual hosts command group.
func NewVHostsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vhosts",
		Aliases: []string{"vhost", "virtual-hosts"},
		Short:   "Manage virtual hosts",
		Long:    "List, inspect, declare, and delete virtual hosts and their limits",
	}

	cmd.AddCommand(newVHostsListCommand())
	cmd.AddCommand(newVHostsGetCommand())
	cmd.AddCommand(newVHostsDeclareCommand())
	cmd.AddCommand(newVHostsDeleteCommand())
	cmd.AddCommand(newVHostsLimitsCommand())
	cmd.AddCommand(newVHostsSetLimitCommand())
	cmd.AddCommand(newVHostsClearLimitCommand())

	return cmd
}

func newVHostsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List virtual hosts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			vhosts, err := client.VirtualHosts().List(context.Background())
			if err != nil {
				return fmt.Errorf("listing virtual hosts: %w", err)
			}

			return renderOutput(vhosts, func() error {
				return renderVHostTable(vhosts)
			})
		},
	}
}

func renderVHostTable(vhosts []rmq.VirtualHost) error {
	if len(vhosts) == 0 {
		fmt.Println("No virtual hosts found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Description", "Default Queue Type", "Tags", "Tracing")

	for _, vhost := range vhosts {
		_ = table.Append([]string{
			vhost.Name,
			vhost.Description,
			string(vhost.DefaultQueueType),
			formatTags(vhost.Tags),
			formatBool(vhost.Tracing),
		})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func newVHostsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show one virtual host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			vhost, err := client.VirtualHosts().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("fetching virtual host: %w", err)
			}

			return renderOutput(vhost, func() error {
				return renderVHostTable([]rmq.VirtualHost{*vhost})
			})
		},
	}
}

func newVHostsDeclareCommand() *cobra.Command {
	var (
		description      string
		defaultQueueType string
		tags             []string
		tracing          bool
	)

	cmd := &cobra.Command{
		Use:   "declare <name>",
		Short: "Create or update a virtual host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			settings := rmq.VirtualHostSettings{
				Description:      description,
				DefaultQueueType: rmq.QueueType(defaultQueueType),
				Tags:             tags,
				Tracing:          tracing,
			}

			if err := client.VirtualHosts().Declare(context.Background(), args[0], settings); err != nil {
				return fmt.Errorf("declaring virtual host: %w", err)
			}

			fmt.Printf("Virtual host %q declared\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "virtual host description")
	cmd.Flags().StringVar(&defaultQueueType, "default-queue-type", "", "default queue type (classic, quorum, stream)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "virtual host tags")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "enable message tracing")

	return cmd
}

func newVHostsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a virtual host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.VirtualHosts().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("deleting virtual host: %w", err)
			}

			fmt.Printf("Virtual host %q deleted\n", args[0])

			return nil
		},
	}
}

func newVHostsLimitsCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "limits",
		Short: "List enforced virtual host limits",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				limits  []rmq.VirtualHostLimits
				listErr error
			)

			if vhost != "" {
				limits, listErr = client.VirtualHosts().ListLimitsOf(ctx, vhost)
			} else {
				limits, listErr = client.VirtualHosts().ListLimits(ctx)
			}

			if listErr != nil {
				return fmt.Errorf("listing virtual host limits: %w", listErr)
			}

			return renderOutput(limits, func() error {
				if len(limits) == 0 {
					fmt.Println("No limits enforced")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("VHost", "Limit", "Value")

				for _, entry := range limits {
					for name, value := range entry.Limits {
						_ = table.Append([]string{entry.VirtualHost, name, formatCount(value)})
					}
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

func newVHostsSetLimitCommand() *cobra.Command {
	var value int64

	cmd := &cobra.Command{
		Use:   "set-limit <vhost> <max-connections|max-queues>",
		Short: "Enforce a limit on a virtual host",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			limit := rmq.VirtualHostLimitTarget(args[1])
			if !limit.IsKnown() {
				return fmt.Errorf("unknown limit %q", args[1])
			}

			if err := client.VirtualHosts().SetLimit(context.Background(), args[0], limit, value); err != nil {
				return fmt.Errorf("setting limit: %w", err)
			}

			fmt.Printf("Limit %s=%d enforced on %q\n", args[1], value, args[0])

			return nil
		},
	}

	cmd.Flags().Int64Var(&value, "value", 0, "limit value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newVHostsClearLimitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-limit <vhost> <max-connections|max-queues>",
		Short: "Clear an enforced limit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			limit := rmq.VirtualHostLimitTarget(args[1])
			if !limit.IsKnown() {
				return fmt.Errorf("unknown limit %q", args[1])
			}

			if err := client.VirtualHosts().ClearLimit(context.Background(), args[0], limit); err != nil {
				return fmt.Errorf("clearing limit: %w", err)
			}

			fmt.Printf("Limit %s cleared on %q\n", args[1], args[0])

			return nil
		},
	}
}
