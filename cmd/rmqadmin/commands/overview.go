package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NewOverviewCommand creates the overview command group.
func NewOverviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show cluster overview",
		Long:  "Display cluster identity, versions, object totals, and listeners",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			overview, err := client.Overview(context.Background())
			if err != nil {
				return fmt.Errorf("fetching overview: %w", err)
			}

			return renderOutput(overview, func() error {
				return renderOverviewTable(overview)
			})
		},
	}

	cmd.AddCommand(newClusterNameCommand())
	cmd.AddCommand(newSetClusterNameCommand())

	return cmd
}

func renderOverviewTable(overview *rmq.Overview) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append([]string{"Cluster name", overview.ClusterName})
	_ = table.Append([]string{"Node", overview.Node})
	_ = table.Append([]string{"Product", overview.ProductName + " " + overview.ProductVersion})
	_ = table.Append([]string{"Erlang", overview.ErlangVersion})
	_ = table.Append([]string{"Connections", formatCount(overview.ObjectTotals.Connections)})
	_ = table.Append([]string{"Channels", formatCount(overview.ObjectTotals.Channels)})
	_ = table.Append([]string{"Queues", formatCount(overview.ObjectTotals.Queues)})
	_ = table.Append([]string{"Exchanges", formatCount(overview.ObjectTotals.Exchanges)})

	for _, listener := range overview.Listeners {
		_ = table.Append([]string{
			"Listener " + listener.Protocol,
			fmt.Sprintf("%s:%d on %s", listener.Interface, listener.Port, listener.Node),
		})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func newClusterNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cluster-name",
		Short: "Show the cluster name",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			identity, err := client.ClusterName(context.Background())
			if err != nil {
				return fmt.Errorf("fetching cluster name: %w", err)
			}

			return renderOutput(identity, func() error {
				fmt.Println(identity.Name)

				return nil
			})
		},
	}
}

func newSetClusterNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-cluster-name <name>",
		Short: "Rename the cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.SetClusterName(context.Background(), args[0]); err != nil {
				return fmt.Errorf("setting cluster name: %w", err)
			}

			fmt.Printf("Cluster renamed to %q\n", args[0])

			return nil
		},
	}
}
