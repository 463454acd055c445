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

// NewNodesCommand creates the cluster nodes command group.
func NewNodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nodes",
		Aliases: []string{"node"},
		Short:   "Inspect cluster nodes",
	}

	cmd.AddCommand(newNodesListCommand())
	cmd.AddCommand(newNodesGetCommand())

	return cmd
}

func newNodesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cluster nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			nodes, err := client.Nodes().List(context.Background())
			if err != nil {
				return fmt.Errorf("listing nodes: %w", err)
			}

			return renderOutput(nodes, func() error {
				return renderNodeTable(nodes)
			})
		},
	}
}

func renderNodeTable(nodes []rmq.ClusterNode) error {
	if len(nodes) == 0 {
		fmt.Println("No nodes found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Uptime", "Processors", "FD Total", "Memory Alarm", "Disk Alarm")

	for _, node := range nodes {
		uptime := (time.Duration(node.Uptime) * time.Millisecond).Round(time.Second)

		_ = table.Append([]string{
			node.Name,
			uptime.String(),
			formatCount(int64(node.Processors)),
			formatCount(int64(node.FDTotal)),
			formatBool(node.MemoryAlarm),
			formatBool(node.FreeDiskAlarm),
		})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func newNodesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show one cluster node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			node, err := client.Nodes().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("fetching node: %w", err)
			}

			return renderOutput(node, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append([]string{"Name", node.Name})
				_ = table.Append([]string{"OS PID", formatCount(int64(node.OSPid))})
				_ = table.Append([]string{"Uptime", (time.Duration(node.Uptime) * time.Millisecond).Round(time.Second).String()})
				_ = table.Append([]string{"Processors", formatCount(int64(node.Processors))})
				_ = table.Append([]string{"Run queue", formatCount(int64(node.RunQueue))})
				_ = table.Append([]string{"Erlang processes", formatCount(int64(node.TotalErlangProcesses))})
				_ = table.Append([]string{"FD total", formatCount(int64(node.FDTotal))})
				_ = table.Append([]string{"Memory high watermark", formatCount(node.MemoryHighWatermark)})
				_ = table.Append([]string{"Memory alarm", formatBool(node.MemoryAlarm)})
				_ = table.Append([]string{"Disk free low watermark", formatCount(node.FreeDiskLowWatermark)})
				_ = table.Append([]string{"Disk alarm", formatBool(node.FreeDiskAlarm)})
				_ = table.Append([]string{"Rates mode", node.RatesMode})

				if err := table.Render(); err != nil {
					return fmt.Errorf("rendering table: %w", err)
				}

				return nil
			})
		},
	}
}
