package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// ErrHealthCheckFailed reports a failed health check; the command prints
// the failure details before returning it.
var ErrHealthCheckFailed = errors.New("health check failed")

// NewHealthCommand creates the health checks command group.
func NewHealthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Run broker health checks",
		Long:  "Run the broker's health checks. A failed check prints its details and exits non-zero.",
	}

	cmd.AddCommand(newHealthAlarmsCommand())
	cmd.AddCommand(newHealthLocalAlarmsCommand())
	cmd.AddCommand(newHealthQuorumCommand())

	return cmd
}

func newHealthAlarmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alarms",
		Short: "Check for resource alarms anywhere in the cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			details, err := client.Health().ClusterAlarms(context.Background())
			if err != nil {
				return fmt.Errorf("running alarms check: %w", err)
			}

			if details == nil {
				fmt.Println("No alarms in effect")

				return nil
			}

			fmt.Printf("Check failed: %s\n", details.Reason)

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Node", "Resource")

			for _, alarm := range details.Alarms {
				_ = table.Append([]string{alarm.Node, alarm.Resource})
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return ErrHealthCheckFailed
		},
	}
}

func newHealthLocalAlarmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "local-alarms",
		Short: "Check for resource alarms on the target node",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			details, err := client.Health().LocalAlarms(context.Background())
			if err != nil {
				return fmt.Errorf("running local alarms check: %w", err)
			}

			if details == nil {
				fmt.Println("No alarms in effect")

				return nil
			}

			fmt.Printf("Check failed: %s\n", details.Reason)

			return ErrHealthCheckFailed
		},
	}
}

func newHealthQuorumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quorum-critical",
		Short: "Check whether shutting down the target node would endanger quorums",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			details, err := client.Health().NodeIsQuorumCritical(context.Background())
			if err != nil {
				return fmt.Errorf("running quorum criticality check: %w", err)
			}

			if details == nil {
				fmt.Println("No quorum queues or streams depend on this node alone")

				return nil
			}

			fmt.Printf("Check failed: %s\n", details.Reason)

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("VHost", "Queue", "Type")

			for _, queue := range details.Queues {
				_ = table.Append([]string{queue.VirtualHost, queue.Name, string(queue.Type)})
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return ErrHealthCheckFailed
		},
	}
}
