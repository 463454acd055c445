package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NewQueuesCommand creates the queues command group.
func NewQueuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "queues",
		Aliases: []string{"queue", "q"},
		Short:   "Manage queues",
		Long:    "List, inspect, declare, purge, and delete queues",
	}

	cmd.AddCommand(newQueuesListCommand())
	cmd.AddCommand(newQueuesGetCommand())
	cmd.AddCommand(newQueuesDeclareCommand())
	cmd.AddCommand(newQueuesDeleteCommand())
	cmd.AddCommand(newQueuesPurgeCommand())
	cmd.AddCommand(newQueuesGetMessagesCommand())

	return cmd
}

func newQueuesListCommand() *cobra.Command {
	var (
		vhost    string
		name     string
		useRegex bool
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List queues",
		Long:  "List queues cluster-wide or in one virtual host, optionally filtered by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			queues, err := listQueues(ctx, client, vhost, name, useRegex, pageSize)
			if err != nil {
				return err
			}

			return renderOutput(queues, func() error {
				return renderQueueTable(queues)
			})
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "", "limit listing to one virtual host")
	cmd.Flags().StringVar(&name, "name", "", "filter queues by name")
	cmd.Flags().BoolVar(&useRegex, "regex", false, "treat --name as a regular expression")
	cmd.Flags().IntVar(&pageSize, "page-size", 100, "page size used when filtering")

	return cmd
}

// listQueues picks the listing strategy: plain listings for the unfiltered
// cases, the paged endpoint when a name filter is involved.
func listQueues(ctx context.Context, client rmq.Client, vhost, name string, useRegex bool, pageSize int) ([]rmq.QueueInfo, error) {
	if name == "" {
		if vhost != "" {
			queues, err := client.Queues().ListIn(ctx, vhost)
			if err != nil {
				return nil, fmt.Errorf("listing queues: %w", err)
			}

			return queues, nil
		}

		queues, err := client.Queues().List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing queues: %w", err)
		}

		return queues, nil
	}

	params := &rmq.QueryParams{Name: name, UseRegex: useRegex, PageSize: pageSize}

	iterator := rmq.NewPageIterator(ctx, client.Queues().ListPaged, params)

	queues, err := iterator.Collect()
	if err != nil {
		return nil, fmt.Errorf("listing queues: %w", err)
	}

	if vhost != "" {
		filtered := queues[:0]

		for _, queue := range queues {
			if queue.VirtualHost == vhost {
				filtered = append(filtered, queue)
			}
		}

		queues = filtered
	}

	return queues, nil
}

func renderQueueTable(queues []rmq.QueueInfo) error {
	if len(queues) == 0 {
		fmt.Println("No queues found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("VHost", "Name", "Type", "State", "Messages", "Consumers", "Durable")

	for _, queue := range queues {
		_ = table.Append([]string{
			queue.VirtualHost,
			queue.Name,
			string(queue.Type),
			queue.State,
			formatCount(queue.MessageCount),
			formatCount(int64(queue.ConsumerCount)),
			formatBool(queue.Durable),
		})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func newQueuesGetCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Show one queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			queue, err := client.Queues().Get(context.Background(), vhost, args[0])
			if err != nil {
				return fmt.Errorf("fetching queue: %w", err)
			}

			return renderOutput(queue, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append([]string{"Name", queue.Name})
				_ = table.Append([]string{"VHost", queue.VirtualHost})
				_ = table.Append([]string{"Type", string(queue.Type)})
				_ = table.Append([]string{"State", queue.State})
				_ = table.Append([]string{"Node", queue.Node})
				_ = table.Append([]string{"Durable", formatBool(queue.Durable)})
				_ = table.Append([]string{"Auto-delete", formatBool(queue.AutoDelete)})
				_ = table.Append([]string{"Exclusive", formatBool(queue.Exclusive)})
				_ = table.Append([]string{"Messages", formatCount(queue.MessageCount)})
				_ = table.Append([]string{"Unacknowledged", formatCount(queue.MessagesUnacknowledged)})
				_ = table.Append([]string{"Consumers", formatCount(int64(queue.ConsumerCount))})
				_ = table.Append([]string{"Policy", queue.Policy})
				_ = table.Append([]string{"Arguments", formatArguments(queue.Arguments)})

				if queue.Leader != "" {
					_ = table.Append([]string{"Leader", queue.Leader})
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("rendering table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")

	return cmd
}

func newQueuesDeclareCommand() *cobra.Command {
	var (
		vhost      string
		queueType  string
		durable    bool
		autoDelete bool
		arguments  string
	)

	cmd := &cobra.Command{
		Use:   "declare <name>",
		Short: "Declare a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			queueArgs, err := parseArgumentsFlag(arguments)
			if err != nil {
				return err
			}

			var settings rmq.QueueSettings

			switch rmq.QueueType(queueType) {
			case rmq.QueueTypeQuorum:
				settings = rmq.NewQuorumQueue(queueArgs)
			case rmq.QueueTypeStream:
				settings = rmq.NewStream(queueArgs)
			default:
				settings = rmq.NewQueueSettings(rmq.QueueType(queueType), durable, autoDelete, queueArgs)
			}

			if err := client.Queues().Declare(context.Background(), vhost, args[0], settings); err != nil {
				return fmt.Errorf("declaring queue: %w", err)
			}

			fmt.Printf("Queue %q declared in vhost %q\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().StringVar(&queueType, "type", "classic", "queue type (classic, quorum, stream)")
	cmd.Flags().BoolVar(&durable, "durable", true, "survive broker restarts (classic queues only)")
	cmd.Flags().BoolVar(&autoDelete, "auto-delete", false, "delete when the last consumer disconnects (classic queues only)")
	cmd.Flags().StringVar(&arguments, "arguments", "", `optional arguments as a JSON object, e.g. '{"x-max-length": 1000}'`)

	return cmd
}

func newQueuesDeleteCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Queues().Delete(context.Background(), vhost, args[0]); err != nil {
				return fmt.Errorf("deleting queue: %w", err)
			}

			fmt.Printf("Queue %q deleted from vhost %q\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")

	return cmd
}

func newQueuesPurgeCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "purge <name>",
		Short: "Purge all messages from a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Queues().Purge(context.Background(), vhost, args[0]); err != nil {
				return fmt.Errorf("purging queue: %w", err)
			}

			fmt.Printf("Queue %q purged\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")

	return cmd
}

func newQueuesGetMessagesCommand() *cobra.Command {
	var (
		vhost   string
		count   int
		ackMode string
	)

	cmd := &cobra.Command{
		Use:   "get-messages <name>",
		Short: "Fetch messages from a queue for inspection",
		Long:  "Fetch messages via basic-get. A diagnostics affordance, not a consumption path.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := rmq.GetMessagesOptions{Count: count, AckMode: ackMode}

			messages, err := client.Queues().GetMessages(context.Background(), vhost, args[0], opts)
			if err != nil {
				return fmt.Errorf("fetching messages: %w", err)
			}

			return renderOutput(messages, func() error {
				if len(messages) == 0 {
					fmt.Println("Queue is empty")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Exchange", "Routing Key", "Redelivered", "Bytes", "Payload")

				for _, message := range messages {
					_ = table.Append([]string{
						message.Exchange,
						message.RoutingKey,
						formatBool(message.Redelivered),
						formatCount(int64(message.PayloadBytes)),
						message.Payload,
					})
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("rendering table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().IntVar(&count, "count", 1, "maximum number of messages to fetch")
	cmd.Flags().StringVar(&ackMode, "ack-mode", "ack_requeue_true", "ack mode (ack_requeue_true, ack_requeue_false, reject_requeue_true, reject_requeue_false)")

	return cmd
}
