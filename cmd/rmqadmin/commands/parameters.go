package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NewParametersCommand creates the runtime parameters command group.
func NewParametersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "parameters",
		Aliases: []string{"parameter", "params"},
		Short:   "Manage runtime parameters",
		Long:    "List, inspect, set, and clear component-scoped runtime parameters",
	}

	cmd.AddCommand(newParametersListCommand())
	cmd.AddCommand(newParametersGetCommand())
	cmd.AddCommand(newParametersSetCommand())
	cmd.AddCommand(newParametersClearCommand())

	return cmd
}

func newParametersListCommand() *cobra.Command {
	var component string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List runtime parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				params  []rmq.RuntimeParameter
				listErr error
			)

			if component != "" {
				params, listErr = client.Parameters().ListOf(ctx, component)
			} else {
				params, listErr = client.Parameters().List(ctx)
			}

			if listErr != nil {
				return fmt.Errorf("listing parameters: %w", listErr)
			}

			return renderOutput(params, func() error {
				return renderParameterTable(params)
			})
		},
	}

	cmd.Flags().StringVar(&component, "component", "", "limit listing to one component")

	return cmd
}

func renderParameterTable(params []rmq.RuntimeParameter) error {
	if len(params) == 0 {
		fmt.Println("No parameters found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Component", "VHost", "Name", "Value")

	for _, param := range params {
		value, err := json.Marshal(param.Value)
		if err != nil {
			value = []byte("-")
		}

		_ = table.Append([]string{param.Component, param.VirtualHost, param.Name, string(value)})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func newParametersGetCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "get <component> <name>",
		Short: "Show one runtime parameter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			param, err := client.Parameters().Get(context.Background(), args[0], vhost, args[1])
			if err != nil {
				return fmt.Errorf("fetching parameter: %w", err)
			}

			return renderOutput(param, func() error {
				return renderParameterTable([]rmq.RuntimeParameter{*param})
			})
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")

	return cmd
}

func newParametersSetCommand() *cobra.Command {
	var (
		vhost string
		value string
	)

	cmd := &cobra.Command{
		Use:   "set <component> <name>",
		Short: "Create or update a runtime parameter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var paramValue rmq.RuntimeParameterValue
			if err := json.Unmarshal([]byte(value), &paramValue); err != nil {
				return fmt.Errorf("parsing value: %w", err)
			}

			param := rmq.RuntimeParameter{
				Component:   args[0],
				VirtualHost: vhost,
				Name:        args[1],
				Value:       paramValue,
			}

			if err := client.Parameters().Upsert(context.Background(), param); err != nil {
				return fmt.Errorf("setting parameter: %w", err)
			}

			fmt.Printf("Parameter %s/%s set in vhost %q\n", args[0], args[1], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().StringVar(&value, "value", "", "parameter value as a JSON object")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newParametersClearCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "clear <component> <name>",
		Short: "Clear a runtime parameter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Parameters().Clear(context.Background(), args[0], vhost, args[1]); err != nil {
				return fmt.Errorf("clearing parameter: %w", err)
			}

			fmt.Printf("Parameter %s/%s cleared in vhost %q\n", args[0], args[1], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")

	return cmd
}
