package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NewPoliciesCommand creates the policies command group.
func NewPoliciesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "policies",
		Aliases: []string{"policy"},
		Short:   "Manage policies and operator policies",
	}

	cmd.AddCommand(newPoliciesListCommand())
	cmd.AddCommand(newPoliciesGetCommand())
	cmd.AddCommand(newPoliciesDeclareCommand())
	cmd.AddCommand(newPoliciesDeleteCommand())

	return cmd
}

func newPoliciesListCommand() *cobra.Command {
	var (
		vhost    string
		operator bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				policies []rmq.Policy
				listErr  error
			)

			switch {
			case operator:
				policies, listErr = client.Policies().ListOperator(ctx)
			case vhost != "":
				policies, listErr = client.Policies().ListIn(ctx, vhost)
			default:
				policies, listErr = client.Policies().List(ctx)
			}

			if listErr != nil {
				return fmt.Errorf("listing policies: %w", listErr)
			}

			return renderOutput(policies, func() error {
				return renderPolicyTable(policies)
			})
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "", "limit listing to one virtual host")
	cmd.Flags().BoolVar(&operator, "operator", false, "list operator policies instead")

	return cmd
}

func renderPolicyTable(policies []rmq.Policy) error {
	if len(policies) == 0 {
		fmt.Println("No policies found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("VHost", "Name", "Pattern", "Apply To", "Priority", "Definition")

	for _, policy := range policies {
		_ = table.Append([]string{
			policy.VirtualHost,
			policy.Name,
			policy.Pattern,
			string(policy.ApplyTo),
			formatCount(int64(policy.Priority)),
			formatArguments(policy.Definition),
		})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func newPoliciesGetCommand() *cobra.Command {
	var (
		vhost    string
		operator bool
	)

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Show one policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				policy *rmq.Policy
				getErr error
			)

			if operator {
				policy, getErr = client.Policies().GetOperator(ctx, vhost, args[0])
			} else {
				policy, getErr = client.Policies().Get(ctx, vhost, args[0])
			}

			if getErr != nil {
				return fmt.Errorf("fetching policy: %w", getErr)
			}

			return renderOutput(policy, func() error {
				return renderPolicyTable([]rmq.Policy{*policy})
			})
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().BoolVar(&operator, "operator", false, "fetch an operator policy instead")

	return cmd
}

func newPoliciesDeclareCommand() *cobra.Command {
	var (
		vhost      string
		pattern    string
		applyTo    string
		priority   int
		definition string
		operator   bool
	)

	cmd := &cobra.Command{
		Use:   "declare <name>",
		Short: "Create or update a policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			target := rmq.PolicyTarget(applyTo)
			if !target.IsKnown() {
				return fmt.Errorf("unknown policy target %q", applyTo)
			}

			policyDef, err := parseArgumentsFlag(definition)
			if err != nil {
				return err
			}

			settings := rmq.PolicySettings{
				Pattern:    pattern,
				ApplyTo:    target,
				Priority:   priority,
				Definition: policyDef,
			}

			ctx := context.Background()

			if operator {
				err = client.Policies().DeclareOperator(ctx, vhost, args[0], settings)
			} else {
				err = client.Policies().Declare(ctx, vhost, args[0], settings)
			}

			if err != nil {
				return fmt.Errorf("declaring policy: %w", err)
			}

			fmt.Printf("Policy %q declared in vhost %q\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().StringVar(&pattern, "pattern", "", "regular expression matched against resource names")
	cmd.Flags().StringVar(&applyTo, "apply-to", "all", "policy target (queues, classic_queues, quorum_queues, streams, exchanges, all)")
	cmd.Flags().IntVar(&priority, "priority", 0, "policy priority")
	cmd.Flags().StringVar(&definition, "definition", "", `policy definition as a JSON object, e.g. '{"max-length": 10000}'`)
	cmd.Flags().BoolVar(&operator, "operator", false, "declare an operator policy instead")
	_ = cmd.MarkFlagRequired("pattern")
	_ = cmd.MarkFlagRequired("definition")

	return cmd
}

func newPoliciesDeleteCommand() *cobra.Command {
	var (
		vhost    string
		operator bool
	)

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var deleteErr error
			if operator {
				deleteErr = client.Policies().DeleteOperator(ctx, vhost, args[0])
			} else {
				deleteErr = client.Policies().Delete(ctx, vhost, args[0])
			}

			if deleteErr != nil {
				return fmt.Errorf("deleting policy: %w", deleteErr)
			}

			fmt.Printf("Policy %q deleted from vhost %q\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().BoolVar(&operator, "operator", false, "delete an operator policy instead")

	return cmd
}
