package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users and permissions",
		Long:    "List, inspect, declare, and delete users, permissions, and user limits",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersDeclareCommand())
	cmd.AddCommand(newUsersDeleteCommand())
	cmd.AddCommand(newUsersWhoAmICommand())
	cmd.AddCommand(newUsersPermissionsCommand())
	cmd.AddCommand(newUsersSetPermissionsCommand())
	cmd.AddCommand(newUsersClearPermissionsCommand())
	cmd.AddCommand(newUsersSetTopicPermissionsCommand())
	cmd.AddCommand(newUsersLimitsCommand())
	cmd.AddCommand(newUsersSetLimitCommand())
	cmd.AddCommand(newUsersClearLimitCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			users, err := client.Users().List(context.Background())
			if err != nil {
				return fmt.Errorf("listing users: %w", err)
			}

			return renderOutput(users, func() error {
				return renderUserTable(users)
			})
		},
	}
}

func renderUserTable(users []rmq.User) error {
	if len(users) == 0 {
		fmt.Println("No users found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Tags")

	for _, user := range users {
		_ = table.Append([]string{user.Name, formatTags(user.Tags)})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("fetching user: %w", err)
			}

			return renderOutput(user, func() error {
				return renderUserTable([]rmq.User{*user})
			})
		},
	}
}

func newUsersDeclareCommand() *cobra.Command {
	var (
		passwordHash string
		tags         string
	)

	cmd := &cobra.Command{
		Use:   "declare <name>",
		Short: "Create or update a user",
		Long:  "Create or update a user. Only pre-computed salted password hashes are accepted; plaintext passwords are never sent to the broker.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			settings := rmq.UserSettings{PasswordHash: passwordHash, Tags: tags}

			if err := client.Users().Declare(context.Background(), args[0], settings); err != nil {
				return fmt.Errorf("declaring user: %w", err)
			}

			fmt.Printf("User %q declared\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&passwordHash, "password-hash", "", "salted password hash (rabbit_password_hashing_sha256)")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags, e.g. administrator")

	return cmd
}

func newUsersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Users().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("deleting user: %w", err)
			}

			fmt.Printf("User %q deleted\n", args[0])

			return nil
		},
	}
}

func newUsersWhoAmICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			identity, err := client.Users().WhoAmI(context.Background())
			if err != nil {
				return fmt.Errorf("fetching identity: %w", err)
			}

			return renderOutput(identity, func() error {
				fmt.Printf("%s (tags: %s)\n", identity.Name, formatTags(identity.Tags))

				return nil
			})
		},
	}
}

func newUsersPermissionsCommand() *cobra.Command {
	var (
		vhost    string
		username string
	)

	cmd := &cobra.Command{
		Use:   "permissions",
		Short: "List permissions",
		Long:  "List permissions cluster-wide, in one virtual host, or of one user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				permissions []rmq.Permissions
				listErr     error
			)

			switch {
			case vhost != "":
				permissions, listErr = client.Permissions().ListIn(ctx, vhost)
			case username != "":
				permissions, listErr = client.Permissions().ListOf(ctx, username)
			default:
				permissions, listErr = client.Permissions().List(ctx)
			}

			if listErr != nil {
				return fmt.Errorf("listing permissions: %w", listErr)
			}

			return renderOutput(permissions, func() error {
				if len(permissions) == 0 {
					fmt.Println("No permissions found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("VHost", "User", "Configure", "Write", "Read")

				for _, perm := range permissions {
					_ = table.Append([]string{perm.VirtualHost, perm.User, perm.Configure, perm.Write, perm.Read})
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("rendering table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "", "limit listing to one virtual host")
	cmd.Flags().StringVar(&username, "user", "", "limit listing to one user")

	return cmd
}

func newUsersSetPermissionsCommand() *cobra.Command {
	var (
		vhost     string
		configure string
		write     string
		read      string
	)

	cmd := &cobra.Command{
		Use:   "set-permissions <username>",
		Short: "Grant permissions to a user in a virtual host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			settings := rmq.PermissionsSettings{Configure: configure, Write: write, Read: read}

			if err := client.Permissions().Declare(context.Background(), vhost, args[0], settings); err != nil {
				return fmt.Errorf("setting permissions: %w", err)
			}

			fmt.Printf("Permissions for %q set in vhost %q\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().StringVar(&configure, "configure", ".*", "configure permission pattern")
	cmd.Flags().StringVar(&write, "write", ".*", "write permission pattern")
	cmd.Flags().StringVar(&read, "read", ".*", "read permission pattern")

	return cmd
}

func newUsersClearPermissionsCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "clear-permissions <username>",
		Short: "Revoke a user's permissions in a virtual host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Permissions().Clear(context.Background(), vhost, args[0]); err != nil {
				return fmt.Errorf("clearing permissions: %w", err)
			}

			fmt.Printf("Permissions for %q cleared in vhost %q\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")

	return cmd
}

func newUsersSetTopicPermissionsCommand() *cobra.Command {
	var (
		vhost    string
		exchange string
		write    string
		read     string
	)

	cmd := &cobra.Command{
		Use:   "set-topic-permissions <username>",
		Short: "Grant topic permissions to a user on one exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			settings := rmq.TopicPermissionsSettings{Exchange: exchange, Write: write, Read: read}

			if err := client.TopicPermissions().Declare(context.Background(), vhost, args[0], settings); err != nil {
				return fmt.Errorf("setting topic permissions: %w", err)
			}

			fmt.Printf("Topic permissions for %q set on %q in vhost %q\n", args[0], exchange, vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().StringVar(&exchange, "exchange", "amq.topic", "topic exchange")
	cmd.Flags().StringVar(&write, "write", ".*", "write permission pattern")
	cmd.Flags().StringVar(&read, "read", ".*", "read permission pattern")

	return cmd
}

func newUsersLimitsCommand() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "limits",
		Short: "List enforced user limits",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				limits  []rmq.UserLimits
				listErr error
			)

			if username != "" {
				limits, listErr = client.Users().ListLimitsOf(ctx, username)
			} else {
				limits, listErr = client.Users().ListLimits(ctx)
			}

			if listErr != nil {
				return fmt.Errorf("listing user limits: %w", listErr)
			}

			return renderOutput(limits, func() error {
				if len(limits) == 0 {
					fmt.Println("No limits enforced")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("User", "Limit", "Value")

				for _, entry := range limits {
					for name, value := range entry.Limits {
						_ = table.Append([]string{entry.Username, name, formatCount(value)})
					}
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("rendering table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "limit listing to one user")

	return cmd
}

func newUsersSetLimitCommand() *cobra.Command {
	var value int64

	cmd := &cobra.Command{
		Use:   "set-limit <username> <max-connections|max-channels>",
		Short: "Enforce a limit on a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			limit := rmq.UserLimitTarget(args[1])
			if !limit.IsKnown() {
				return fmt.Errorf("unknown limit %q", args[1])
			}

			if err := client.Users().SetLimit(context.Background(), args[0], limit, value); err != nil {
				return fmt.Errorf("setting limit: %w", err)
			}

			fmt.Printf("Limit %s=%d enforced on user %q\n", args[1], value, args[0])

			return nil
		},
	}

	cmd.Flags().Int64Var(&value, "value", 0, "limit value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newUsersClearLimitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-limit <username> <max-connections|max-channels>",
		Short: "Clear an enforced user limit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			limit := rmq.UserLimitTarget(args[1])
			if !limit.IsKnown() {
				return fmt.Errorf("unknown limit %q", args[1])
			}

			if err := client.Users().ClearLimit(context.Background(), args[0], limit); err != nil {
				return fmt.Errorf("clearing limit: %w", err)
			}

			fmt.Printf("Limit %s cleared on user %q\n", args[1], args[0])

			return nil
		},
	}
}
