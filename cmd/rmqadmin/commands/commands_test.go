package commands_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikrivosheev/rabbitmq-http-client/cmd/rmqadmin/commands"
)

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	return names
}

func findSubcommand(root *cobra.Command, name string) *cobra.Command {
	for _, subcmd := range root.Commands() {
		if subcmd.Name() == name {
			return subcmd
		}
	}

	return nil
}

func TestNewQueuesCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewQueuesCommand()
	assert.Equal(t, "queues", cmd.Use)
	assert.Equal(t, []string{"queue", "q"}, cmd.Aliases)

	names := subcommandNames(cmd)
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "get")
	assert.Contains(t, names, "declare")
	assert.Contains(t, names, "delete")
	assert.Contains(t, names, "purge")
	assert.Contains(t, names, "get-messages")
}

func TestQueuesDeclareCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := findSubcommand(commands.NewQueuesCommand(), "declare")
	require.NotNil(t, cmd)
	require.NotNil(t, cmd.RunE)

	assert.NotNil(t, cmd.Flags().Lookup("vhost"))
	assert.NotNil(t, cmd.Flags().Lookup("type"))
	assert.NotNil(t, cmd.Flags().Lookup("durable"))
	assert.NotNil(t, cmd.Flags().Lookup("arguments"))

	queueType, err := cmd.Flags().GetString("type")
	require.NoError(t, err)
	assert.Equal(t, "classic", queueType)
}

func TestNewVHostsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewVHostsCommand()
	assert.Equal(t, "vhosts", cmd.Use)

	names := subcommandNames(cmd)
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "declare")
	assert.Contains(t, names, "set-limit")
	assert.Contains(t, names, "clear-limit")
}

func TestNewUsersCommand(t *testing.T) {
	t.Parallel()

	names := subcommandNames(commands.NewUsersCommand())
	assert.Contains(t, names, "whoami")
	assert.Contains(t, names, "set-permissions")
	assert.Contains(t, names, "set-topic-permissions")
	assert.Contains(t, names, "limits")
}

func TestNewHealthCommand(t *testing.T) {
	t.Parallel()

	names := subcommandNames(commands.NewHealthCommand())
	assert.Contains(t, names, "alarms")
	assert.Contains(t, names, "local-alarms")
	assert.Contains(t, names, "quorum-critical")
}

func TestNewDefinitionsCommand(t *testing.T) {
	t.Parallel()

	names := subcommandNames(commands.NewDefinitionsCommand())
	assert.Contains(t, names, "export")
	assert.Contains(t, names, "import")
}

func TestCreateClientRequiresEndpoint(t *testing.T) {
	_, err := commands.CreateClient()
	require.ErrorIs(t, err, commands.ErrEndpointNotConfigured)
}
