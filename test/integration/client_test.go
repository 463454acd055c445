//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmqclient"
)

// newIntegrationClient connects to the broker named by the environment, or
// skips the test when none is configured. Run with:
//
//	RABBITMQ_ENDPOINT=http://localhost:15672 go test -tags integration ./test/integration/
func newIntegrationClient(t *testing.T) rmq.Client {
	t.Helper()

	endpoint := os.Getenv("RABBITMQ_ENDPOINT")
	if endpoint == "" {
		t.Skip("RABBITMQ_ENDPOINT not set")
	}

	username := os.Getenv("RABBITMQ_USERNAME")
	if username == "" {
		username = "guest"
	}

	password := os.Getenv("RABBITMQ_PASSWORD")
	if password == "" {
		password = "guest"
	}

	client, err := rmqclient.NewWithEndpoint(endpoint, username, password)
	require.NoError(t, err)

	return client
}

func TestIntegration_OverviewAndIdentity(t *testing.T) {
	client := newIntegrationClient(t)
	ctx := context.Background()

	overview, err := client.Overview(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, overview.ClusterName)
	assert.NotEmpty(t, overview.RabbitMQVersion)

	identity, err := client.Users().WhoAmI(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, identity.Name)
}

func TestIntegration_QueueLifecycle(t *testing.T) {
	client := newIntegrationClient(t)
	ctx := context.Background()

	queueName := fmt.Sprintf("it.queue.%d", time.Now().UnixNano())

	t.Cleanup(func() {
		_ = client.Queues().Delete(context.Background(), "/", queueName)
	})

	settings := rmq.NewQueueSettings(rmq.QueueTypeClassic, true, false, nil)
	require.NoError(t, client.Queues().Declare(ctx, "/", queueName, settings))

	queue, err := client.Queues().Get(ctx, "/", queueName)
	require.NoError(t, err)
	assert.Equal(t, queueName, queue.Name)
	assert.True(t, queue.Durable)

	// Redeclaring with identical settings is idempotent
	require.NoError(t, client.Queues().Declare(ctx, "/", queueName, settings))

	// Redeclaring with different durability conflicts
	conflicting := rmq.NewQueueSettings(rmq.QueueTypeClassic, false, false, nil)
	err = client.Queues().Declare(ctx, "/", queueName, conflicting)
	assert.True(t, rmq.IsConflict(err))

	require.NoError(t, client.Queues().Delete(ctx, "/", queueName))

	_, err = client.Queues().Get(ctx, "/", queueName)
	assert.True(t, rmq.IsNotFound(err))
}

func TestIntegration_PublishAndGet(t *testing.T) {
	client := newIntegrationClient(t)
	ctx := context.Background()

	queueName := fmt.Sprintf("it.messages.%d", time.Now().UnixNano())

	t.Cleanup(func() {
		_ = client.Queues().Delete(context.Background(), "/", queueName)
	})

	require.NoError(t, client.Queues().Declare(ctx, "/", queueName, rmq.NewDurableClassicQueue(nil)))

	// Publish through the default exchange, which routes by queue name.
	// The management API names it "amq.default".
	routed, err := client.Exchanges().Publish(ctx, "/", "amq.default", rmq.PublishOptions{
		RoutingKey: queueName,
		Payload:    "integration payload",
	})
	require.NoError(t, err)
	assert.True(t, routed.Routed)

	messages, err := client.Queues().GetMessages(ctx, "/", queueName, rmq.GetMessagesOptions{
		Count:   1,
		AckMode: "ack_requeue_false",
	})
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "integration payload", messages[0].Payload)
}

func TestIntegration_HealthChecks(t *testing.T) {
	client := newIntegrationClient(t)
	ctx := context.Background()

	// A healthy dev broker passes both alarm checks
	details, err := client.Health().ClusterAlarms(ctx)
	require.NoError(t, err)
	assert.Nil(t, details)

	local, err := client.Health().LocalAlarms(ctx)
	require.NoError(t, err)
	assert.Nil(t, local)
}
