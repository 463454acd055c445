package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

func TestVirtualHostsClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/vhosts", request.URL.Path)
		_, _ = writer.Write([]byte(`[
			{"name": "/", "description": "Default virtual host", "tags": []},
			{"name": "staging", "tags": "monitoring,qa", "default_queue_type": "quorum"}
		]`))
	}))

	vhosts, err := c.VirtualHosts().List(context.Background())
	require.NoError(t, err)
	require.Len(t, vhosts, 2)
	assert.Equal(t, "/", vhosts[0].Name)

	// Tag lists arrive as arrays on modern brokers and comma-separated
	// strings on old ones.
	assert.Equal(t, rmq.TagList{"monitoring", "qa"}, vhosts[1].Tags)
	assert.Equal(t, rmq.QueueTypeQuorum, vhosts[1].DefaultQueueType)
}

func TestVirtualHostsClient_Declare(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/api/vhosts/staging", request.URL.Path)

		var body map[string]interface{}
		err := json.NewDecoder(request.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "Pre-production", body["description"])
		assert.Equal(t, "quorum", body["default_queue_type"])

		writer.WriteHeader(http.StatusCreated)
	}))

	err := c.VirtualHosts().Declare(context.Background(), "staging", rmq.VirtualHostSettings{
		Description:      "Pre-production",
		DefaultQueueType: rmq.QueueTypeQuorum,
	})
	require.NoError(t, err)
}

func TestVirtualHostsClient_Limits(t *testing.T) {
	t.Parallel()
	t.Run("set limit", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PUT", request.Method)
			assert.Equal(t, "/api/vhost-limits/%2F/max-connections", request.URL.EscapedPath())

			var body map[string]int64
			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, int64(100), body["value"])

			writer.WriteHeader(http.StatusNoContent)
		}))

		err := c.VirtualHosts().SetLimit(context.Background(), "/", rmq.VirtualHostLimitMaxConnections, 100)
		require.NoError(t, err)
	})

	t.Run("list limits", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`[{"vhost": "/", "value": {"max-connections": 100, "max-queues": 50}}]`))
		}))

		limits, err := c.VirtualHosts().ListLimits(context.Background())
		require.NoError(t, err)
		require.Len(t, limits, 1)
		assert.Equal(t, int64(100), limits[0].Limits["max-connections"])
		assert.Equal(t, int64(50), limits[0].Limits["max-queues"])
	})

	t.Run("clear limit", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, "/api/vhost-limits/%2F/max-queues", request.URL.EscapedPath())
			writer.WriteHeader(http.StatusNoContent)
		}))

		err := c.VirtualHosts().ClearLimit(context.Background(), "/", rmq.VirtualHostLimitMaxQueues)
		require.NoError(t, err)
	})
}

func TestVirtualHostsClient_Delete(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		assert.Equal(t, "/api/vhosts/staging", request.URL.Path)
		writer.WriteHeader(http.StatusNoContent)
	}))

	err := c.VirtualHosts().Delete(context.Background(), "staging")
	require.NoError(t, err)
}
