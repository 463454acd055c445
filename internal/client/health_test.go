package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthClient_ClusterAlarms(t *testing.T) {
	t.Parallel()
	t.Run("passing check returns nil details", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/health/checks/alarms", request.URL.Path)
			_, _ = writer.Write([]byte(`{"status": "ok"}`))
		}))

		details, err := c.Health().ClusterAlarms(context.Background())
		require.NoError(t, err)
		assert.Nil(t, details)
	})

	t.Run("failing check returns details without an error", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusServiceUnavailable)
			_, _ = writer.Write([]byte(`{
				"status": "failed",
				"reason": "resource alarms in effect",
				"alarms": [{"node": "rabbit@node1", "resource": "memory"}]
			}`))
		}))

		details, err := c.Health().ClusterAlarms(context.Background())
		require.NoError(t, err)
		require.NotNil(t, details)
		assert.Equal(t, "resource alarms in effect", details.Reason)
		require.Len(t, details.Alarms, 1)
		assert.Equal(t, "memory", details.Alarms[0].Resource)
	})

	t.Run("other failures are errors", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"error": "not_authorised", "reason": "Login failed"}`))
		}))

		_, err := c.Health().ClusterAlarms(context.Background())
		require.Error(t, err)
	})
}

func TestHealthClient_NodeIsQuorumCritical(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/health/checks/node-is-quorum-critical", request.URL.Path)
		writer.WriteHeader(http.StatusServiceUnavailable)
		_, _ = writer.Write([]byte(`{
			"status": "failed",
			"reason": "quorum queues would lose their quorum",
			"queues": [{"name": "orders", "virtual_host": "/", "type": "quorum"}]
		}`))
	}))

	details, err := c.Health().NodeIsQuorumCritical(context.Background())
	require.NoError(t, err)
	require.NotNil(t, details)
	require.Len(t, details.Queues, 1)
	assert.Equal(t, "orders", details.Queues[0].Name)
}
