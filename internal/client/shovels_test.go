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

func TestShovelsClient_Declare(t *testing.T) {
	t.Parallel()
	t.Run("upserts the backing runtime parameter", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PUT", request.Method)
			assert.Equal(t, "/api/parameters/shovel/%2F/drain-orders", request.URL.EscapedPath())

			var body rmq.RuntimeParameter
			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "drain-orders", body.Name)
			assert.Equal(t, "shovel", body.Component)
			assert.Equal(t, "amqp://", body.Value["src-uri"])
			assert.Equal(t, "orders", body.Value["src-queue"])
			assert.Equal(t, "orders-archive", body.Value["dest-queue"])

			writer.WriteHeader(http.StatusCreated)
		}))

		err := c.Shovels().Declare(context.Background(), "/", "drain-orders", rmq.ShovelSettings{
			SourceURI:        "amqp://",
			DestinationURI:   "amqp://",
			SourceQueue:      "orders",
			DestinationQueue: "orders-archive",
			AckMode:          "on-confirm",
		})
		require.NoError(t, err)
	})

	t.Run("missing source URI is rejected", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		}))

		err := c.Shovels().Declare(context.Background(), "/", "drain-orders", rmq.ShovelSettings{
			DestinationURI: "amqp://",
		})
		require.Error(t, err)

		var validationErr *rmq.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestShovelsClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/shovels", request.URL.Path)
		_, _ = writer.Write([]byte(`[
			{"name": "drain-orders", "vhost": "/", "node": "rabbit@node1", "type": "dynamic", "state": "running"}
		]`))
	}))

	shovels, err := c.Shovels().List(context.Background())
	require.NoError(t, err)
	require.Len(t, shovels, 1)
	assert.Equal(t, "drain-orders", shovels[0].Name)
	assert.Equal(t, "running", shovels[0].State)
}

func TestShovelsClient_Delete(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		assert.Equal(t, "/api/parameters/shovel/%2F/drain-orders", request.URL.EscapedPath())
		writer.WriteHeader(http.StatusNoContent)
	}))

	err := c.Shovels().Delete(context.Background(), "/", "drain-orders")
	require.NoError(t, err)
}

func TestFederationUpstreamsClient(t *testing.T) {
	t.Parallel()
	t.Run("declare", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PUT", request.Method)
			assert.Equal(t, "/api/parameters/federation-upstream/%2F/origin", request.URL.EscapedPath())

			var body rmq.RuntimeParameter
			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "amqp://remote.example.com", body.Value["uri"])

			writer.WriteHeader(http.StatusCreated)
		}))

		err := c.FederationUpstreams().Declare(context.Background(), "/", "origin",
			rmq.FederationUpstreamSettings{URI: "amqp://remote.example.com", PrefetchCount: 500})
		require.NoError(t, err)
	})

	t.Run("list flattens backing parameters", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/parameters/federation-upstream", request.URL.Path)
			_, _ = writer.Write([]byte(`[{
				"name": "origin",
				"vhost": "/",
				"component": "federation-upstream",
				"value": {"uri": "amqp://remote.example.com", "prefetch-count": 500}
			}]`))
		}))

		upstreams, err := c.FederationUpstreams().List(context.Background())
		require.NoError(t, err)
		require.Len(t, upstreams, 1)
		assert.Equal(t, "origin", upstreams[0].Name)
		assert.Equal(t, "/", upstreams[0].VirtualHost)
		assert.Equal(t, "amqp://remote.example.com", upstreams[0].URI)
		assert.Equal(t, 500, upstreams[0].PrefetchCount)
	})
}
