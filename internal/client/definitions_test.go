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

func TestDefinitionsClient_Export(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/definitions", request.URL.Path)
		_, _ = writer.Write([]byte(`{
			"rabbitmq_version": "4.0.5",
			"vhosts": [{"name": "/"}],
			"queues": [{"name": "orders", "vhost": "/", "durable": true, "arguments": {"x-queue-type": "quorum"}}],
			"exchanges": [{"name": "events", "vhost": "/", "type": "topic", "durable": true}],
			"bindings": [{"source": "events", "vhost": "/", "destination": "orders", "destination_type": "queue", "routing_key": "orders.#"}]
		}`))
	}))

	defs, err := c.Definitions().Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "4.0.5", defs.ServerVersion)
	require.Len(t, defs.Queues, 1)
	assert.Equal(t, "orders", defs.Queues[0].Name)

	queueType, ok := defs.Queues[0].Arguments.Get("x-queue-type")
	require.True(t, ok)
	assert.Equal(t, "quorum", queueType)

	require.Len(t, defs.Exchanges, 1)
	assert.Equal(t, rmq.ExchangeTypeTopic, defs.Exchanges[0].Type)
	require.Len(t, defs.Bindings, 1)
	assert.Equal(t, rmq.BindingDestinationQueue, defs.Bindings[0].DestinationType)
}

func TestDefinitionsClient_ExportVirtualHost(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/definitions/%2F", request.URL.EscapedPath())
		_, _ = writer.Write([]byte(`{"queues": [], "exchanges": []}`))
	}))

	defs, err := c.Definitions().ExportVirtualHost(context.Background(), "/")
	require.NoError(t, err)
	assert.Empty(t, defs.Queues)
}

func TestDefinitionsClient_Import(t *testing.T) {
	t.Parallel()
	t.Run("round-trips the document", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/api/definitions", request.URL.Path)

			var body map[string]interface{}
			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)

			queues, ok := body["queues"].([]interface{})
			require.True(t, ok)
			assert.Len(t, queues, 1)

			writer.WriteHeader(http.StatusNoContent)
		}))

		err := c.Definitions().Import(context.Background(), &rmq.DefinitionSet{
			Queues: []rmq.QueueDefinition{{Name: "orders", VirtualHost: "/", Durable: true}},
		})
		require.NoError(t, err)
	})

	t.Run("nil document is rejected", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		}))

		err := c.Definitions().Import(context.Background(), nil)
		require.Error(t, err)

		var validationErr *rmq.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}
