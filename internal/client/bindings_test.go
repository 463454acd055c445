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

func TestBindingsClient_Declare(t *testing.T) {
	t.Parallel()
	t.Run("exchange to queue", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/api/bindings/%2F/e/events/q/audit", request.URL.EscapedPath())

			var body map[string]interface{}
			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "audit.#", body["routing_key"])

			writer.WriteHeader(http.StatusCreated)
		}))

		err := c.Bindings().Declare(context.Background(), "/", "events",
			rmq.BindingDestinationQueue, "audit", rmq.BindingSettings{RoutingKey: "audit.#"})
		require.NoError(t, err)
	})

	t.Run("exchange to exchange", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/bindings/%2F/e/events/e/mirror", request.URL.EscapedPath())
			writer.WriteHeader(http.StatusCreated)
		}))

		err := c.Bindings().Declare(context.Background(), "/", "events",
			rmq.BindingDestinationExchange, "mirror", rmq.BindingSettings{})
		require.NoError(t, err)
	})

	t.Run("unknown destination type is rejected", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		}))

		err := c.Bindings().Declare(context.Background(), "/", "events",
			rmq.BindingDestinationType("topic"), "audit", rmq.BindingSettings{})
		require.Error(t, err)

		var validationErr *rmq.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestBindingsClient_Delete(t *testing.T) {
	t.Parallel()
	t.Run("by properties key", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, "/api/bindings/%2F/e/events/q/audit/audit.%23", request.URL.EscapedPath())
			writer.WriteHeader(http.StatusNoContent)
		}))

		err := c.Bindings().Delete(context.Background(), "/", "events",
			rmq.BindingDestinationQueue, "audit", "audit.#")
		require.NoError(t, err)
	})

	t.Run("empty properties key falls back to tilde", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/bindings/%2F/e/events/q/audit/~", request.URL.EscapedPath())
			writer.WriteHeader(http.StatusNoContent)
		}))

		err := c.Bindings().Delete(context.Background(), "/", "events",
			rmq.BindingDestinationQueue, "audit", "")
		require.NoError(t, err)
	})
}

func TestBindingsClient_Listings(t *testing.T) {
	t.Parallel()

	bindings := `[{
		"source": "events",
		"vhost": "/",
		"destination": "audit",
		"destination_type": "queue",
		"routing_key": "audit.#",
		"properties_key": "audit.%23"
	}]`

	t.Run("for queue", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/queues/%2F/audit/bindings", request.URL.EscapedPath())
			_, _ = writer.Write([]byte(bindings))
		}))

		result, err := c.Bindings().ListForQueue(context.Background(), "/", "audit")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "events", result[0].Source)
		assert.Equal(t, rmq.BindingDestinationQueue, result[0].DestinationType)
		assert.Equal(t, "audit.%23", result[0].PropertiesKey)
	})

	t.Run("with exchange as source", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/exchanges/%2F/events/bindings/source", request.URL.EscapedPath())
			_, _ = writer.Write([]byte(bindings))
		}))

		result, err := c.Bindings().ListWithSource(context.Background(), "/", "events")
		require.NoError(t, err)
		require.Len(t, result, 1)
	})

	t.Run("with exchange as destination", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/exchanges/%2F/mirror/bindings/destination", request.URL.EscapedPath())
			_, _ = writer.Write([]byte(`[]`))
		}))

		result, err := c.Bindings().ListWithDestination(context.Background(), "/",
			rmq.BindingDestinationExchange, "mirror")
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
