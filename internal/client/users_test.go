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

func TestUsersClient_Declare(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/users/alice", request.URL.Path)
		assert.Equal(t, http.MethodPut, request.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "tLnreq...hash", body["password_hash"])
		assert.Equal(t, "administrator", body["tags"])

		writer.WriteHeader(http.StatusCreated)
	}))

	settings := rmq.UserSettings{PasswordHash: "tLnreq...hash", Tags: "administrator"}
	require.NoError(t, c.Users().Declare(context.Background(), "alice", settings))
}

func TestUsersClient_Get(t *testing.T) {
	t.Parallel()
	t.Run("decodes array tags", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/users/alice", request.URL.Path)
			_, _ = writer.Write([]byte(`{"name": "alice", "tags": ["administrator", "monitoring"]}`))
		}))

		user, err := c.Users().Get(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, rmq.TagList{"administrator", "monitoring"}, user.Tags)
	})

	t.Run("decodes comma-separated string tags", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"name": "alice", "tags": "administrator,monitoring"}`))
		}))

		user, err := c.Users().Get(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, rmq.TagList{"administrator", "monitoring"}, user.Tags)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error": "Object Not Found", "reason": "Not Found"}`))
		}))

		_, err := c.Users().Get(context.Background(), "ghost")
		assert.True(t, rmq.IsNotFound(err))
	})
}

func TestUsersClient_WhoAmI(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/whoami", request.URL.Path)
		_, _ = writer.Write([]byte(`{"name": "guest", "tags": ["administrator"]}`))
	}))

	identity, err := c.Users().WhoAmI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "guest", identity.Name)
	assert.Equal(t, rmq.TagList{"administrator"}, identity.Tags)
}

func TestUsersClient_Limits(t *testing.T) {
	t.Parallel()
	t.Run("set", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/user-limits/alice/max-connections", request.URL.Path)
			assert.Equal(t, http.MethodPut, request.Method)

			var body map[string]int64
			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, int64(10), body["value"])

			writer.WriteHeader(http.StatusNoContent)
		}))

		err := c.Users().SetLimit(context.Background(), "alice", rmq.UserLimitMaxConnections, 10)
		require.NoError(t, err)
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/user-limits", request.URL.Path)
			_, _ = writer.Write([]byte(`[{"user": "alice", "value": {"max-connections": 10, "max-channels": 50}}]`))
		}))

		limits, err := c.Users().ListLimits(context.Background())
		require.NoError(t, err)
		require.Len(t, limits, 1)
		assert.Equal(t, "alice", limits[0].Username)
		assert.Equal(t, int64(10), limits[0].Limits["max-connections"])
		assert.Equal(t, int64(50), limits[0].Limits["max-channels"])
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/user-limits/alice/max-channels", request.URL.Path)
			assert.Equal(t, http.MethodDelete, request.Method)
			writer.WriteHeader(http.StatusNoContent)
		}))

		err := c.Users().ClearLimit(context.Background(), "alice", rmq.UserLimitMaxChannels)
		require.NoError(t, err)
	})
}
