package rmqclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmqclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := rmqclient.New(nil)
		require.ErrorIs(t, err, rmq.ErrConfigRequired)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := rmqclient.New(&rmq.Config{Username: "guest"})
		require.ErrorIs(t, err, rmq.ErrEndpointRequired)
	})

	t.Run("normalizes trailing slash and api suffix", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/overview", request.URL.Path)
			_, _ = writer.Write([]byte(`{"cluster_name": "rabbit@node1"}`))
		}))
		defer server.Close()

		for _, endpoint := range []string{
			server.URL,
			server.URL + "/",
			server.URL + "/api",
			server.URL + "/api/",
		} {
			cli, err := rmqclient.NewWithEndpoint(endpoint, "guest", "guest")
			require.NoError(t, err)

			overview, err := cli.Overview(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "rabbit@node1", overview.ClusterName)
		}
	})

	t.Run("does not mutate the caller's config", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		config := &rmq.Config{
			Endpoint: server.URL + "/api/",
			Username: "guest",
			Password: "guest",
		}

		_, err := rmqclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/api/", config.Endpoint)

		_, err = rmqclient.NewAsync(config)
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/api/", config.Endpoint)
	})

	t.Run("defaults to http scheme", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"name": "rabbit@node1"}`))
		}))
		defer server.Close()

		bare := strings.TrimPrefix(server.URL, "http://")

		cli, err := rmqclient.NewWithEndpoint(bare, "guest", "guest")
		require.NoError(t, err)

		identity, err := cli.ClusterName(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "rabbit@node1", identity.Name)
	})
}

func TestNewAsync(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	cli, err := rmqclient.NewAsync(&rmq.Config{
		Endpoint: server.URL,
		Username: "guest",
		Password: "guest",
	})
	require.NoError(t, err)

	vhosts, err := cli.VirtualHosts().List(context.Background()).Result(context.Background())
	require.NoError(t, err)
	assert.Empty(t, vhosts)
}
