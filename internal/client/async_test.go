package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/client"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

func newTestAsyncClient(t *testing.T, handler http.Handler) *client.AsyncClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := client.NewAsync(&rmq.Config{
		Endpoint: server.URL,
		Username: "guest",
		Password: "guest",
	})
	require.NoError(t, err)

	return c
}

func TestAsyncClient_Overview(t *testing.T) {
	t.Parallel()

	c := newTestAsyncClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"cluster_name": "rabbit@node1", "rabbitmq_version": "4.0.5"}`))
	}))

	future := c.Overview(context.Background())

	overview, err := future.Result(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rabbit@node1", overview.ClusterName)

	// A settled future can be read again.
	again, err := future.Result(context.Background())
	require.NoError(t, err)
	assert.Equal(t, overview, again)
}

func TestAsyncClient_ErrorsFlowThroughFutures(t *testing.T) {
	t.Parallel()

	c := newTestAsyncClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"error": "Object Not Found", "reason": "Not Found"}`))
	}))

	_, err := c.Queues().Get(context.Background(), "/", "missing").Result(context.Background())
	require.Error(t, err)
	assert.True(t, rmq.IsNotFound(err))
}

func TestAsyncClient_ConcurrentOperations(t *testing.T) {
	t.Parallel()

	c := newTestAsyncClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`[]`))
	}))

	futures := make([]*rmq.Future[[]rmq.QueueInfo], 10)
	for i := range futures {
		futures[i] = c.Queues().List(context.Background())
	}

	var wg sync.WaitGroup

	for _, future := range futures {
		wg.Add(1)

		go func(f *rmq.Future[[]rmq.QueueInfo]) {
			defer wg.Done()

			queues, err := f.Result(context.Background())
			assert.NoError(t, err)
			assert.Empty(t, queues)
		}(future)
	}

	wg.Wait()
}

func TestAsyncClient_ResultHonorsCancellation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	c := newTestAsyncClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		<-release
		_, _ = writer.Write([]byte(`[]`))
	}))

	t.Cleanup(func() { close(release) })

	future := c.Queues().List(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := future.Result(ctx)
	require.Error(t, err)

	var transportErr *rmq.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestAsyncClient_DeclareAndAck(t *testing.T) {
	t.Parallel()

	c := newTestAsyncClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		writer.WriteHeader(http.StatusCreated)
	}))

	_, err := c.VirtualHosts().
		Declare(context.Background(), "staging", rmq.VirtualHostSettings{}).
		Result(context.Background())
	require.NoError(t, err)
}
