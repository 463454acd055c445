package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rmqhttp "github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/overview", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			username, password, ok := request.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "guest", username)
			assert.Equal(t, "guest", password)

			response := map[string]string{"cluster_name": "rabbit@node1", "rabbitmq_version": "4.0.5"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := rmqhttp.NewClient(server.URL, &rmqhttp.BasicAuth{Username: "guest", Password: "guest"})

		req := &rmqhttp.Request{
			Method: "GET",
			Path:   "/api/overview",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]string
		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "rabbit@node1", result["cluster_name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "2", request.URL.Query().Get("page"))
			assert.Equal(t, "50", request.URL.Query().Get("page_size"))
			_, _ = writer.Write([]byte("{}"))
		}))
		defer server.Close()

		client := rmqhttp.NewClient(server.URL, nil)

		query := url.Values{}
		query.Set("page", "2")
		query.Set("page_size", "50")

		resp, err := client.Do(context.Background(), &rmqhttp.Request{
			Method: "GET",
			Path:   "/api/queues",
			Query:  query,
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("request with JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PUT", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]interface{}
			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, true, body["durable"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := rmqhttp.NewClient(server.URL, nil)

		resp, err := client.Put(context.Background(), "/api/queues/%2F/orders", map[string]interface{}{
			"durable": true,
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("request with extra headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "connection limit reached", request.Header.Get("X-Reason"))
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := rmqhttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &rmqhttp.Request{
			Method:  "DELETE",
			Path:    "/api/connections/conn-1",
			Headers: map[string]string{"X-Reason": "connection limit reached"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := rmqhttp.NewClient(server.URL, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.Get(ctx, "/api/overview", nil)
		require.Error(t, err)

		var transportErr *rmq.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, "GET /api/overview", transportErr.Op)
	})

	t.Run("debug logging redacts credentials", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte("{}"))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := rmqhttp.NewClient(server.URL, &rmqhttp.BasicAuth{Username: "guest", Password: "s3cret"},
			rmqhttp.WithLogger(logger),
			rmqhttp.WithDebug(true),
		)

		_, err := client.Get(context.Background(), "/api/overview", nil)
		require.NoError(t, err)
		require.NotEmpty(t, logger.logs)

		for _, entry := range logger.logs {
			fields, ok := entry["fields"].(map[string]interface{})
			require.True(t, ok)

			for _, value := range fields {
				str, isString := value.(string)
				if isString {
					assert.NotContains(t, str, "s3cret")
				}
			}
		}
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_ErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		wantKind   rmq.BrokerErrorKind
		wantName   string
		wantReason string
	}{
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			body:       `{"error": "Object Not Found", "reason": "Not Found"}`,
			wantKind:   rmq.KindNotFound,
			wantName:   "Object Not Found",
			wantReason: "Not Found",
		},
		{
			name:       "unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       `{"error": "not_authorised", "reason": "Login failed"}`,
			wantKind:   rmq.KindUnauthorized,
			wantName:   "not_authorised",
			wantReason: "Login failed",
		},
		{
			name:       "forbidden",
			statusCode: http.StatusForbidden,
			body:       `{"error": "not_authorised", "reason": "Access refused"}`,
			wantKind:   rmq.KindForbidden,
			wantReason: "Access refused",
		},
		{
			name:       "conflict",
			statusCode: http.StatusConflict,
			body:       `{"error": "conflict", "reason": "object already exists"}`,
			wantKind:   rmq.KindConflict,
			wantReason: "object already exists",
		},
		{
			name:       "inequivalent declaration reported as 400",
			statusCode: http.StatusBadRequest,
			body:       `{"error": "bad_request", "reason": "inequivalent arg 'durable' for queue 'orders' in vhost '/'"}`,
			wantKind:   rmq.KindConflict,
			wantName:   "bad_request",
			wantReason: "inequivalent arg 'durable' for queue 'orders' in vhost '/'",
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			body:       `{"error": "internal_server_error", "reason": "crash"}`,
			wantKind:   rmq.KindServer,
			wantReason: "crash",
		},
		{
			name:       "non-JSON body falls back to status text",
			statusCode: http.StatusBadGateway,
			body:       "<html>Bad Gateway</html>",
			wantKind:   rmq.KindServer,
			wantReason: "Bad Gateway",
		},
		{
			name:       "empty body",
			statusCode: http.StatusNotFound,
			body:       "",
			wantKind:   rmq.KindNotFound,
			wantReason: "Not Found",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(testCase.statusCode)
				_, _ = writer.Write([]byte(testCase.body))
			}))
			defer server.Close()

			client := rmqhttp.NewClient(server.URL, nil)

			resp, err := client.Get(context.Background(), "/api/thing", nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, testCase.statusCode, resp.StatusCode)

			var brokerErr *rmq.BrokerError
			require.ErrorAs(t, err, &brokerErr)
			assert.Equal(t, testCase.wantKind, brokerErr.Kind)
			assert.Equal(t, testCase.statusCode, brokerErr.StatusCode)
			assert.Equal(t, testCase.wantReason, brokerErr.Reason)

			if testCase.wantName != "" {
				assert.Equal(t, testCase.wantName, brokerErr.ErrorName)
			}
		})
	}
}

func TestClient_Retries(t *testing.T) {
	t.Parallel()

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		attempts++
		if attempts < 3 {
			writer.WriteHeader(http.StatusBadGateway)

			return
		}

		_, _ = writer.Write([]byte("{}"))
	}))
	defer server.Close()

	client := rmqhttp.NewClient(server.URL, nil,
		rmqhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

	resp, err := client.Get(context.Background(), "/api/overview", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, attempts)
}

func TestClient_RetriesExhaustedKeepsResponse(t *testing.T) {
	t.Parallel()

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		attempts++
		writer.WriteHeader(http.StatusBadGateway)
		_, _ = writer.Write([]byte("<html>Bad Gateway</html>"))
	}))
	defer server.Close()

	client := rmqhttp.NewClient(server.URL, nil,
		rmqhttp.WithRetryConfig(2, time.Millisecond, 5*time.Millisecond))

	resp, err := client.Get(context.Background(), "/api/queues/%2F/ghost", nil)
	require.Error(t, err)
	assert.Equal(t, 3, attempts)

	// The last response must survive the exhausted retries so callers still
	// get a classified error with the status code and body.
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "<html>Bad Gateway</html>", string(resp.Body))

	var brokerErr *rmq.BrokerError
	require.ErrorAs(t, err, &brokerErr)
	assert.Equal(t, rmq.KindServer, brokerErr.Kind)
	assert.Equal(t, http.StatusBadGateway, brokerErr.StatusCode)
	assert.Equal(t, "Bad Gateway", brokerErr.Reason)
}

func TestClient_NoRetriesByDefault(t *testing.T) {
	t.Parallel()

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		attempts++
		writer.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := rmqhttp.NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/api/overview", nil)
	require.Error(t, err)
	assert.Equal(t, 1, attempts)

	var brokerErr *rmq.BrokerError
	require.True(t, errors.As(err, &brokerErr))
	assert.Equal(t, rmq.KindServer, brokerErr.Kind)
}
