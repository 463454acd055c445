package client

import (
	"context"
	"fmt"
	gohttp "net/http"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// ConnectionsClient implements rmq.ConnectionsClient.
type ConnectionsClient struct {
	httpClient *http.Client
}

// NewConnectionsClient creates a new connections client.
func NewConnectionsClient(httpClient *http.Client) *ConnectionsClient {
	return &ConnectionsClient{
		httpClient: httpClient,
	}
}

// List implements rmq.ConnectionsClient.List.
func (c *ConnectionsClient) List(ctx context.Context) ([]rmq.Connection, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("connections"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}

	var connections []rmq.Connection
	if err := decodeInto("connections", resp.Body, &connections); err != nil {
		return nil, err
	}

	return connections, nil
}

// ListOf implements rmq.ConnectionsClient.ListOf.
func (c *ConnectionsClient) ListOf(ctx context.Context, username string) ([]rmq.UserConnection, error) {
	if err := requireName("username", username); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("connections", "username", username), nil)
	if err != nil {
		return nil, fmt.Errorf("listing user connections: %w", err)
	}

	var connections []rmq.UserConnection
	if err := decodeInto("user connections", resp.Body, &connections); err != nil {
		return nil, err
	}

	return connections, nil
}

// Get implements rmq.ConnectionsClient.Get.
func (c *ConnectionsClient) Get(ctx context.Context, name string) (*rmq.Connection, error) {
	if err := requireName("name", name); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("connections", name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting connection: %w", err)
	}

	var connection rmq.Connection
	if err := decodeInto("connection", resp.Body, &connection); err != nil {
		return nil, err
	}

	return &connection, nil
}

// Close implements rmq.ConnectionsClient.Close.
func (c *ConnectionsClient) Close(ctx context.Context, name, reason string) error {
	if err := requireName("name", name); err != nil {
		return err
	}

	req := &http.Request{
		Method: gohttp.MethodDelete,
		Path:   apiPath("connections", name),
	}

	if reason != "" {
		req.Headers = map[string]string{"X-Reason": reason}
	}

	_, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("closing connection: %w", err)
	}

	return nil
}
