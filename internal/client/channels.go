package client

import (
	"context"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// ChannelsClient implements rmq.ChannelsClient.
type ChannelsClient struct {
	httpClient *http.Client
}

// NewChannelsClient creates a new channels client.
func NewChannelsClient(httpClient *http.Client) *ChannelsClient {
	return &ChannelsClient{
		httpClient: httpClient,
	}
}

// List implements rmq.ChannelsClient.List.
func (c *ChannelsClient) List(ctx context.Context) ([]rmq.Channel, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("channels"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing channels: %w", err)
	}

	var channels []rmq.Channel
	if err := decodeInto("channels", resp.Body, &channels); err != nil {
		return nil, err
	}

	return channels, nil
}

// ListOn implements rmq.ChannelsClient.ListOn.
func (c *ChannelsClient) ListOn(ctx context.Context, connectionName string) ([]rmq.Channel, error) {
	if err := requireName("connection name", connectionName); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("connections", connectionName, "channels"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing connection channels: %w", err)
	}

	var channels []rmq.Channel
	if err := decodeInto("channels", resp.Body, &channels); err != nil {
		return nil, err
	}

	return channels, nil
}
