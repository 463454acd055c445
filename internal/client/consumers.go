package client

import (
	"context"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// ConsumersClient implements rmq.ConsumersClient.
type ConsumersClient struct {
	httpClient *http.Client
}

// NewConsumersClient creates a new consumers client.
func NewConsumersClient(httpClient *http.Client) *ConsumersClient {
	return &ConsumersClient{
		httpClient: httpClient,
	}
}

// List implements rmq.ConsumersClient.List.
func (c *ConsumersClient) List(ctx context.Context) ([]rmq.Consumer, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("consumers"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing consumers: %w", err)
	}

	var consumers []rmq.Consumer
	if err := decodeInto("consumers", resp.Body, &consumers); err != nil {
		return nil, err
	}

	return consumers, nil
}

// ListIn implements rmq.ConsumersClient.ListIn.
func (c *ConsumersClient) ListIn(ctx context.Context, vhost string) ([]rmq.Consumer, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("consumers", vhost), nil)
	if err != nil {
		return nil, fmt.Errorf("listing consumers in vhost: %w", err)
	}

	var consumers []rmq.Consumer
	if err := decodeInto("consumers", resp.Body, &consumers); err != nil {
		return nil, err
	}

	return consumers, nil
}
