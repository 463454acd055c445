package client

import (
	"context"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// NodesClient implements rmq.NodesClient.
type NodesClient struct {
	httpClient *http.Client
}

// NewNodesClient creates a new nodes client.
func NewNodesClient(httpClient *http.Client) *NodesClient {
	return &NodesClient{
		httpClient: httpClient,
	}
}

// List implements rmq.NodesClient.List.
func (c *NodesClient) List(ctx context.Context) ([]rmq.ClusterNode, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("nodes"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}

	var nodes []rmq.ClusterNode
	if err := decodeInto("nodes", resp.Body, &nodes); err != nil {
		return nil, err
	}

	return nodes, nil
}

// Get implements rmq.NodesClient.Get.
func (c *NodesClient) Get(ctx context.Context, name string) (*rmq.ClusterNode, error) {
	if err := requireName("name", name); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("nodes", name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting node: %w", err)
	}

	var node rmq.ClusterNode
	if err := decodeInto("node", resp.Body, &node); err != nil {
		return nil, err
	}

	return &node, nil
}
