package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// QueuesClient implements rmq.QueuesClient.
type QueuesClient struct {
	httpClient *http.Client
}

// NewQueuesClient creates a new queues client.
func NewQueuesClient(httpClient *http.Client) *QueuesClient {
	return &QueuesClient{
		httpClient: httpClient,
	}
}

// List implements rmq.QueuesClient.List.
func (c *QueuesClient) List(ctx context.Context) ([]rmq.QueueInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("queues"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing queues: %w", err)
	}

	var queues []rmq.QueueInfo
	if err := decodeInto("queues", resp.Body, &queues); err != nil {
		return nil, err
	}

	return queues, nil
}

// ListIn implements rmq.QueuesClient.ListIn.
func (c *QueuesClient) ListIn(ctx context.Context, vhost string) ([]rmq.QueueInfo, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("queues", vhost), nil)
	if err != nil {
		return nil, fmt.Errorf("listing queues in vhost: %w", err)
	}

	var queues []rmq.QueueInfo
	if err := decodeInto("queues", resp.Body, &queues); err != nil {
		return nil, err
	}

	return queues, nil
}

// ListPaged implements rmq.QueuesClient.ListPaged.
func (c *QueuesClient) ListPaged(ctx context.Context, params *rmq.QueryParams) (*rmq.Page[rmq.QueueInfo], error) {
	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, apiPath("queues"), queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing queues page: %w", err)
	}

	var page rmq.Page[rmq.QueueInfo]
	if err := decodeInto("queues page", resp.Body, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Get implements rmq.QueuesClient.Get.
func (c *QueuesClient) Get(ctx context.Context, vhost, name string) (*rmq.QueueInfo, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	if err := requireName("name", name); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("queues", vhost, name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting queue: %w", err)
	}

	var queue rmq.QueueInfo
	if err := decodeInto("queue", resp.Body, &queue); err != nil {
		return nil, err
	}

	return &queue, nil
}

// Declare implements rmq.QueuesClient.Declare.
func (c *QueuesClient) Declare(ctx context.Context, vhost, name string, settings rmq.QueueSettings) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("name", name); err != nil {
		return err
	}

	_, err := c.httpClient.Put(ctx, apiPath("queues", vhost, name), settings)
	if err != nil {
		return fmt.Errorf("declaring queue: %w", err)
	}

	return nil
}

// Delete implements rmq.QueuesClient.Delete.
func (c *QueuesClient) Delete(ctx context.Context, vhost, name string) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("name", name); err != nil {
		return err
	}

	_, err := c.httpClient.Delete(ctx, apiPath("queues", vhost, name))
	if err != nil {
		return fmt.Errorf("deleting queue: %w", err)
	}

	return nil
}

// Purge implements rmq.QueuesClient.Purge.
func (c *QueuesClient) Purge(ctx context.Context, vhost, name string) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("name", name); err != nil {
		return err
	}

	_, err := c.httpClient.Delete(ctx, apiPath("queues", vhost, name, "contents"))
	if err != nil {
		return fmt.Errorf("purging queue: %w", err)
	}

	return nil
}

// GetMessages implements rmq.QueuesClient.GetMessages.
func (c *QueuesClient) GetMessages(ctx context.Context, vhost, name string, opts rmq.GetMessagesOptions) ([]rmq.GetMessage, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	if err := requireName("name", name); err != nil {
		return nil, err
	}

	if opts.Count <= 0 {
		opts.Count = 1
	}

	if opts.AckMode == "" {
		opts.AckMode = "ack_requeue_true"
	}

	if opts.Encoding == "" {
		opts.Encoding = "auto"
	}

	resp, err := c.httpClient.Post(ctx, apiPath("queues", vhost, name, "get"), opts)
	if err != nil {
		return nil, fmt.Errorf("getting messages: %w", err)
	}

	var messages []rmq.GetMessage
	if err := decodeInto("messages", resp.Body, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}
