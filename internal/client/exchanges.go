package client

import (
	"context"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// ExchangesClient implements rmq.ExchangesClient.
type ExchangesClient struct {
	httpClient *http.Client
}

// NewExchangesClient creates a new exchanges client.
func NewExchangesClient(httpClient *http.Client) *ExchangesClient {
	return &ExchangesClient{
		httpClient: httpClient,
	}
}

// List implements rmq.ExchangesClient.List.
func (c *ExchangesClient) List(ctx context.Context) ([]rmq.ExchangeInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("exchanges"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing exchanges: %w", err)
	}

	var exchanges []rmq.ExchangeInfo
	if err := decodeInto("exchanges", resp.Body, &exchanges); err != nil {
		return nil, err
	}

	return exchanges, nil
}

// ListIn implements rmq.ExchangesClient.ListIn.
func (c *ExchangesClient) ListIn(ctx context.Context, vhost string) ([]rmq.ExchangeInfo, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("exchanges", vhost), nil)
	if err != nil {
		return nil, fmt.Errorf("listing exchanges in vhost: %w", err)
	}

	var exchanges []rmq.ExchangeInfo
	if err := decodeInto("exchanges", resp.Body, &exchanges); err != nil {
		return nil, err
	}

	return exchanges, nil
}

// Get implements rmq.ExchangesClient.Get.
func (c *ExchangesClient) Get(ctx context.Context, vhost, name string) (*rmq.ExchangeInfo, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	if err := requireName("name", name); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("exchanges", vhost, name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting exchange: %w", err)
	}

	var exchange rmq.ExchangeInfo
	if err := decodeInto("exchange", resp.Body, &exchange); err != nil {
		return nil, err
	}

	return &exchange, nil
}

// Declare implements rmq.ExchangesClient.Declare.
func (c *ExchangesClient) Declare(ctx context.Context, vhost, name string, settings rmq.ExchangeSettings) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("name", name); err != nil {
		return err
	}

	_, err := c.httpClient.Put(ctx, apiPath("exchanges", vhost, name), settings)
	if err != nil {
		return fmt.Errorf("declaring exchange: %w", err)
	}

	return nil
}

// Delete implements rmq.ExchangesClient.Delete.
func (c *ExchangesClient) Delete(ctx context.Context, vhost, name string) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("name", name); err != nil {
		return err
	}

	_, err := c.httpClient.Delete(ctx, apiPath("exchanges", vhost, name))
	if err != nil {
		return fmt.Errorf("deleting exchange: %w", err)
	}

	return nil
}

// Publish implements rmq.ExchangesClient.Publish.
func (c *ExchangesClient) Publish(ctx context.Context, vhost, name string, opts rmq.PublishOptions) (*rmq.MessageRouted, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	if err := requireName("name", name); err != nil {
		return nil, err
	}

	if opts.Properties == nil {
		opts.Properties = rmq.MessageProperties{}
	}

	if opts.PayloadEncoding == "" {
		opts.PayloadEncoding = "string"
	}

	resp, err := c.httpClient.Post(ctx, apiPath("exchanges", vhost, name, "publish"), opts)
	if err != nil {
		return nil, fmt.Errorf("publishing message: %w", err)
	}

	var routed rmq.MessageRouted
	if err := decodeInto("publish result", resp.Body, &routed); err != nil {
		return nil, err
	}

	return &routed, nil
}
