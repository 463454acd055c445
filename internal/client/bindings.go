package client

import (
	"context"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// BindingsClient implements rmq.BindingsClient.
type BindingsClient struct {
	httpClient *http.Client
}

// NewBindingsClient creates a new bindings client.
func NewBindingsClient(httpClient *http.Client) *BindingsClient {
	return &BindingsClient{
		httpClient: httpClient,
	}
}

// List implements rmq.BindingsClient.List.
func (c *BindingsClient) List(ctx context.Context) ([]rmq.BindingInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("bindings"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing bindings: %w", err)
	}

	var bindings []rmq.BindingInfo
	if err := decodeInto("bindings", resp.Body, &bindings); err != nil {
		return nil, err
	}

	return bindings, nil
}

// ListIn implements rmq.BindingsClient.ListIn.
func (c *BindingsClient) ListIn(ctx context.Context, vhost string) ([]rmq.BindingInfo, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("bindings", vhost), nil)
	if err != nil {
		return nil, fmt.Errorf("listing bindings in vhost: %w", err)
	}

	var bindings []rmq.BindingInfo
	if err := decodeInto("bindings", resp.Body, &bindings); err != nil {
		return nil, err
	}

	return bindings, nil
}

// ListForQueue implements rmq.BindingsClient.ListForQueue.
func (c *BindingsClient) ListForQueue(ctx context.Context, vhost, queue string) ([]rmq.BindingInfo, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	if err := requireName("queue", queue); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("queues", vhost, queue, "bindings"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing queue bindings: %w", err)
	}

	var bindings []rmq.BindingInfo
	if err := decodeInto("bindings", resp.Body, &bindings); err != nil {
		return nil, err
	}

	return bindings, nil
}

// ListWithSource implements rmq.BindingsClient.ListWithSource.
func (c *BindingsClient) ListWithSource(ctx context.Context, vhost, exchange string) ([]rmq.BindingInfo, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	if err := requireName("exchange", exchange); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("exchanges", vhost, exchange, "bindings", "source"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing bindings with source: %w", err)
	}

	var bindings []rmq.BindingInfo
	if err := decodeInto("bindings", resp.Body, &bindings); err != nil {
		return nil, err
	}

	return bindings, nil
}

// ListWithDestination implements rmq.BindingsClient.ListWithDestination.
func (c *BindingsClient) ListWithDestination(ctx context.Context, vhost string, destType rmq.BindingDestinationType, destination string) ([]rmq.BindingInfo, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	if err := requireName("destination", destination); err != nil {
		return nil, err
	}

	// Exchange destinations list their inbound bindings under
	// "bindings/destination"; queues list all of theirs under "bindings".
	var path string
	if destType == rmq.BindingDestinationQueue {
		path = apiPath("queues", vhost, destination, "bindings")
	} else {
		path = apiPath("exchanges", vhost, destination, "bindings", "destination")
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing bindings with destination: %w", err)
	}

	var bindings []rmq.BindingInfo
	if err := decodeInto("bindings", resp.Body, &bindings); err != nil {
		return nil, err
	}

	return bindings, nil
}

// Declare implements rmq.BindingsClient.Declare.
func (c *BindingsClient) Declare(ctx context.Context, vhost, source string, destType rmq.BindingDestinationType, destination string, settings rmq.BindingSettings) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("source", source); err != nil {
		return err
	}

	if err := requireName("destination", destination); err != nil {
		return err
	}

	if !destType.IsKnown() {
		return &rmq.ValidationError{Field: "destination type", Reason: "must be queue or exchange"}
	}

	path := apiPath("bindings", vhost, "e", source, destType.PathAbbreviation(), destination)

	_, err := c.httpClient.Post(ctx, path, settings)
	if err != nil {
		return fmt.Errorf("declaring binding: %w", err)
	}

	return nil
}

// Delete implements rmq.BindingsClient.Delete.
func (c *BindingsClient) Delete(ctx context.Context, vhost, source string, destType rmq.BindingDestinationType, destination, propertiesKey string) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("source", source); err != nil {
		return err
	}

	if err := requireName("destination", destination); err != nil {
		return err
	}

	if !destType.IsKnown() {
		return &rmq.ValidationError{Field: "destination type", Reason: "must be queue or exchange"}
	}

	// The broker treats "~" as the properties key of a binding with no
	// routing key and no arguments.
	if propertiesKey == "" {
		propertiesKey = "~"
	}

	path := apiPath("bindings", vhost, "e", source, destType.PathAbbreviation(), destination, propertiesKey)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting binding: %w", err)
	}

	return nil
}
