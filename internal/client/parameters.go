package client

import (
	"context"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// RuntimeParametersClient implements rmq.RuntimeParametersClient.
type RuntimeParametersClient struct {
	httpClient *http.Client
}

// NewRuntimeParametersClient creates a new runtime parameters client.
func NewRuntimeParametersClient(httpClient *http.Client) *RuntimeParametersClient {
	return &RuntimeParametersClient{
		httpClient: httpClient,
	}
}

// List implements rmq.RuntimeParametersClient.List.
func (c *RuntimeParametersClient) List(ctx context.Context) ([]rmq.RuntimeParameter, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("parameters"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing runtime parameters: %w", err)
	}

	var params []rmq.RuntimeParameter
	if err := decodeInto("runtime parameters", resp.Body, &params); err != nil {
		return nil, err
	}

	return params, nil
}

// ListOf implements rmq.RuntimeParametersClient.ListOf.
func (c *RuntimeParametersClient) ListOf(ctx context.Context, component string) ([]rmq.RuntimeParameter, error) {
	if err := requireName("component", component); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("parameters", component), nil)
	if err != nil {
		return nil, fmt.Errorf("listing runtime parameters of component: %w", err)
	}

	var params []rmq.RuntimeParameter
	if err := decodeInto("runtime parameters", resp.Body, &params); err != nil {
		return nil, err
	}

	return params, nil
}

// Get implements rmq.RuntimeParametersClient.Get.
func (c *RuntimeParametersClient) Get(ctx context.Context, component, vhost, name string) (*rmq.RuntimeParameter, error) {
	if err := requireName("component", component); err != nil {
		return nil, err
	}

	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	if err := requireName("name", name); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("parameters", component, vhost, name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting runtime parameter: %w", err)
	}

	var param rmq.RuntimeParameter
	if err := decodeInto("runtime parameter", resp.Body, &param); err != nil {
		return nil, err
	}

	return &param, nil
}

// Upsert implements rmq.RuntimeParametersClient.Upsert.
func (c *RuntimeParametersClient) Upsert(ctx context.Context, param rmq.RuntimeParameter) error {
	if err := requireName("component", param.Component); err != nil {
		return err
	}

	if err := requireName("vhost", param.VirtualHost); err != nil {
		return err
	}

	if err := requireName("name", param.Name); err != nil {
		return err
	}

	path := apiPath("parameters", param.Component, param.VirtualHost, param.Name)

	_, err := c.httpClient.Put(ctx, path, param)
	if err != nil {
		return fmt.Errorf("upserting runtime parameter: %w", err)
	}

	return nil
}

// Clear implements rmq.RuntimeParametersClient.Clear.
func (c *RuntimeParametersClient) Clear(ctx context.Context, component, vhost, name string) error {
	if err := requireName("component", component); err != nil {
		return err
	}

	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("name", name); err != nil {
		return err
	}

	_, err := c.httpClient.Delete(ctx, apiPath("parameters", component, vhost, name))
	if err != nil {
		return fmt.Errorf("clearing runtime parameter: %w", err)
	}

	return nil
}
