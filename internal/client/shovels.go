package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// shovelComponent is the runtime parameter component backing dynamic
// shovels.
const shovelComponent = "shovel"

// ShovelsClient implements rmq.ShovelsClient. Listing reads the shovel
// status endpoint; declaration and deletion go through the backing runtime
// parameter.
type ShovelsClient struct {
	httpClient *http.Client
	parameters rmq.RuntimeParametersClient
}

// NewShovelsClient creates a new shovels client.
func NewShovelsClient(httpClient *http.Client, parameters rmq.RuntimeParametersClient) *ShovelsClient {
	return &ShovelsClient{
		httpClient: httpClient,
		parameters: parameters,
	}
}

// List implements rmq.ShovelsClient.List.
func (c *ShovelsClient) List(ctx context.Context) ([]rmq.Shovel, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("shovels"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing shovels: %w", err)
	}

	var shovels []rmq.Shovel
	if err := decodeInto("shovels", resp.Body, &shovels); err != nil {
		return nil, err
	}

	return shovels, nil
}

// ListIn implements rmq.ShovelsClient.ListIn.
func (c *ShovelsClient) ListIn(ctx context.Context, vhost string) ([]rmq.Shovel, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("shovels", vhost), nil)
	if err != nil {
		return nil, fmt.Errorf("listing shovels in vhost: %w", err)
	}

	var shovels []rmq.Shovel
	if err := decodeInto("shovels", resp.Body, &shovels); err != nil {
		return nil, err
	}

	return shovels, nil
}

// Declare implements rmq.ShovelsClient.Declare.
func (c *ShovelsClient) Declare(ctx context.Context, vhost, name string, settings rmq.ShovelSettings) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("name", name); err != nil {
		return err
	}

	if settings.SourceURI == "" {
		return &rmq.ValidationError{Field: "source URI", Reason: "must not be empty"}
	}

	if settings.DestinationURI == "" {
		return &rmq.ValidationError{Field: "destination URI", Reason: "must not be empty"}
	}

	value, err := settingsAsParameterValue(settings)
	if err != nil {
		return fmt.Errorf("encoding shovel settings: %w", err)
	}

	err = c.parameters.Upsert(ctx, rmq.RuntimeParameter{
		Name:        name,
		VirtualHost: vhost,
		Component:   shovelComponent,
		Value:       value,
	})
	if err != nil {
		return fmt.Errorf("declaring shovel: %w", err)
	}

	return nil
}

// Delete implements rmq.ShovelsClient.Delete.
func (c *ShovelsClient) Delete(ctx context.Context, vhost, name string) error {
	if err := c.parameters.Clear(ctx, shovelComponent, vhost, name); err != nil {
		return fmt.Errorf("deleting shovel: %w", err)
	}

	return nil
}

// settingsAsParameterValue round-trips a settings struct through JSON into
// the loose map shape runtime parameter values use.
func settingsAsParameterValue(settings interface{}) (rmq.RuntimeParameterValue, error) {
	data, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}

	var value rmq.RuntimeParameterValue
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}

	return value, nil
}
