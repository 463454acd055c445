package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// federationComponent is the runtime parameter component backing
// federation upstreams.
const federationComponent = "federation-upstream"

// FederationUpstreamsClient implements rmq.FederationUpstreamsClient on
// top of the runtime parameters client; upstreams have no endpoints of
// their own.
type FederationUpstreamsClient struct {
	parameters rmq.RuntimeParametersClient
}

// NewFederationUpstreamsClient creates a new federation upstreams client.
func NewFederationUpstreamsClient(parameters rmq.RuntimeParametersClient) *FederationUpstreamsClient {
	return &FederationUpstreamsClient{
		parameters: parameters,
	}
}

// List implements rmq.FederationUpstreamsClient.List.
func (c *FederationUpstreamsClient) List(ctx context.Context) ([]rmq.FederationUpstream, error) {
	params, err := c.parameters.ListOf(ctx, federationComponent)
	if err != nil {
		return nil, fmt.Errorf("listing federation upstreams: %w", err)
	}

	upstreams := make([]rmq.FederationUpstream, 0, len(params))

	for _, param := range params {
		upstream, err := upstreamFromParameter(param)
		if err != nil {
			return nil, err
		}

		upstreams = append(upstreams, *upstream)
	}

	return upstreams, nil
}

// Declare implements rmq.FederationUpstreamsClient.Declare.
func (c *FederationUpstreamsClient) Declare(ctx context.Context, vhost, name string, settings rmq.FederationUpstreamSettings) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("name", name); err != nil {
		return err
	}

	if settings.URI == "" {
		return &rmq.ValidationError{Field: "URI", Reason: "must not be empty"}
	}

	value, err := settingsAsParameterValue(settings)
	if err != nil {
		return fmt.Errorf("encoding federation upstream settings: %w", err)
	}

	err = c.parameters.Upsert(ctx, rmq.RuntimeParameter{
		Name:        name,
		VirtualHost: vhost,
		Component:   federationComponent,
		Value:       value,
	})
	if err != nil {
		return fmt.Errorf("declaring federation upstream: %w", err)
	}

	return nil
}

// Delete implements rmq.FederationUpstreamsClient.Delete.
func (c *FederationUpstreamsClient) Delete(ctx context.Context, vhost, name string) error {
	if err := c.parameters.Clear(ctx, federationComponent, vhost, name); err != nil {
		return fmt.Errorf("deleting federation upstream: %w", err)
	}

	return nil
}

// upstreamFromParameter flattens a backing runtime parameter into an
// upstream: identity from the parameter, settings from its value.
func upstreamFromParameter(param rmq.RuntimeParameter) (*rmq.FederationUpstream, error) {
	data, err := json.Marshal(param.Value)
	if err != nil {
		return nil, &rmq.DecodeError{Target: "federation upstream", Err: err}
	}

	var upstream rmq.FederationUpstream
	if err := json.Unmarshal(data, &upstream); err != nil {
		return nil, &rmq.DecodeError{Target: "federation upstream", Err: err}
	}

	upstream.Name = param.Name
	upstream.VirtualHost = param.VirtualHost

	return &upstream, nil
}
