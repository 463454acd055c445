package client

import (
	"context"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// VirtualHostsClient implements rmq.VirtualHostsClient.
type VirtualHostsClient struct {
	httpClient *http.Client
}

// NewVirtualHostsClient creates a new virtual hosts client.
func NewVirtualHostsClient(httpClient *http.Client) *VirtualHostsClient {
	return &VirtualHostsClient{
		httpClient: httpClient,
	}
}

// List implements rmq.VirtualHostsClient.List.
func (c *VirtualHostsClient) List(ctx context.Context) ([]rmq.VirtualHost, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("vhosts"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing virtual hosts: %w", err)
	}

	var vhosts []rmq.VirtualHost
	if err := decodeInto("virtual hosts", resp.Body, &vhosts); err != nil {
		return nil, err
	}

	return vhosts, nil
}

// Get implements rmq.VirtualHostsClient.Get.
func (c *VirtualHostsClient) Get(ctx context.Context, name string) (*rmq.VirtualHost, error) {
	if err := requireName("name", name); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("vhosts", name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting virtual host: %w", err)
	}

	var vhost rmq.VirtualHost
	if err := decodeInto("virtual host", resp.Body, &vhost); err != nil {
		return nil, err
	}

	return &vhost, nil
}

// Declare implements rmq.VirtualHostsClient.Declare.
func (c *VirtualHostsClient) Declare(ctx context.Context, name string, settings rmq.VirtualHostSettings) error {
	if err := requireName("name", name); err != nil {
		return err
	}

	_, err := c.httpClient.Put(ctx, apiPath("vhosts", name), settings)
	if err != nil {
		return fmt.Errorf("declaring virtual host: %w", err)
	}

	return nil
}

// Delete implements rmq.VirtualHostsClient.Delete.
func (c *VirtualHostsClient) Delete(ctx context.Context, name string) error {
	if err := requireName("name", name); err != nil {
		return err
	}

	_, err := c.httpClient.Delete(ctx, apiPath("vhosts", name))
	if err != nil {
		return fmt.Errorf("deleting virtual host: %w", err)
	}

	return nil
}

// ListLimits implements rmq.VirtualHostsClient.ListLimits.
func (c *VirtualHostsClient) ListLimits(ctx context.Context) ([]rmq.VirtualHostLimits, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("vhost-limits"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing virtual host limits: %w", err)
	}

	var limits []rmq.VirtualHostLimits
	if err := decodeInto("virtual host limits", resp.Body, &limits); err != nil {
		return nil, err
	}

	return limits, nil
}

// ListLimitsOf implements rmq.VirtualHostsClient.ListLimitsOf.
func (c *VirtualHostsClient) ListLimitsOf(ctx context.Context, vhost string) ([]rmq.VirtualHostLimits, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("vhost-limits", vhost), nil)
	if err != nil {
		return nil, fmt.Errorf("listing virtual host limits: %w", err)
	}

	var limits []rmq.VirtualHostLimits
	if err := decodeInto("virtual host limits", resp.Body, &limits); err != nil {
		return nil, err
	}

	return limits, nil
}

// SetLimit implements rmq.VirtualHostsClient.SetLimit.
func (c *VirtualHostsClient) SetLimit(ctx context.Context, vhost string, limit rmq.VirtualHostLimitTarget, value int64) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	path := apiPath("vhost-limits", vhost, string(limit))

	_, err := c.httpClient.Put(ctx, path, rmq.EnforcedLimit{Value: value})
	if err != nil {
		return fmt.Errorf("setting virtual host limit: %w", err)
	}

	return nil
}

// ClearLimit implements rmq.VirtualHostsClient.ClearLimit.
func (c *VirtualHostsClient) ClearLimit(ctx context.Context, vhost string, limit rmq.VirtualHostLimitTarget) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	_, err := c.httpClient.Delete(ctx, apiPath("vhost-limits", vhost, string(limit)))
	if err != nil {
		return fmt.Errorf("clearing virtual host limit: %w", err)
	}

	return nil
}
