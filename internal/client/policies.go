package client

import (
	"context"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// PoliciesClient implements rmq.PoliciesClient for both regular and
// operator policies. The two endpoint families differ only in their path
// root.
type PoliciesClient struct {
	httpClient *http.Client
}

// NewPoliciesClient creates a new policies client.
func NewPoliciesClient(httpClient *http.Client) *PoliciesClient {
	return &PoliciesClient{
		httpClient: httpClient,
	}
}

// List implements rmq.PoliciesClient.List.
func (c *PoliciesClient) List(ctx context.Context) ([]rmq.Policy, error) {
	return c.list(ctx, "policies", apiPath("policies"))
}

// ListIn implements rmq.PoliciesClient.ListIn.
func (c *PoliciesClient) ListIn(ctx context.Context, vhost string) ([]rmq.Policy, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	return c.list(ctx, "policies", apiPath("policies", vhost))
}

// Get implements rmq.PoliciesClient.Get.
func (c *PoliciesClient) Get(ctx context.Context, vhost, name string) (*rmq.Policy, error) {
	return c.get(ctx, "policies", vhost, name)
}

// Declare implements rmq.PoliciesClient.Declare.
func (c *PoliciesClient) Declare(ctx context.Context, vhost, name string, settings rmq.PolicySettings) error {
	return c.declare(ctx, "policies", vhost, name, settings)
}

// Delete implements rmq.PoliciesClient.Delete.
func (c *PoliciesClient) Delete(ctx context.Context, vhost, name string) error {
	return c.delete(ctx, "policies", vhost, name)
}

// ListOperator implements rmq.PoliciesClient.ListOperator.
func (c *PoliciesClient) ListOperator(ctx context.Context) ([]rmq.Policy, error) {
	return c.list(ctx, "operator policies", apiPath("operator-policies"))
}

// GetOperator implements rmq.PoliciesClient.GetOperator.
func (c *PoliciesClient) GetOperator(ctx context.Context, vhost, name string) (*rmq.Policy, error) {
	return c.get(ctx, "operator-policies", vhost, name)
}

// DeclareOperator implements rmq.PoliciesClient.DeclareOperator.
func (c *PoliciesClient) DeclareOperator(ctx context.Context, vhost, name string, settings rmq.PolicySettings) error {
	return c.declare(ctx, "operator-policies", vhost, name, settings)
}

// DeleteOperator implements rmq.PoliciesClient.DeleteOperator.
func (c *PoliciesClient) DeleteOperator(ctx context.Context, vhost, name string) error {
	return c.delete(ctx, "operator-policies", vhost, name)
}

func (c *PoliciesClient) list(ctx context.Context, target, path string) ([]rmq.Policy, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", target, err)
	}

	var policies []rmq.Policy
	if err := decodeInto(target, resp.Body, &policies); err != nil {
		return nil, err
	}

	return policies, nil
}

func (c *PoliciesClient) get(ctx context.Context, root, vhost, name string) (*rmq.Policy, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	if err := requireName("name", name); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath(root, vhost, name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting policy: %w", err)
	}

	var policy rmq.Policy
	if err := decodeInto("policy", resp.Body, &policy); err != nil {
		return nil, err
	}

	return &policy, nil
}

func (c *PoliciesClient) declare(ctx context.Context, root, vhost, name string, settings rmq.PolicySettings) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("name", name); err != nil {
		return err
	}

	_, err := c.httpClient.Put(ctx, apiPath(root, vhost, name), settings)
	if err != nil {
		return fmt.Errorf("declaring policy: %w", err)
	}

	return nil
}

func (c *PoliciesClient) delete(ctx context.Context, root, vhost, name string) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("name", name); err != nil {
		return err
	}

	_, err := c.httpClient.Delete(ctx, apiPath(root, vhost, name))
	if err != nil {
		return fmt.Errorf("deleting policy: %w", err)
	}

	return nil
}
