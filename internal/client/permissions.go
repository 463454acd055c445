package client

import (
	"context"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// PermissionsClient implements rmq.PermissionsClient.
type PermissionsClient struct {
	httpClient *http.Client
}

// NewPermissionsClient creates a new permissions client.
func NewPermissionsClient(httpClient *http.Client) *PermissionsClient {
	return &PermissionsClient{
		httpClient: httpClient,
	}
}

// List implements rmq.PermissionsClient.List.
func (c *PermissionsClient) List(ctx context.Context) ([]rmq.Permissions, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("permissions"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing permissions: %w", err)
	}

	var permissions []rmq.Permissions
	if err := decodeInto("permissions", resp.Body, &permissions); err != nil {
		return nil, err
	}

	return permissions, nil
}

// ListIn implements rmq.PermissionsClient.ListIn.
func (c *PermissionsClient) ListIn(ctx context.Context, vhost string) ([]rmq.Permissions, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("vhosts", vhost, "permissions"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing permissions in vhost: %w", err)
	}

	var permissions []rmq.Permissions
	if err := decodeInto("permissions", resp.Body, &permissions); err != nil {
		return nil, err
	}

	return permissions, nil
}

// ListOf implements rmq.PermissionsClient.ListOf.
func (c *PermissionsClient) ListOf(ctx context.Context, username string) ([]rmq.Permissions, error) {
	if err := requireName("username", username); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("users", username, "permissions"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing permissions of user: %w", err)
	}

	var permissions []rmq.Permissions
	if err := decodeInto("permissions", resp.Body, &permissions); err != nil {
		return nil, err
	}

	return permissions, nil
}

// Get implements rmq.PermissionsClient.Get.
func (c *PermissionsClient) Get(ctx context.Context, vhost, username string) (*rmq.Permissions, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	if err := requireName("username", username); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("permissions", vhost, username), nil)
	if err != nil {
		return nil, fmt.Errorf("getting permissions: %w", err)
	}

	var permissions rmq.Permissions
	if err := decodeInto("permissions", resp.Body, &permissions); err != nil {
		return nil, err
	}

	return &permissions, nil
}

// Declare implements rmq.PermissionsClient.Declare.
func (c *PermissionsClient) Declare(ctx context.Context, vhost, username string, settings rmq.PermissionsSettings) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("username", username); err != nil {
		return err
	}

	_, err := c.httpClient.Put(ctx, apiPath("permissions", vhost, username), settings)
	if err != nil {
		return fmt.Errorf("declaring permissions: %w", err)
	}

	return nil
}

// Clear implements rmq.PermissionsClient.Clear.
func (c *PermissionsClient) Clear(ctx context.Context, vhost, username string) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("username", username); err != nil {
		return err
	}

	_, err := c.httpClient.Delete(ctx, apiPath("permissions", vhost, username))
	if err != nil {
		return fmt.Errorf("clearing permissions: %w", err)
	}

	return nil
}
