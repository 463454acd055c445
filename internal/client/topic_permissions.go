package client

import (
	"context"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// TopicPermissionsClient implements rmq.TopicPermissionsClient.
type TopicPermissionsClient struct {
	httpClient *http.Client
}

// NewTopicPermissionsClient creates a new topic permissions client.
func NewTopicPermissionsClient(httpClient *http.Client) *TopicPermissionsClient {
	return &TopicPermissionsClient{
		httpClient: httpClient,
	}
}

// List implements rmq.TopicPermissionsClient.List.
func (c *TopicPermissionsClient) List(ctx context.Context) ([]rmq.TopicPermissions, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("topic-permissions"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing topic permissions: %w", err)
	}

	var permissions []rmq.TopicPermissions
	if err := decodeInto("topic permissions", resp.Body, &permissions); err != nil {
		return nil, err
	}

	return permissions, nil
}

// ListIn implements rmq.TopicPermissionsClient.ListIn.
func (c *TopicPermissionsClient) ListIn(ctx context.Context, vhost string) ([]rmq.TopicPermissions, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("vhosts", vhost, "topic-permissions"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing topic permissions in vhost: %w", err)
	}

	var permissions []rmq.TopicPermissions
	if err := decodeInto("topic permissions", resp.Body, &permissions); err != nil {
		return nil, err
	}

	return permissions, nil
}

// ListOf implements rmq.TopicPermissionsClient.ListOf.
func (c *TopicPermissionsClient) ListOf(ctx context.Context, username string) ([]rmq.TopicPermissions, error) {
	if err := requireName("username", username); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("users", username, "topic-permissions"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing topic permissions of user: %w", err)
	}

	var permissions []rmq.TopicPermissions
	if err := decodeInto("topic permissions", resp.Body, &permissions); err != nil {
		return nil, err
	}

	return permissions, nil
}

// Declare implements rmq.TopicPermissionsClient.Declare.
func (c *TopicPermissionsClient) Declare(ctx context.Context, vhost, username string, settings rmq.TopicPermissionsSettings) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("username", username); err != nil {
		return err
	}

	_, err := c.httpClient.Put(ctx, apiPath("topic-permissions", vhost, username), settings)
	if err != nil {
		return fmt.Errorf("declaring topic permissions: %w", err)
	}

	return nil
}

// Clear implements rmq.TopicPermissionsClient.Clear.
func (c *TopicPermissionsClient) Clear(ctx context.Context, vhost, username string) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if err := requireName("username", username); err != nil {
		return err
	}

	_, err := c.httpClient.Delete(ctx, apiPath("topic-permissions", vhost, username))
	if err != nil {
		return fmt.Errorf("clearing topic permissions: %w", err)
	}

	return nil
}
