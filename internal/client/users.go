package client

import (
	"context"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// UsersClient implements rmq.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// List implements rmq.UsersClient.List.
func (c *UsersClient) List(ctx context.Context) ([]rmq.User, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("users"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var users []rmq.User
	if err := decodeInto("users", resp.Body, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// Get implements rmq.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, name string) (*rmq.User, error) {
	if err := requireName("name", name); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("users", name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user rmq.User
	if err := decodeInto("user", resp.Body, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Declare implements rmq.UsersClient.Declare.
func (c *UsersClient) Declare(ctx context.Context, name string, settings rmq.UserSettings) error {
	if err := requireName("name", name); err != nil {
		return err
	}

	_, err := c.httpClient.Put(ctx, apiPath("users", name), settings)
	if err != nil {
		return fmt.Errorf("declaring user: %w", err)
	}

	return nil
}

// Delete implements rmq.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, name string) error {
	if err := requireName("name", name); err != nil {
		return err
	}

	_, err := c.httpClient.Delete(ctx, apiPath("users", name))
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

// WhoAmI implements rmq.UsersClient.WhoAmI.
func (c *UsersClient) WhoAmI(ctx context.Context) (*rmq.WhoAmI, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("whoami"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	var whoami rmq.WhoAmI
	if err := decodeInto("current user", resp.Body, &whoami); err != nil {
		return nil, err
	}

	return &whoami, nil
}

// ListLimits implements rmq.UsersClient.ListLimits.
func (c *UsersClient) ListLimits(ctx context.Context) ([]rmq.UserLimits, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("user-limits"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing user limits: %w", err)
	}

	var limits []rmq.UserLimits
	if err := decodeInto("user limits", resp.Body, &limits); err != nil {
		return nil, err
	}

	return limits, nil
}

// ListLimitsOf implements rmq.UsersClient.ListLimitsOf.
func (c *UsersClient) ListLimitsOf(ctx context.Context, username string) ([]rmq.UserLimits, error) {
	if err := requireName("username", username); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("user-limits", username), nil)
	if err != nil {
		return nil, fmt.Errorf("listing user limits: %w", err)
	}

	var limits []rmq.UserLimits
	if err := decodeInto("user limits", resp.Body, &limits); err != nil {
		return nil, err
	}

	return limits, nil
}

// SetLimit implements rmq.UsersClient.SetLimit.
func (c *UsersClient) SetLimit(ctx context.Context, username string, limit rmq.UserLimitTarget, value int64) error {
	if err := requireName("username", username); err != nil {
		return err
	}

	path := apiPath("user-limits", username, string(limit))

	_, err := c.httpClient.Put(ctx, path, rmq.EnforcedLimit{Value: value})
	if err != nil {
		return fmt.Errorf("setting user limit: %w", err)
	}

	return nil
}

// ClearLimit implements rmq.UsersClient.ClearLimit.
func (c *UsersClient) ClearLimit(ctx context.Context, username string, limit rmq.UserLimitTarget) error {
	if err := requireName("username", username); err != nil {
		return err
	}

	_, err := c.httpClient.Delete(ctx, apiPath("user-limits", username, string(limit)))
	if err != nil {
		return fmt.Errorf("clearing user limit: %w", err)
	}

	return nil
}
