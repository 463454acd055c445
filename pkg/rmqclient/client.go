package rmqclient

import (
	"fmt"
	"strings"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/client"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// New creates a new management API client.
func New(config *rmq.Config) (rmq.Client, error) {
	if config == nil {
		return nil, rmq.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, rmq.ErrEndpointRequired
	}

	// Work on a copy so the caller's Config is never mutated.
	normalized := *config
	normalized.Endpoint = normalizeEndpoint(config.Endpoint)

	rmqClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return rmqClient, nil
}

// NewWithEndpoint creates a client for the common endpoint/username/password
// case.
func NewWithEndpoint(endpoint, username, password string) (rmq.Client, error) {
	return New(&rmq.Config{
		Endpoint: endpoint,
		Username: username,
		Password: password,
	})
}

// NewAsync creates a future-returning client sharing the same transport
// and resource implementations as the blocking one.
func NewAsync(config *rmq.Config) (*client.AsyncClient, error) {
	if config == nil {
		return nil, rmq.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, rmq.ErrEndpointRequired
	}

	normalized := *config
	normalized.Endpoint = normalizeEndpoint(config.Endpoint)

	asyncClient, err := client.NewAsync(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new async client: %w", err)
	}

	return asyncClient, nil
}

// normalizeEndpoint brings user-supplied endpoints to the canonical base
// URL form: scheme included, no trailing slash, no "/api" suffix.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	endpoint = strings.TrimSuffix(endpoint, "/api")
	endpoint = strings.TrimSuffix(endpoint, "/")

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "http://" + endpoint
	}

	return endpoint
}
