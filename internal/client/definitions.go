package client

import (
	"context"
	"fmt"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// DefinitionsClient implements rmq.DefinitionsClient.
type DefinitionsClient struct {
	httpClient *http.Client
}

// NewDefinitionsClient creates a new definitions client.
func NewDefinitionsClient(httpClient *http.Client) *DefinitionsClient {
	return &DefinitionsClient{
		httpClient: httpClient,
	}
}

// Export implements rmq.DefinitionsClient.Export.
func (c *DefinitionsClient) Export(ctx context.Context) (*rmq.DefinitionSet, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("definitions"), nil)
	if err != nil {
		return nil, fmt.Errorf("exporting definitions: %w", err)
	}

	var defs rmq.DefinitionSet
	if err := decodeInto("definitions", resp.Body, &defs); err != nil {
		return nil, err
	}

	return &defs, nil
}

// ExportVirtualHost implements rmq.DefinitionsClient.ExportVirtualHost.
func (c *DefinitionsClient) ExportVirtualHost(ctx context.Context, vhost string) (*rmq.DefinitionSet, error) {
	if err := requireName("vhost", vhost); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("definitions", vhost), nil)
	if err != nil {
		return nil, fmt.Errorf("exporting vhost definitions: %w", err)
	}

	var defs rmq.DefinitionSet
	if err := decodeInto("definitions", resp.Body, &defs); err != nil {
		return nil, err
	}

	return &defs, nil
}

// Import implements rmq.DefinitionsClient.Import.
func (c *DefinitionsClient) Import(ctx context.Context, defs *rmq.DefinitionSet) error {
	if defs == nil {
		return &rmq.ValidationError{Field: "definitions", Reason: "must not be nil"}
	}

	_, err := c.httpClient.Post(ctx, apiPath("definitions"), defs)
	if err != nil {
		return fmt.Errorf("importing definitions: %w", err)
	}

	return nil
}

// ImportIntoVirtualHost implements rmq.DefinitionsClient.ImportIntoVirtualHost.
func (c *DefinitionsClient) ImportIntoVirtualHost(ctx context.Context, vhost string, defs *rmq.DefinitionSet) error {
	if err := requireName("vhost", vhost); err != nil {
		return err
	}

	if defs == nil {
		return &rmq.ValidationError{Field: "definitions", Reason: "must not be nil"}
	}

	_, err := c.httpClient.Post(ctx, apiPath("definitions", vhost), defs)
	if err != nil {
		return fmt.Errorf("importing vhost definitions: %w", err)
	}

	return nil
}
