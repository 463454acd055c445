// Package client implements the rmq.Client interface on top of the
// internal HTTP transport.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// Client implements the rmq.Client interface.
type Client struct {
	httpClient *http.Client
	logger     rmq.Logger

	// Resource clients
	virtualHosts        rmq.VirtualHostsClient
	users               rmq.UsersClient
	permissions         rmq.PermissionsClient
	topicPermissions    rmq.TopicPermissionsClient
	queues              rmq.QueuesClient
	exchanges           rmq.ExchangesClient
	bindings            rmq.BindingsClient
	policies            rmq.PoliciesClient
	parameters          rmq.RuntimeParametersClient
	shovels             rmq.ShovelsClient
	federationUpstreams rmq.FederationUpstreamsClient
	connections         rmq.ConnectionsClient
	channels            rmq.ChannelsClient
	consumers           rmq.ConsumersClient
	nodes               rmq.NodesClient
	definitions         rmq.DefinitionsClient
	health              rmq.HealthClient
}

// New creates a client from a config whose Endpoint is already normalized
// (scheme present, no trailing slash, no "/api" suffix).
func New(config *rmq.Config) (*Client, error) {
	if config == nil {
		return nil, rmq.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, rmq.ErrEndpointRequired
	}

	var auth *http.BasicAuth
	if config.Username != "" || config.Password != "" {
		auth = &http.BasicAuth{
			Username: config.Username,
			Password: config.Password,
		}
	}

	opts := []http.Option{}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.SkipTLSVerify && devModeEnabled() {
		opts = append(opts, http.WithInsecureTLS())
	}

	httpClient := http.NewClient(config.Endpoint, auth, opts...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}

	client.virtualHosts = NewVirtualHostsClient(httpClient)
	client.users = NewUsersClient(httpClient)
	client.permissions = NewPermissionsClient(httpClient)
	client.topicPermissions = NewTopicPermissionsClient(httpClient)
	client.queues = NewQueuesClient(httpClient)
	client.exchanges = NewExchangesClient(httpClient)
	client.bindings = NewBindingsClient(httpClient)
	client.policies = NewPoliciesClient(httpClient)
	client.parameters = NewRuntimeParametersClient(httpClient)
	client.shovels = NewShovelsClient(httpClient, client.parameters)
	client.federationUpstreams = NewFederationUpstreamsClient(client.parameters)
	client.connections = NewConnectionsClient(httpClient)
	client.channels = NewChannelsClient(httpClient)
	client.consumers = NewConsumersClient(httpClient)
	client.nodes = NewNodesClient(httpClient)
	client.definitions = NewDefinitionsClient(httpClient)
	client.health = NewHealthClient(httpClient)

	return client, nil
}

// devModeEnabled reports whether RMQ_DEV_MODE allows relaxed TLS checks.
func devModeEnabled() bool {
	value := os.Getenv("RMQ_DEV_MODE")

	return value == "true" || value == "1"
}

// VirtualHosts implements rmq.TopologyClients.VirtualHosts.
func (c *Client) VirtualHosts() rmq.VirtualHostsClient { return c.virtualHosts }

// Queues implements rmq.TopologyClients.Queues.
func (c *Client) Queues() rmq.QueuesClient { return c.queues }

// Exchanges implements rmq.TopologyClients.Exchanges.
func (c *Client) Exchanges() rmq.ExchangesClient { return c.exchanges }

// Bindings implements rmq.TopologyClients.Bindings.
func (c *Client) Bindings() rmq.BindingsClient { return c.bindings }

// Users implements rmq.AccessClients.Users.
func (c *Client) Users() rmq.UsersClient { return c.users }

// Permissions implements rmq.AccessClients.Permissions.
func (c *Client) Permissions() rmq.PermissionsClient { return c.permissions }

// TopicPermissions implements rmq.AccessClients.TopicPermissions.
func (c *Client) TopicPermissions() rmq.TopicPermissionsClient { return c.topicPermissions }

// Policies implements rmq.PolicyClients.Policies.
func (c *Client) Policies() rmq.PoliciesClient { return c.policies }

// Parameters implements rmq.PolicyClients.Parameters.
func (c *Client) Parameters() rmq.RuntimeParametersClient { return c.parameters }

// Shovels implements rmq.PolicyClients.Shovels.
func (c *Client) Shovels() rmq.ShovelsClient { return c.shovels }

// FederationUpstreams implements rmq.PolicyClients.FederationUpstreams.
func (c *Client) FederationUpstreams() rmq.FederationUpstreamsClient { return c.federationUpstreams }

// Connections implements rmq.RuntimeClients.Connections.
func (c *Client) Connections() rmq.ConnectionsClient { return c.connections }

// Channels implements rmq.RuntimeClients.Channels.
func (c *Client) Channels() rmq.ChannelsClient { return c.channels }

// Consumers implements rmq.RuntimeClients.Consumers.
func (c *Client) Consumers() rmq.ConsumersClient { return c.consumers }

// Nodes implements rmq.RuntimeClients.Nodes.
func (c *Client) Nodes() rmq.NodesClient { return c.nodes }

// Definitions implements rmq.ClusterClients.Definitions.
func (c *Client) Definitions() rmq.DefinitionsClient { return c.definitions }

// Health implements rmq.ClusterClients.Health.
func (c *Client) Health() rmq.HealthClient { return c.health }

// Overview implements rmq.ClusterClients.Overview.
func (c *Client) Overview(ctx context.Context) (*rmq.Overview, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("overview"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting overview: %w", err)
	}

	var overview rmq.Overview
	if err := decodeInto("overview", resp.Body, &overview); err != nil {
		return nil, err
	}

	return &overview, nil
}

// ClusterName implements rmq.ClusterClients.ClusterName.
func (c *Client) ClusterName(ctx context.Context) (*rmq.ClusterIdentity, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("cluster-name"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting cluster name: %w", err)
	}

	var identity rmq.ClusterIdentity
	if err := decodeInto("cluster name", resp.Body, &identity); err != nil {
		return nil, err
	}

	return &identity, nil
}

// SetClusterName implements rmq.ClusterClients.SetClusterName.
func (c *Client) SetClusterName(ctx context.Context, name string) error {
	if err := requireName("name", name); err != nil {
		return err
	}

	_, err := c.httpClient.Put(ctx, apiPath("cluster-name"), rmq.ClusterIdentity{Name: name})
	if err != nil {
		return fmt.Errorf("setting cluster name: %w", err)
	}

	return nil
}

// apiPath joins path segments under "/api", percent-encoding each segment.
// The default vhost "/" becomes "%2F".
func apiPath(segments ...string) string {
	path := "/api"
	for _, segment := range segments {
		path += "/" + url.PathEscape(segment)
	}

	return path
}

// decodeInto unmarshals a response body, wrapping failures as DecodeError
// so callers can distinguish malformed payloads from broker refusals.
func decodeInto(target string, body []byte, value interface{}) error {
	if err := json.Unmarshal(body, value); err != nil {
		return &rmq.DecodeError{Target: target, Err: err}
	}

	return nil
}

// requireName rejects empty identifiers before they reach the wire, where
// they would silently change the URL shape.
func requireName(field, value string) error {
	if value == "" {
		return &rmq.ValidationError{Field: field, Reason: "must not be empty"}
	}

	return nil
}
