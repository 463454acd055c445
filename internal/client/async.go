package client

import (
	"context"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// AsyncClient is the future-returning façade over a blocking Client. Every
// operation starts a goroutine and returns a future; the same request
// building, decoding, and error classification run underneath.
type AsyncClient struct {
	inner rmq.Client
}

// NewAsyncFrom wraps an existing blocking client.
func NewAsyncFrom(inner rmq.Client) *AsyncClient {
	return &AsyncClient{inner: inner}
}

// NewAsync creates an async client from a config.
func NewAsync(config *rmq.Config) (*AsyncClient, error) {
	inner, err := New(config)
	if err != nil {
		return nil, err
	}

	return NewAsyncFrom(inner), nil
}

// Blocking exposes the wrapped client for callers mixing the two styles.
func (c *AsyncClient) Blocking() rmq.Client { return c.inner }

// VirtualHosts returns the async virtual hosts client.
func (c *AsyncClient) VirtualHosts() *AsyncVirtualHostsClient {
	return &AsyncVirtualHostsClient{inner: c.inner.VirtualHosts()}
}

// Users returns the async users client.
func (c *AsyncClient) Users() *AsyncUsersClient {
	return &AsyncUsersClient{inner: c.inner.Users()}
}

// Permissions returns the async permissions client.
func (c *AsyncClient) Permissions() *AsyncPermissionsClient {
	return &AsyncPermissionsClient{inner: c.inner.Permissions()}
}

// TopicPermissions returns the async topic permissions client.
func (c *AsyncClient) TopicPermissions() *AsyncTopicPermissionsClient {
	return &AsyncTopicPermissionsClient{inner: c.inner.TopicPermissions()}
}

// Queues returns the async queues client.
func (c *AsyncClient) Queues() *AsyncQueuesClient {
	return &AsyncQueuesClient{inner: c.inner.Queues()}
}

// Exchanges returns the async exchanges client.
func (c *AsyncClient) Exchanges() *AsyncExchangesClient {
	return &AsyncExchangesClient{inner: c.inner.Exchanges()}
}

// Bindings returns the async bindings client.
func (c *AsyncClient) Bindings() *AsyncBindingsClient {
	return &AsyncBindingsClient{inner: c.inner.Bindings()}
}

// Policies returns the async policies client.
func (c *AsyncClient) Policies() *AsyncPoliciesClient {
	return &AsyncPoliciesClient{inner: c.inner.Policies()}
}

// Parameters returns the async runtime parameters client.
func (c *AsyncClient) Parameters() *AsyncRuntimeParametersClient {
	return &AsyncRuntimeParametersClient{inner: c.inner.Parameters()}
}

// Shovels returns the async shovels client.
func (c *AsyncClient) Shovels() *AsyncShovelsClient {
	return &AsyncShovelsClient{inner: c.inner.Shovels()}
}

// FederationUpstreams returns the async federation upstreams client.
func (c *AsyncClient) FederationUpstreams() *AsyncFederationUpstreamsClient {
	return &AsyncFederationUpstreamsClient{inner: c.inner.FederationUpstreams()}
}

// Connections returns the async connections client.
func (c *AsyncClient) Connections() *AsyncConnectionsClient {
	return &AsyncConnectionsClient{inner: c.inner.Connections()}
}

// Channels returns the async channels client.
func (c *AsyncClient) Channels() *AsyncChannelsClient {
	return &AsyncChannelsClient{inner: c.inner.Channels()}
}

// Consumers returns the async consumers client.
func (c *AsyncClient) Consumers() *AsyncConsumersClient {
	return &AsyncConsumersClient{inner: c.inner.Consumers()}
}

// Nodes returns the async nodes client.
func (c *AsyncClient) Nodes() *AsyncNodesClient {
	return &AsyncNodesClient{inner: c.inner.Nodes()}
}

// Definitions returns the async definitions client.
func (c *AsyncClient) Definitions() *AsyncDefinitionsClient {
	return &AsyncDefinitionsClient{inner: c.inner.Definitions()}
}

// Health returns the async health client.
func (c *AsyncClient) Health() *AsyncHealthClient {
	return &AsyncHealthClient{inner: c.inner.Health()}
}

// Overview mirrors rmq.ClusterClients.Overview.
func (c *AsyncClient) Overview(ctx context.Context) *rmq.Future[*rmq.Overview] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.Overview, error) {
		return c.inner.Overview(ctx)
	})
}

// ClusterName mirrors rmq.ClusterClients.ClusterName.
func (c *AsyncClient) ClusterName(ctx context.Context) *rmq.Future[*rmq.ClusterIdentity] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.ClusterIdentity, error) {
		return c.inner.ClusterName(ctx)
	})
}

// SetClusterName mirrors rmq.ClusterClients.SetClusterName.
func (c *AsyncClient) SetClusterName(ctx context.Context, name string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.SetClusterName(ctx, name)
	})
}

// AsyncVirtualHostsClient mirrors rmq.VirtualHostsClient.
type AsyncVirtualHostsClient struct {
	inner rmq.VirtualHostsClient
}

func (c *AsyncVirtualHostsClient) List(ctx context.Context) *rmq.Future[[]rmq.VirtualHost] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.VirtualHost, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncVirtualHostsClient) Get(ctx context.Context, name string) *rmq.Future[*rmq.VirtualHost] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.VirtualHost, error) {
		return c.inner.Get(ctx, name)
	})
}

func (c *AsyncVirtualHostsClient) Declare(ctx context.Context, name string, settings rmq.VirtualHostSettings) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Declare(ctx, name, settings)
	})
}

func (c *AsyncVirtualHostsClient) Delete(ctx context.Context, name string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Delete(ctx, name)
	})
}

func (c *AsyncVirtualHostsClient) ListLimits(ctx context.Context) *rmq.Future[[]rmq.VirtualHostLimits] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.VirtualHostLimits, error) {
		return c.inner.ListLimits(ctx)
	})
}

func (c *AsyncVirtualHostsClient) ListLimitsOf(ctx context.Context, vhost string) *rmq.Future[[]rmq.VirtualHostLimits] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.VirtualHostLimits, error) {
		return c.inner.ListLimitsOf(ctx, vhost)
	})
}

func (c *AsyncVirtualHostsClient) SetLimit(ctx context.Context, vhost string, limit rmq.VirtualHostLimitTarget, value int64) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.SetLimit(ctx, vhost, limit, value)
	})
}

func (c *AsyncVirtualHostsClient) ClearLimit(ctx context.Context, vhost string, limit rmq.VirtualHostLimitTarget) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.ClearLimit(ctx, vhost, limit)
	})
}

// AsyncUsersClient mirrors rmq.UsersClient.
type AsyncUsersClient struct {
	inner rmq.UsersClient
}

func (c *AsyncUsersClient) List(ctx context.Context) *rmq.Future[[]rmq.User] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.User, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncUsersClient) Get(ctx context.Context, name string) *rmq.Future[*rmq.User] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.User, error) {
		return c.inner.Get(ctx, name)
	})
}

func (c *AsyncUsersClient) Declare(ctx context.Context, name string, settings rmq.UserSettings) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Declare(ctx, name, settings)
	})
}

func (c *AsyncUsersClient) Delete(ctx context.Context, name string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Delete(ctx, name)
	})
}

func (c *AsyncUsersClient) WhoAmI(ctx context.Context) *rmq.Future[*rmq.WhoAmI] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.WhoAmI, error) {
		return c.inner.WhoAmI(ctx)
	})
}

func (c *AsyncUsersClient) ListLimits(ctx context.Context) *rmq.Future[[]rmq.UserLimits] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.UserLimits, error) {
		return c.inner.ListLimits(ctx)
	})
}

func (c *AsyncUsersClient) ListLimitsOf(ctx context.Context, username string) *rmq.Future[[]rmq.UserLimits] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.UserLimits, error) {
		return c.inner.ListLimitsOf(ctx, username)
	})
}

func (c *AsyncUsersClient) SetLimit(ctx context.Context, username string, limit rmq.UserLimitTarget, value int64) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.SetLimit(ctx, username, limit, value)
	})
}

func (c *AsyncUsersClient) ClearLimit(ctx context.Context, username string, limit rmq.UserLimitTarget) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.ClearLimit(ctx, username, limit)
	})
}

// AsyncPermissionsClient mirrors rmq.PermissionsClient.
type AsyncPermissionsClient struct {
	inner rmq.PermissionsClient
}

func (c *AsyncPermissionsClient) List(ctx context.Context) *rmq.Future[[]rmq.Permissions] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.Permissions, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncPermissionsClient) ListIn(ctx context.Context, vhost string) *rmq.Future[[]rmq.Permissions] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.Permissions, error) {
		return c.inner.ListIn(ctx, vhost)
	})
}

func (c *AsyncPermissionsClient) ListOf(ctx context.Context, username string) *rmq.Future[[]rmq.Permissions] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.Permissions, error) {
		return c.inner.ListOf(ctx, username)
	})
}

func (c *AsyncPermissionsClient) Get(ctx context.Context, vhost, username string) *rmq.Future[*rmq.Permissions] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.Permissions, error) {
		return c.inner.Get(ctx, vhost, username)
	})
}

func (c *AsyncPermissionsClient) Declare(ctx context.Context, vhost, username string, settings rmq.PermissionsSettings) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Declare(ctx, vhost, username, settings)
	})
}

func (c *AsyncPermissionsClient) Clear(ctx context.Context, vhost, username string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Clear(ctx, vhost, username)
	})
}

// AsyncTopicPermissionsClient mirrors rmq.TopicPermissionsClient.
type AsyncTopicPermissionsClient struct {
	inner rmq.TopicPermissionsClient
}

func (c *AsyncTopicPermissionsClient) List(ctx context.Context) *rmq.Future[[]rmq.TopicPermissions] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.TopicPermissions, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncTopicPermissionsClient) ListIn(ctx context.Context, vhost string) *rmq.Future[[]rmq.TopicPermissions] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.TopicPermissions, error) {
		return c.inner.ListIn(ctx, vhost)
	})
}

func (c *AsyncTopicPermissionsClient) ListOf(ctx context.Context, username string) *rmq.Future[[]rmq.TopicPermissions] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.TopicPermissions, error) {
		return c.inner.ListOf(ctx, username)
	})
}

func (c *AsyncTopicPermissionsClient) Declare(ctx context.Context, vhost, username string, settings rmq.TopicPermissionsSettings) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Declare(ctx, vhost, username, settings)
	})
}

func (c *AsyncTopicPermissionsClient) Clear(ctx context.Context, vhost, username string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Clear(ctx, vhost, username)
	})
}

// AsyncQueuesClient mirrors rmq.QueuesClient.
type AsyncQueuesClient struct {
	inner rmq.QueuesClient
}

func (c *AsyncQueuesClient) List(ctx context.Context) *rmq.Future[[]rmq.QueueInfo] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.QueueInfo, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncQueuesClient) ListIn(ctx context.Context, vhost string) *rmq.Future[[]rmq.QueueInfo] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.QueueInfo, error) {
		return c.inner.ListIn(ctx, vhost)
	})
}

func (c *AsyncQueuesClient) ListPaged(ctx context.Context, params *rmq.QueryParams) *rmq.Future[*rmq.Page[rmq.QueueInfo]] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.Page[rmq.QueueInfo], error) {
		return c.inner.ListPaged(ctx, params)
	})
}

func (c *AsyncQueuesClient) Get(ctx context.Context, vhost, name string) *rmq.Future[*rmq.QueueInfo] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.QueueInfo, error) {
		return c.inner.Get(ctx, vhost, name)
	})
}

func (c *AsyncQueuesClient) Declare(ctx context.Context, vhost, name string, settings rmq.QueueSettings) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Declare(ctx, vhost, name, settings)
	})
}

func (c *AsyncQueuesClient) Delete(ctx context.Context, vhost, name string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Delete(ctx, vhost, name)
	})
}

func (c *AsyncQueuesClient) Purge(ctx context.Context, vhost, name string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Purge(ctx, vhost, name)
	})
}

func (c *AsyncQueuesClient) GetMessages(ctx context.Context, vhost, name string, opts rmq.GetMessagesOptions) *rmq.Future[[]rmq.GetMessage] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.GetMessage, error) {
		return c.inner.GetMessages(ctx, vhost, name, opts)
	})
}

// AsyncExchangesClient mirrors rmq.ExchangesClient.
type AsyncExchangesClient struct {
	inner rmq.ExchangesClient
}

func (c *AsyncExchangesClient) List(ctx context.Context) *rmq.Future[[]rmq.ExchangeInfo] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.ExchangeInfo, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncExchangesClient) ListIn(ctx context.Context, vhost string) *rmq.Future[[]rmq.ExchangeInfo] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.ExchangeInfo, error) {
		return c.inner.ListIn(ctx, vhost)
	})
}

func (c *AsyncExchangesClient) Get(ctx context.Context, vhost, name string) *rmq.Future[*rmq.ExchangeInfo] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.ExchangeInfo, error) {
		return c.inner.Get(ctx, vhost, name)
	})
}

func (c *AsyncExchangesClient) Declare(ctx context.Context, vhost, name string, settings rmq.ExchangeSettings) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Declare(ctx, vhost, name, settings)
	})
}

func (c *AsyncExchangesClient) Delete(ctx context.Context, vhost, name string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Delete(ctx, vhost, name)
	})
}

func (c *AsyncExchangesClient) Publish(ctx context.Context, vhost, name string, opts rmq.PublishOptions) *rmq.Future[*rmq.MessageRouted] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.MessageRouted, error) {
		return c.inner.Publish(ctx, vhost, name, opts)
	})
}

// AsyncBindingsClient mirrors rmq.BindingsClient.
type AsyncBindingsClient struct {
	inner rmq.BindingsClient
}

func (c *AsyncBindingsClient) List(ctx context.Context) *rmq.Future[[]rmq.BindingInfo] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.BindingInfo, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncBindingsClient) ListIn(ctx context.Context, vhost string) *rmq.Future[[]rmq.BindingInfo] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.BindingInfo, error) {
		return c.inner.ListIn(ctx, vhost)
	})
}

func (c *AsyncBindingsClient) ListForQueue(ctx context.Context, vhost, queue string) *rmq.Future[[]rmq.BindingInfo] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.BindingInfo, error) {
		return c.inner.ListForQueue(ctx, vhost, queue)
	})
}

func (c *AsyncBindingsClient) ListWithSource(ctx context.Context, vhost, exchange string) *rmq.Future[[]rmq.BindingInfo] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.BindingInfo, error) {
		return c.inner.ListWithSource(ctx, vhost, exchange)
	})
}

func (c *AsyncBindingsClient) ListWithDestination(ctx context.Context, vhost string, destType rmq.BindingDestinationType, destination string) *rmq.Future[[]rmq.BindingInfo] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.BindingInfo, error) {
		return c.inner.ListWithDestination(ctx, vhost, destType, destination)
	})
}

func (c *AsyncBindingsClient) Declare(ctx context.Context, vhost, source string, destType rmq.BindingDestinationType, destination string, settings rmq.BindingSettings) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Declare(ctx, vhost, source, destType, destination, settings)
	})
}

func (c *AsyncBindingsClient) Delete(ctx context.Context, vhost, source string, destType rmq.BindingDestinationType, destination, propertiesKey string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Delete(ctx, vhost, source, destType, destination, propertiesKey)
	})
}

// AsyncPoliciesClient mirrors rmq.PoliciesClient.
type AsyncPoliciesClient struct {
	inner rmq.PoliciesClient
}

func (c *AsyncPoliciesClient) List(ctx context.Context) *rmq.Future[[]rmq.Policy] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.Policy, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncPoliciesClient) ListIn(ctx context.Context, vhost string) *rmq.Future[[]rmq.Policy] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.Policy, error) {
		return c.inner.ListIn(ctx, vhost)
	})
}

func (c *AsyncPoliciesClient) Get(ctx context.Context, vhost, name string) *rmq.Future[*rmq.Policy] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.Policy, error) {
		return c.inner.Get(ctx, vhost, name)
	})
}

func (c *AsyncPoliciesClient) Declare(ctx context.Context, vhost, name string, settings rmq.PolicySettings) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Declare(ctx, vhost, name, settings)
	})
}

func (c *AsyncPoliciesClient) Delete(ctx context.Context, vhost, name string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Delete(ctx, vhost, name)
	})
}

func (c *AsyncPoliciesClient) ListOperator(ctx context.Context) *rmq.Future[[]rmq.Policy] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.Policy, error) {
		return c.inner.ListOperator(ctx)
	})
}

func (c *AsyncPoliciesClient) GetOperator(ctx context.Context, vhost, name string) *rmq.Future[*rmq.Policy] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.Policy, error) {
		return c.inner.GetOperator(ctx, vhost, name)
	})
}

func (c *AsyncPoliciesClient) DeclareOperator(ctx context.Context, vhost, name string, settings rmq.PolicySettings) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.DeclareOperator(ctx, vhost, name, settings)
	})
}

func (c *AsyncPoliciesClient) DeleteOperator(ctx context.Context, vhost, name string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.DeleteOperator(ctx, vhost, name)
	})
}

// AsyncRuntimeParametersClient mirrors rmq.RuntimeParametersClient.
type AsyncRuntimeParametersClient struct {
	inner rmq.RuntimeParametersClient
}

func (c *AsyncRuntimeParametersClient) List(ctx context.Context) *rmq.Future[[]rmq.RuntimeParameter] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.RuntimeParameter, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncRuntimeParametersClient) ListOf(ctx context.Context, component string) *rmq.Future[[]rmq.RuntimeParameter] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.RuntimeParameter, error) {
		return c.inner.ListOf(ctx, component)
	})
}

func (c *AsyncRuntimeParametersClient) Get(ctx context.Context, component, vhost, name string) *rmq.Future[*rmq.RuntimeParameter] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.RuntimeParameter, error) {
		return c.inner.Get(ctx, component, vhost, name)
	})
}

func (c *AsyncRuntimeParametersClient) Upsert(ctx context.Context, param rmq.RuntimeParameter) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Upsert(ctx, param)
	})
}

func (c *AsyncRuntimeParametersClient) Clear(ctx context.Context, component, vhost, name string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Clear(ctx, component, vhost, name)
	})
}

// AsyncShovelsClient mirrors rmq.ShovelsClient.
type AsyncShovelsClient struct {
	inner rmq.ShovelsClient
}

func (c *AsyncShovelsClient) List(ctx context.Context) *rmq.Future[[]rmq.Shovel] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.Shovel, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncShovelsClient) ListIn(ctx context.Context, vhost string) *rmq.Future[[]rmq.Shovel] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.Shovel, error) {
		return c.inner.ListIn(ctx, vhost)
	})
}

func (c *AsyncShovelsClient) Declare(ctx context.Context, vhost, name string, settings rmq.ShovelSettings) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Declare(ctx, vhost, name, settings)
	})
}

func (c *AsyncShovelsClient) Delete(ctx context.Context, vhost, name string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Delete(ctx, vhost, name)
	})
}

// AsyncFederationUpstreamsClient mirrors rmq.FederationUpstreamsClient.
type AsyncFederationUpstreamsClient struct {
	inner rmq.FederationUpstreamsClient
}

func (c *AsyncFederationUpstreamsClient) List(ctx context.Context) *rmq.Future[[]rmq.FederationUpstream] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.FederationUpstream, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncFederationUpstreamsClient) Declare(ctx context.Context, vhost, name string, settings rmq.FederationUpstreamSettings) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Declare(ctx, vhost, name, settings)
	})
}

func (c *AsyncFederationUpstreamsClient) Delete(ctx context.Context, vhost, name string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Delete(ctx, vhost, name)
	})
}

// AsyncConnectionsClient mirrors rmq.ConnectionsClient.
type AsyncConnectionsClient struct {
	inner rmq.ConnectionsClient
}

func (c *AsyncConnectionsClient) List(ctx context.Context) *rmq.Future[[]rmq.Connection] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.Connection, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncConnectionsClient) ListOf(ctx context.Context, username string) *rmq.Future[[]rmq.UserConnection] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.UserConnection, error) {
		return c.inner.ListOf(ctx, username)
	})
}

func (c *AsyncConnectionsClient) Get(ctx context.Context, name string) *rmq.Future[*rmq.Connection] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.Connection, error) {
		return c.inner.Get(ctx, name)
	})
}

func (c *AsyncConnectionsClient) Close(ctx context.Context, name, reason string) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Close(ctx, name, reason)
	})
}

// AsyncChannelsClient mirrors rmq.ChannelsClient.
type AsyncChannelsClient struct {
	inner rmq.ChannelsClient
}

func (c *AsyncChannelsClient) List(ctx context.Context) *rmq.Future[[]rmq.Channel] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.Channel, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncChannelsClient) ListOn(ctx context.Context, connectionName string) *rmq.Future[[]rmq.Channel] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.Channel, error) {
		return c.inner.ListOn(ctx, connectionName)
	})
}

// AsyncConsumersClient mirrors rmq.ConsumersClient.
type AsyncConsumersClient struct {
	inner rmq.ConsumersClient
}

func (c *AsyncConsumersClient) List(ctx context.Context) *rmq.Future[[]rmq.Consumer] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.Consumer, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncConsumersClient) ListIn(ctx context.Context, vhost string) *rmq.Future[[]rmq.Consumer] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.Consumer, error) {
		return c.inner.ListIn(ctx, vhost)
	})
}

// AsyncNodesClient mirrors rmq.NodesClient.
type AsyncNodesClient struct {
	inner rmq.NodesClient
}

func (c *AsyncNodesClient) List(ctx context.Context) *rmq.Future[[]rmq.ClusterNode] {
	return rmq.GoFuture(ctx, func(ctx context.Context) ([]rmq.ClusterNode, error) {
		return c.inner.List(ctx)
	})
}

func (c *AsyncNodesClient) Get(ctx context.Context, name string) *rmq.Future[*rmq.ClusterNode] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.ClusterNode, error) {
		return c.inner.Get(ctx, name)
	})
}

// AsyncDefinitionsClient mirrors rmq.DefinitionsClient.
type AsyncDefinitionsClient struct {
	inner rmq.DefinitionsClient
}

func (c *AsyncDefinitionsClient) Export(ctx context.Context) *rmq.Future[*rmq.DefinitionSet] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.DefinitionSet, error) {
		return c.inner.Export(ctx)
	})
}

func (c *AsyncDefinitionsClient) ExportVirtualHost(ctx context.Context, vhost string) *rmq.Future[*rmq.DefinitionSet] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.DefinitionSet, error) {
		return c.inner.ExportVirtualHost(ctx, vhost)
	})
}

func (c *AsyncDefinitionsClient) Import(ctx context.Context, defs *rmq.DefinitionSet) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.Import(ctx, defs)
	})
}

func (c *AsyncDefinitionsClient) ImportIntoVirtualHost(ctx context.Context, vhost string, defs *rmq.DefinitionSet) *rmq.Future[rmq.Ack] {
	return rmq.GoFutureErr(ctx, func(ctx context.Context) error {
		return c.inner.ImportIntoVirtualHost(ctx, vhost, defs)
	})
}

// AsyncHealthClient mirrors rmq.HealthClient.
type AsyncHealthClient struct {
	inner rmq.HealthClient
}

func (c *AsyncHealthClient) ClusterAlarms(ctx context.Context) *rmq.Future[*rmq.AlarmCheckDetails] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.AlarmCheckDetails, error) {
		return c.inner.ClusterAlarms(ctx)
	})
}

func (c *AsyncHealthClient) LocalAlarms(ctx context.Context) *rmq.Future[*rmq.AlarmCheckDetails] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.AlarmCheckDetails, error) {
		return c.inner.LocalAlarms(ctx)
	})
}

func (c *AsyncHealthClient) NodeIsQuorumCritical(ctx context.Context) *rmq.Future[*rmq.QuorumCriticalityCheckDetails] {
	return rmq.GoFuture(ctx, func(ctx context.Context) (*rmq.QuorumCriticalityCheckDetails, error) {
		return c.inner.NodeIsQuorumCritical(ctx)
	})
}
