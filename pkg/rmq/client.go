package rmq

import (
	"context"
	"time"
)

// TopologyClients provides access to the messaging topology resources.
type TopologyClients interface {
	VirtualHosts() VirtualHostsClient
	Queues() QueuesClient
	Exchanges() ExchangesClient
	Bindings() BindingsClient
}

// AccessClients provides access to the authentication and authorization
// resources.
type AccessClients interface {
	Users() UsersClient
	Permissions() PermissionsClient
	TopicPermissions() TopicPermissionsClient
}

// PolicyClients provides access to policies and the runtime-parameter
// backed resources (shovels, federation upstreams).
type PolicyClients interface {
	Policies() PoliciesClient
	Parameters() RuntimeParametersClient
	Shovels() ShovelsClient
	FederationUpstreams() FederationUpstreamsClient
}

// RuntimeClients provides access to runtime state: connections, channels,
// consumers, and cluster nodes.
type RuntimeClients interface {
	Connections() ConnectionsClient
	Channels() ChannelsClient
	Consumers() ConsumersClient
	Nodes() NodesClient
}

// ClusterClients provides access to cluster-wide concerns.
type ClusterClients interface {
	Overview(ctx context.Context) (*Overview, error)
	ClusterName(ctx context.Context) (*ClusterIdentity, error)
	SetClusterName(ctx context.Context, name string) error
	Definitions() DefinitionsClient
	Health() HealthClient
}

// Client is the full blocking management API client. All methods are safe
// for concurrent use; the client holds no mutable state after construction.
type Client interface {
	TopologyClients
	AccessClients
	PolicyClients
	RuntimeClients
	ClusterClients
}

// VirtualHostsClient manages virtual hosts and their enforced limits.
type VirtualHostsClient interface {
	List(ctx context.Context) ([]VirtualHost, error)
	Get(ctx context.Context, name string) (*VirtualHost, error)
	// Declare creates the virtual host or updates its metadata. The
	// operation is an idempotent upsert.
	Declare(ctx context.Context, name string, settings VirtualHostSettings) error
	Delete(ctx context.Context, name string) error

	ListLimits(ctx context.Context) ([]VirtualHostLimits, error)
	ListLimitsOf(ctx context.Context, vhost string) ([]VirtualHostLimits, error)
	SetLimit(ctx context.Context, vhost string, limit VirtualHostLimitTarget, value int64) error
	ClearLimit(ctx context.Context, vhost string, limit VirtualHostLimitTarget) error
}

// UsersClient manages internal-database users and their enforced limits.
type UsersClient interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, name string) (*User, error)
	Declare(ctx context.Context, name string, settings UserSettings) error
	Delete(ctx context.Context, name string) error
	// WhoAmI describes the user the client is authenticated as.
	WhoAmI(ctx context.Context) (*WhoAmI, error)

	ListLimits(ctx context.Context) ([]UserLimits, error)
	ListLimitsOf(ctx context.Context, username string) ([]UserLimits, error)
	SetLimit(ctx context.Context, username string, limit UserLimitTarget, value int64) error
	ClearLimit(ctx context.Context, username string, limit UserLimitTarget) error
}

// PermissionsClient manages per-vhost user permissions.
type PermissionsClient interface {
	List(ctx context.Context) ([]Permissions, error)
	ListIn(ctx context.Context, vhost string) ([]Permissions, error)
	ListOf(ctx context.Context, username string) ([]Permissions, error)
	Get(ctx context.Context, vhost, username string) (*Permissions, error)
	Declare(ctx context.Context, vhost, username string, settings PermissionsSettings) error
	Clear(ctx context.Context, vhost, username string) error
}

// TopicPermissionsClient manages per-vhost topic authorization.
type TopicPermissionsClient interface {
	List(ctx context.Context) ([]TopicPermissions, error)
	ListIn(ctx context.Context, vhost string) ([]TopicPermissions, error)
	ListOf(ctx context.Context, username string) ([]TopicPermissions, error)
	Declare(ctx context.Context, vhost, username string, settings TopicPermissionsSettings) error
	Clear(ctx context.Context, vhost, username string) error
}

// QueuesClient manages queues.
type QueuesClient interface {
	List(ctx context.Context) ([]QueueInfo, error)
	ListIn(ctx context.Context, vhost string) ([]QueueInfo, error)
	// ListPaged fetches one page; combine with NewPageIterator to walk all
	// pages.
	ListPaged(ctx context.Context, params *QueryParams) (*Page[QueueInfo], error)
	Get(ctx context.Context, vhost, name string) (*QueueInfo, error)
	Declare(ctx context.Context, vhost, name string, settings QueueSettings) error
	Delete(ctx context.Context, vhost, name string) error
	Purge(ctx context.Context, vhost, name string) error
	// GetMessages fetches messages via basic-get. Intended for diagnostics,
	// not consumption.
	GetMessages(ctx context.Context, vhost, name string, opts GetMessagesOptions) ([]GetMessage, error)
}

// ExchangesClient manages exchanges.
type ExchangesClient interface {
	List(ctx context.Context) ([]ExchangeInfo, error)
	ListIn(ctx context.Context, vhost string) ([]ExchangeInfo, error)
	Get(ctx context.Context, vhost, name string) (*ExchangeInfo, error)
	Declare(ctx context.Context, vhost, name string, settings ExchangeSettings) error
	Delete(ctx context.Context, vhost, name string) error
	// Publish publishes one message through the exchange. Intended for
	// diagnostics, not throughput.
	Publish(ctx context.Context, vhost, name string, opts PublishOptions) (*MessageRouted, error)
}

// BindingsClient manages bindings.
type BindingsClient interface {
	List(ctx context.Context) ([]BindingInfo, error)
	ListIn(ctx context.Context, vhost string) ([]BindingInfo, error)
	ListForQueue(ctx context.Context, vhost, queue string) ([]BindingInfo, error)
	ListWithSource(ctx context.Context, vhost, exchange string) ([]BindingInfo, error)
	ListWithDestination(ctx context.Context, vhost string, destType BindingDestinationType, destination string) ([]BindingInfo, error)
	Declare(ctx context.Context, vhost, source string, destType BindingDestinationType, destination string, settings BindingSettings) error
	// Delete removes the binding identified by propertiesKey among those
	// between source and destination.
	Delete(ctx context.Context, vhost, source string, destType BindingDestinationType, destination, propertiesKey string) error
}

// PoliciesClient manages policies and operator policies.
type PoliciesClient interface {
	List(ctx context.Context) ([]Policy, error)
	ListIn(ctx context.Context, vhost string) ([]Policy, error)
	Get(ctx context.Context, vhost, name string) (*Policy, error)
	Declare(ctx context.Context, vhost, name string, settings PolicySettings) error
	Delete(ctx context.Context, vhost, name string) error

	ListOperator(ctx context.Context) ([]Policy, error)
	GetOperator(ctx context.Context, vhost, name string) (*Policy, error)
	DeclareOperator(ctx context.Context, vhost, name string, settings PolicySettings) error
	DeleteOperator(ctx context.Context, vhost, name string) error
}

// RuntimeParametersClient manages component-scoped runtime parameters.
type RuntimeParametersClient interface {
	List(ctx context.Context) ([]RuntimeParameter, error)
	ListOf(ctx context.Context, component string) ([]RuntimeParameter, error)
	Get(ctx context.Context, component, vhost, name string) (*RuntimeParameter, error)
	Upsert(ctx context.Context, param RuntimeParameter) error
	Clear(ctx context.Context, component, vhost, name string) error
}

// ShovelsClient manages dynamic shovels.
type ShovelsClient interface {
	List(ctx context.Context) ([]Shovel, error)
	ListIn(ctx context.Context, vhost string) ([]Shovel, error)
	Declare(ctx context.Context, vhost, name string, settings ShovelSettings) error
	Delete(ctx context.Context, vhost, name string) error
}

// FederationUpstreamsClient manages federation upstreams.
type FederationUpstreamsClient interface {
	List(ctx context.Context) ([]FederationUpstream, error)
	Declare(ctx context.Context, vhost, name string, settings FederationUpstreamSettings) error
	Delete(ctx context.Context, vhost, name string) error
}

// ConnectionsClient inspects and closes client connections.
type ConnectionsClient interface {
	List(ctx context.Context) ([]Connection, error)
	ListOf(ctx context.Context, username string) ([]UserConnection, error)
	Get(ctx context.Context, name string) (*Connection, error)
	// Close asks the broker to close the connection; reason is relayed to
	// the client in the connection.close frame.
	Close(ctx context.Context, name, reason string) error
}

// ChannelsClient inspects channels.
type ChannelsClient interface {
	List(ctx context.Context) ([]Channel, error)
	ListOn(ctx context.Context, connectionName string) ([]Channel, error)
}

// ConsumersClient inspects consumers.
type ConsumersClient interface {
	List(ctx context.Context) ([]Consumer, error)
	ListIn(ctx context.Context, vhost string) ([]Consumer, error)
}

// NodesClient inspects cluster nodes.
type NodesClient interface {
	List(ctx context.Context) ([]ClusterNode, error)
	Get(ctx context.Context, name string) (*ClusterNode, error)
}

// DefinitionsClient exports and imports bulk definitions documents.
type DefinitionsClient interface {
	Export(ctx context.Context) (*DefinitionSet, error)
	ExportVirtualHost(ctx context.Context, vhost string) (*DefinitionSet, error)
	Import(ctx context.Context, defs *DefinitionSet) error
	ImportIntoVirtualHost(ctx context.Context, vhost string, defs *DefinitionSet) error
}

// HealthClient runs the broker's health checks. Each check returns nil
// details when the check passes; failure details are decoded from the
// broker's failed-check response.
type HealthClient interface {
	ClusterAlarms(ctx context.Context) (*AlarmCheckDetails, error)
	LocalAlarms(ctx context.Context) (*AlarmCheckDetails, error)
	NodeIsQuorumCritical(ctx context.Context) (*QuorumCriticalityCheckDetails, error)
}

// Config is the client configuration.
//
// # Endpoint
//
// Endpoint is the management UI base URL, e.g. "http://localhost:15672".
// rmqclient.New normalizes it: a missing scheme defaults to "http://" and
// a trailing slash or "/api" suffix is trimmed. The "/api" prefix is added
// per request.
//
// # Authentication
//
// Username and Password are sent as HTTP basic authentication on every
// request. The management API has no session or token concept. Credentials
// are never written to logs, including in debug mode.
//
// # Timeouts, retries, and TLS
//
// Per-request deadlines are controlled by the context passed to client
// methods. RetryMax enables transport-level retries of transient failures
// (5xx, 429, connection errors); it is off by default because not every
// management operation is idempotent. SkipTLSVerify is honored only when
// the environment variable RMQ_DEV_MODE is "true" or "1"; do not use it in
// production.
type Config struct {
	// Endpoint is the management UI base URL.
	Endpoint string
	Username string
	Password string

	// HTTPTimeout caps a single HTTP exchange. Zero means no client-side
	// cap beyond the context deadline.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of transport-level retries. Zero
	// disables retries.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when Logger is
	// set.
	Debug  bool
	Logger Logger
	// SkipTLSVerify disables TLS certificate verification. Honored only
	// when RMQ_DEV_MODE is set.
	SkipTLSVerify bool
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
