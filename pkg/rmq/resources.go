package rmq

// VirtualHostMetadata is the metadata block of a virtual host.
type VirtualHostMetadata struct {
	Tags             TagList   `json:"tags,omitempty"               yaml:"tags,omitempty"`
	Description      string    `json:"description,omitempty"        yaml:"description,omitempty"`
	DefaultQueueType QueueType `json:"default_queue_type,omitempty" yaml:"default_queue_type,omitempty"`
}

// VirtualHost is a RabbitMQ virtual host: a namespace partitioning queues,
// exchanges, bindings, and permissions within one broker.
type VirtualHost struct {
	Name             string              `json:"name"                         yaml:"name"`
	Tags             TagList             `json:"tags,omitempty"               yaml:"tags,omitempty"`
	Description      string              `json:"description,omitempty"        yaml:"description,omitempty"`
	DefaultQueueType QueueType           `json:"default_queue_type,omitempty" yaml:"default_queue_type,omitempty"`
	Tracing          bool                `json:"tracing,omitempty"            yaml:"tracing,omitempty"`
	Metadata         VirtualHostMetadata `json:"metadata,omitempty"           yaml:"metadata,omitempty"`
}

// VirtualHostLimits is the set of limits enforced on one virtual host.
type VirtualHostLimits struct {
	VirtualHost string         `json:"vhost" yaml:"vhost"`
	Limits      EnforcedLimits `json:"value" yaml:"value"`
}

// UserLimits is the set of limits enforced on one user.
type UserLimits struct {
	Username string         `json:"user"  yaml:"user"`
	Limits   EnforcedLimits `json:"value" yaml:"value"`
}

// User is an internal-database broker user.
type User struct {
	Name         string  `json:"name"          yaml:"name"`
	Tags         TagList `json:"tags"          yaml:"tags"`
	PasswordHash string  `json:"password_hash" yaml:"password_hash"`
}

// WhoAmI describes the authenticated user of the current connection.
type WhoAmI struct {
	Name string  `json:"name" yaml:"name"`
	Tags TagList `json:"tags" yaml:"tags"`
}

// ClientCapabilities is the capability set a client announced at connection
// time.
type ClientCapabilities struct {
	AuthenticationFailureClose  bool `json:"authentication_failure_close" yaml:"authentication_failure_close"`
	BasicNack                   bool `json:"basic.nack"                   yaml:"basic.nack"`
	ConnectionBlocked           bool `json:"connection.blocked"           yaml:"connection.blocked"`
	ConsumerCancelNotify        bool `json:"consumer_cancel_notify"       yaml:"consumer_cancel_notify"`
	ExchangeToExchangeBindings  bool `json:"exchange_exchange_bindings"   yaml:"exchange_exchange_bindings"`
	PublisherConfirms           bool `json:"publisher_confirms"           yaml:"publisher_confirms"`
}

// ClientProperties is client-provided connection metadata.
type ClientProperties struct {
	ConnectionName string              `json:"connection_name,omitempty" yaml:"connection_name,omitempty"`
	Platform       string              `json:"platform,omitempty"        yaml:"platform,omitempty"`
	Product        string              `json:"product,omitempty"         yaml:"product,omitempty"`
	Version        string              `json:"version,omitempty"         yaml:"version,omitempty"`
	Capabilities   *ClientCapabilities `json:"capabilities,omitempty"    yaml:"capabilities,omitempty"`
}

// Connection is a client connection tracked by the broker.
type Connection struct {
	// Name identifies the connection; pass it to Connections().Close.
	Name     string `json:"name"     yaml:"name"`
	Node     string `json:"node"     yaml:"node"`
	State    string `json:"state"    yaml:"state"`
	Protocol string `json:"protocol" yaml:"protocol"`
	Username string `json:"user"     yaml:"user"`
	// ConnectedAt is a millisecond Unix timestamp.
	ConnectedAt      FlexInt64        `json:"connected_at"      yaml:"connected_at"`
	ServerHostname   string           `json:"host"              yaml:"host"`
	ServerPort       int              `json:"port"              yaml:"port"`
	ClientHostname   string           `json:"peer_host"         yaml:"peer_host"`
	ClientPort       int              `json:"peer_port"         yaml:"peer_port"`
	ChannelMax       int              `json:"channel_max"       yaml:"channel_max"`
	ChannelCount     int              `json:"channels"          yaml:"channels"`
	ClientProperties ClientProperties `json:"client_properties" yaml:"client_properties"`
}

// UserConnection is the abridged connection representation returned by the
// per-user connection listing.
type UserConnection struct {
	Name        string `json:"name"  yaml:"name"`
	Node        string `json:"node"  yaml:"node"`
	Username    string `json:"user"  yaml:"user"`
	VirtualHost string `json:"vhost" yaml:"vhost"`
}

// ConnectionDetails is the connection summary embedded in a channel.
type ConnectionDetails struct {
	Name           string `json:"name"      yaml:"name"`
	ClientHostname string `json:"peer_host" yaml:"peer_host"`
	ClientPort     int    `json:"peer_port" yaml:"peer_port"`
}

// Channel is an AMQP channel tracked by the broker.
type Channel struct {
	Number                  int               `json:"number"                  yaml:"number"`
	Name                    string            `json:"name"                    yaml:"name"`
	ConnectionDetails       ConnectionDetails `json:"connection_details"      yaml:"connection_details"`
	VirtualHost             string            `json:"vhost"                   yaml:"vhost"`
	State                   string            `json:"state"                   yaml:"state"`
	ConsumerCount           int               `json:"consumer_count"          yaml:"consumer_count"`
	PublisherConfirms       bool              `json:"confirm"                 yaml:"confirm"`
	PrefetchCount           int               `json:"prefetch_count"          yaml:"prefetch_count"`
	MessagesUnacknowledged  int               `json:"messages_unacknowledged" yaml:"messages_unacknowledged"`
	MessagesUnconfirmed     int               `json:"messages_unconfirmed"    yaml:"messages_unconfirmed"`
}

// ChannelDetails is the channel summary embedded in a consumer.
type ChannelDetails struct {
	Number         int    `json:"number"          yaml:"number"`
	Name           string `json:"name"            yaml:"name"`
	ConnectionName string `json:"connection_name" yaml:"connection_name"`
	Node           string `json:"node"            yaml:"node"`
	ClientHostname string `json:"peer_host"       yaml:"peer_host"`
	ClientPort     int    `json:"peer_port"       yaml:"peer_port"`
	Username       string `json:"user"            yaml:"user"`
}

// Consumer is a consumer registered on a queue.
type Consumer struct {
	ConsumerTag    string             `json:"consumer_tag"     yaml:"consumer_tag"`
	Active         bool               `json:"active"           yaml:"active"`
	ManualAck      bool               `json:"ack_required"     yaml:"ack_required"`
	PrefetchCount  int                `json:"prefetch_count"   yaml:"prefetch_count"`
	Exclusive      bool               `json:"exclusive"        yaml:"exclusive"`
	Arguments      *Arguments         `json:"arguments"        yaml:"-"`
	AckTimeout     FlexInt64          `json:"consumer_timeout" yaml:"consumer_timeout"`
	Queue          NameAndVirtualHost `json:"queue"            yaml:"queue"`
	ChannelDetails ChannelDetails     `json:"channel_details"  yaml:"channel_details"`
}

// QueueInfo is the full queue representation, including runtime statistics.
// Statistic fields are zero when the broker has not yet emitted metrics for
// the queue.
type QueueInfo struct {
	Name        string     `json:"name"        yaml:"name"`
	VirtualHost string     `json:"vhost"       yaml:"vhost"`
	Type        QueueType  `json:"type"        yaml:"type"`
	Durable     bool       `json:"durable"     yaml:"durable"`
	AutoDelete  bool       `json:"auto_delete" yaml:"auto_delete"`
	Exclusive   bool       `json:"exclusive"   yaml:"exclusive"`
	Arguments   *Arguments `json:"arguments"   yaml:"-"`

	Node  string `json:"node,omitempty"  yaml:"node,omitempty"`
	State string `json:"state,omitempty" yaml:"state,omitempty"`

	// Leader, Members, and Online are only reported for quorum queues and
	// streams.
	Leader  string   `json:"leader,omitempty"  yaml:"leader,omitempty"`
	Members []string `json:"members,omitempty" yaml:"members,omitempty"`
	Online  []string `json:"online,omitempty"  yaml:"online,omitempty"`

	Memory               int64   `json:"memory,omitempty"               yaml:"memory,omitempty"`
	ConsumerCount        int     `json:"consumers,omitempty"            yaml:"consumers,omitempty"`
	ConsumerUtilisation  float64 `json:"consumer_utilisation,omitempty" yaml:"consumer_utilisation,omitempty"`
	ExclusiveConsumerTag string  `json:"exclusive_consumer_tag,omitempty" yaml:"exclusive_consumer_tag,omitempty"`

	// Policy is the name of the effective policy, if one matched.
	Policy string `json:"policy,omitempty" yaml:"policy,omitempty"`

	MessageBytes               int64 `json:"message_bytes,omitempty"                yaml:"message_bytes,omitempty"`
	MessageBytesPersistent     int64 `json:"message_bytes_persistent,omitempty"     yaml:"message_bytes_persistent,omitempty"`
	MessageBytesRAM            int64 `json:"message_bytes_ram,omitempty"            yaml:"message_bytes_ram,omitempty"`
	MessageBytesReady          int64 `json:"message_bytes_ready,omitempty"          yaml:"message_bytes_ready,omitempty"`
	MessageBytesUnacknowledged int64 `json:"message_bytes_unacknowledged,omitempty" yaml:"message_bytes_unacknowledged,omitempty"`

	MessageCount               int64 `json:"messages,omitempty"                yaml:"messages,omitempty"`
	MessagesPersistent         int64 `json:"messages_persistent,omitempty"     yaml:"messages_persistent,omitempty"`
	MessagesRAM                int64 `json:"messages_ram,omitempty"            yaml:"messages_ram,omitempty"`
	MessagesUnacknowledged     int64 `json:"messages_unacknowledged,omitempty" yaml:"messages_unacknowledged,omitempty"`
}

// QueueDefinition is the declaration-time subset of a queue, as found in a
// definitions export.
type QueueDefinition struct {
	Name        string     `json:"name"        yaml:"name"`
	VirtualHost string     `json:"vhost"       yaml:"vhost"`
	Durable     bool       `json:"durable"     yaml:"durable"`
	AutoDelete  bool       `json:"auto_delete" yaml:"auto_delete"`
	Arguments   *Arguments `json:"arguments"   yaml:"-"`
}

// ExchangeInfo is an exchange.
type ExchangeInfo struct {
	Name        string       `json:"name"        yaml:"name"`
	VirtualHost string       `json:"vhost"       yaml:"vhost"`
	Type        ExchangeType `json:"type"        yaml:"type"`
	Durable     bool         `json:"durable"     yaml:"durable"`
	AutoDelete  bool         `json:"auto_delete" yaml:"auto_delete"`
	Arguments   *Arguments   `json:"arguments"   yaml:"-"`
}

// ExchangeDefinition is the declaration-time representation of an exchange,
// identical in shape to ExchangeInfo.
type ExchangeDefinition = ExchangeInfo

// BindingInfo is a binding between an exchange and a queue or another
// exchange.
type BindingInfo struct {
	VirtualHost     string                 `json:"vhost"                    yaml:"vhost"`
	Source          string                 `json:"source"                   yaml:"source"`
	Destination     string                 `json:"destination"              yaml:"destination"`
	DestinationType BindingDestinationType `json:"destination_type"         yaml:"destination_type"`
	RoutingKey      string                 `json:"routing_key"              yaml:"routing_key"`
	Arguments       *Arguments             `json:"arguments"                yaml:"-"`
	// PropertiesKey identifies this binding among several between the same
	// source and destination; it is required to delete a specific binding.
	PropertiesKey string `json:"properties_key,omitempty" yaml:"properties_key,omitempty"`
}

// ClusterNode is a RabbitMQ cluster member.
type ClusterNode struct {
	Name       string `json:"name"       yaml:"name"`
	Uptime     int64  `json:"uptime"     yaml:"uptime"`
	RunQueue   int    `json:"run_queue"  yaml:"run_queue"`
	Processors int    `json:"processors" yaml:"processors"`
	// OSPid is emitted as a string by some releases and a number by others.
	OSPid                FlexInt64 `json:"os_pid"          yaml:"os_pid"`
	FDTotal              int       `json:"fd_total"        yaml:"fd_total"`
	TotalErlangProcesses int       `json:"proc_total"      yaml:"proc_total"`
	MemoryHighWatermark  int64     `json:"mem_limit"       yaml:"mem_limit"`
	MemoryAlarm          bool      `json:"mem_alarm"       yaml:"mem_alarm"`
	FreeDiskLowWatermark int64     `json:"disk_free_limit" yaml:"disk_free_limit"`
	FreeDiskAlarm        bool      `json:"disk_free_alarm" yaml:"disk_free_alarm"`
	RatesMode            string    `json:"rates_mode"      yaml:"rates_mode"`
}

// RuntimeParameter is a component-scoped runtime parameter, the mechanism
// behind shovels, federation upstreams, and other plugin configuration.
type RuntimeParameter struct {
	Name        string                `json:"name"      yaml:"name"`
	VirtualHost string                `json:"vhost"     yaml:"vhost"`
	Component   string                `json:"component" yaml:"component"`
	Value       RuntimeParameterValue `json:"value"     yaml:"value"`
}

// ClusterIdentity is the cluster's human-readable name.
type ClusterIdentity struct {
	Name string `json:"name" yaml:"name"`
}

// Policy is a policy matching queues, exchanges, or both by name pattern.
type Policy struct {
	Name        string       `json:"name"       yaml:"name"`
	VirtualHost string       `json:"vhost"      yaml:"vhost"`
	Pattern     string       `json:"pattern"    yaml:"pattern"`
	ApplyTo     PolicyTarget `json:"apply-to"   yaml:"apply-to"`
	Priority    int          `json:"priority"   yaml:"priority"`
	Definition  *Arguments   `json:"definition" yaml:"-"`
}

// Permissions is a user's permission set in one virtual host. The three
// fields are regular expressions matched against resource names.
type Permissions struct {
	User        string `json:"user"      yaml:"user"`
	VirtualHost string `json:"vhost"     yaml:"vhost"`
	Configure   string `json:"configure" yaml:"configure"`
	Read        string `json:"read"      yaml:"read"`
	Write       string `json:"write"     yaml:"write"`
}

// TopicPermissions is a user's topic authorization set on one exchange in
// one virtual host.
type TopicPermissions struct {
	User        string `json:"user"     yaml:"user"`
	VirtualHost string `json:"vhost"    yaml:"vhost"`
	Exchange    string `json:"exchange" yaml:"exchange"`
	Read        string `json:"read"     yaml:"read"`
	Write       string `json:"write"    yaml:"write"`
}

// DefinitionSet is a bulk definitions document: the full configuration of a
// cluster (or a single vhost, in which case cluster-scoped fields are
// empty), as exported and imported by the definitions endpoints.
type DefinitionSet struct {
	ServerVersion string             `json:"rabbitmq_version,omitempty" yaml:"rabbitmq_version,omitempty"`
	Users         []User             `json:"users,omitempty"            yaml:"users,omitempty"`
	VirtualHosts  []VirtualHost      `json:"vhosts,omitempty"           yaml:"vhosts,omitempty"`
	Permissions   []Permissions      `json:"permissions,omitempty"      yaml:"permissions,omitempty"`
	Parameters    []RuntimeParameter `json:"parameters,omitempty"       yaml:"parameters,omitempty"`
	Policies      []Policy           `json:"policies,omitempty"         yaml:"policies,omitempty"`
	Queues        []QueueDefinition  `json:"queues,omitempty"           yaml:"queues,omitempty"`
	Exchanges     []ExchangeInfo     `json:"exchanges,omitempty"        yaml:"exchanges,omitempty"`
	Bindings      []BindingInfo      `json:"bindings,omitempty"         yaml:"bindings,omitempty"`
}

// Shovel is a dynamic shovel as reported by the shovel status endpoint.
// Shovels are declared and deleted through runtime parameters; this is the
// broker's runtime view of one.
type Shovel struct {
	Name        string `json:"name"            yaml:"name"`
	VirtualHost string `json:"vhost"           yaml:"vhost"`
	Node        string `json:"node"            yaml:"node"`
	Type        string `json:"type"            yaml:"type"`
	State       string `json:"state"           yaml:"state"`
	Source      string `json:"src_uri,omitempty"  yaml:"src_uri,omitempty"`
	Destination string `json:"dest_uri,omitempty" yaml:"dest_uri,omitempty"`
}

// FederationUpstream is a federation upstream, decoded from its backing
// runtime parameter.
type FederationUpstream struct {
	Name        string `json:"name"  yaml:"name"`
	VirtualHost string `json:"vhost" yaml:"vhost"`
	URI         string `json:"uri"   yaml:"uri"`
	// These are zero when the upstream relies on server defaults.
	PrefetchCount  int    `json:"prefetch-count,omitempty"  yaml:"prefetch-count,omitempty"`
	ReconnectDelay int    `json:"reconnect-delay,omitempty" yaml:"reconnect-delay,omitempty"`
	AckMode        string `json:"ack-mode,omitempty"        yaml:"ack-mode,omitempty"`
	TrustUserID    bool   `json:"trust-user-id,omitempty"   yaml:"trust-user-id,omitempty"`
	Exchange       string `json:"exchange,omitempty"        yaml:"exchange,omitempty"`
	Queue          string `json:"queue,omitempty"           yaml:"queue,omitempty"`
}

// ResourceAlarm is one resource alarm in effect on a node.
type ResourceAlarm struct {
	Node     string `json:"node"     yaml:"node"`
	Resource string `json:"resource" yaml:"resource"`
}

// AlarmCheckDetails explains a failed alarm health check.
type AlarmCheckDetails struct {
	Reason string          `json:"reason" yaml:"reason"`
	Alarms []ResourceAlarm `json:"alarms" yaml:"alarms"`
}

// QuorumEndangeredQueue is a queue that would lose its quorum if the target
// node shut down.
type QuorumEndangeredQueue struct {
	Name        string    `json:"name"         yaml:"name"`
	VirtualHost string    `json:"virtual_host" yaml:"virtual_host"`
	Type        QueueType `json:"type"         yaml:"type"`
}

// QuorumCriticalityCheckDetails explains a failed quorum criticality check.
type QuorumCriticalityCheckDetails struct {
	Reason string                  `json:"reason" yaml:"reason"`
	Queues []QuorumEndangeredQueue `json:"queues" yaml:"queues"`
}

// GetMessage is one message fetched from a queue via the basic-get
// endpoint.
type GetMessage struct {
	PayloadBytes    int               `json:"payload_bytes"    yaml:"payload_bytes"`
	Redelivered     bool              `json:"redelivered"      yaml:"redelivered"`
	Exchange        string            `json:"exchange"         yaml:"exchange"`
	RoutingKey      string            `json:"routing_key"      yaml:"routing_key"`
	MessageCount    int               `json:"message_count"    yaml:"message_count"`
	Properties      MessageProperties `json:"properties"       yaml:"properties"`
	Payload         string            `json:"payload"          yaml:"payload"`
	PayloadEncoding string            `json:"payload_encoding" yaml:"payload_encoding"`
}

// MessageRouted reports whether a published message was routed to at least
// one queue.
type MessageRouted struct {
	Routed bool `json:"routed" yaml:"routed"`
}

// ChurnRates are object creation/teardown rates since node start.
type ChurnRates struct {
	ConnectionCreated int `json:"connection_created" yaml:"connection_created"`
	ConnectionClosed  int `json:"connection_closed"  yaml:"connection_closed"`
	QueueDeclared     int `json:"queue_declared"     yaml:"queue_declared"`
	QueueCreated      int `json:"queue_created"      yaml:"queue_created"`
	QueueDeleted      int `json:"queue_deleted"      yaml:"queue_deleted"`
	ChannelCreated    int `json:"channel_created"    yaml:"channel_created"`
	ChannelClosed     int `json:"channel_closed"     yaml:"channel_closed"`
}

// ObjectTotals are cluster-wide object counts.
type ObjectTotals struct {
	Connections int64 `json:"connections" yaml:"connections"`
	Channels    int64 `json:"channels"    yaml:"channels"`
	Queues      int64 `json:"queues"      yaml:"queues"`
	Exchanges   int64 `json:"exchanges"   yaml:"exchanges"`
}

// Listener is one protocol listener on one node.
type Listener struct {
	Node     string `json:"node"       yaml:"node"`
	Protocol string `json:"protocol"   yaml:"protocol"`
	Port     int    `json:"port"       yaml:"port"`
	// Interface is the bound IP address.
	Interface string `json:"ip_address" yaml:"ip_address"`
}

// Overview is the cluster overview.
type Overview struct {
	ClusterName string `json:"cluster_name" yaml:"cluster_name"`
	Node        string `json:"node"         yaml:"node"`

	ErlangFullVersion string `json:"erlang_full_version" yaml:"erlang_full_version"`
	ErlangVersion     string `json:"erlang_version"      yaml:"erlang_version"`
	RabbitMQVersion   string `json:"rabbitmq_version"    yaml:"rabbitmq_version"`
	ProductName       string `json:"product_name"        yaml:"product_name"`
	ProductVersion    string `json:"product_version"     yaml:"product_version"`

	// Cluster and node tags are absent on releases before 3.13.
	ClusterTags LooseObject `json:"cluster_tags,omitempty" yaml:"cluster_tags,omitempty"`
	NodeTags    LooseObject `json:"node_tags,omitempty"    yaml:"node_tags,omitempty"`

	StatisticsDBEventQueue int64      `json:"statistics_db_event_queue" yaml:"statistics_db_event_queue"`
	ChurnRates             ChurnRates `json:"churn_rates"               yaml:"churn_rates"`
	ObjectTotals           ObjectTotals `json:"object_totals"           yaml:"object_totals"`
	Listeners              []Listener `json:"listeners,omitempty"       yaml:"listeners,omitempty"`
}
