package rmq

// VirtualHostSettings are the properties of a virtual host to be created or
// updated.
type VirtualHostSettings struct {
	Description      string    `json:"description,omitempty"`
	Tags             []string  `json:"tags,omitempty"`
	DefaultQueueType QueueType `json:"default_queue_type,omitempty"`
	Tracing          bool      `json:"tracing"`
}

// UserSettings are the properties of a user to be created or updated. Only
// a pre-computed salted password hash is accepted; this client never sends
// plaintext passwords to the broker.
type UserSettings struct {
	PasswordHash string `json:"password_hash"`
	// Tags is a comma-separated tag list, e.g. "administrator".
	Tags string `json:"tags"`
}

// QueueSettings are queue properties used at declaration time.
type QueueSettings struct {
	Type       QueueType  `json:"-"`
	Durable    bool       `json:"durable"`
	AutoDelete bool       `json:"auto_delete"`
	Exclusive  bool       `json:"exclusive"`
	Arguments  *Arguments `json:"arguments,omitempty"`
}

// NewQueueSettings returns settings for a queue of the given type. The
// queue type is injected into a copy of args as "x-queue-type"; args itself
// is never mutated or retained.
func NewQueueSettings(queueType QueueType, durable, autoDelete bool, args *Arguments) QueueSettings {
	return QueueSettings{
		Type:       queueType,
		Durable:    durable,
		AutoDelete: autoDelete,
		Arguments:  combinedQueueArguments(args, queueType),
	}
}

// NewQuorumQueue returns settings for a quorum queue. Quorum queues are
// always durable and never auto-delete.
func NewQuorumQueue(args *Arguments) QueueSettings {
	return QueueSettings{
		Type:      QueueTypeQuorum,
		Durable:   true,
		Arguments: combinedQueueArguments(args, QueueTypeQuorum),
	}
}

// NewStream returns settings for a stream. Streams are always durable and
// never auto-delete.
func NewStream(args *Arguments) QueueSettings {
	return QueueSettings{
		Type:      QueueTypeStream,
		Durable:   true,
		Arguments: combinedQueueArguments(args, QueueTypeStream),
	}
}

// NewDurableClassicQueue returns settings for a durable classic queue.
func NewDurableClassicQueue(args *Arguments) QueueSettings {
	return QueueSettings{
		Type:      QueueTypeClassic,
		Durable:   true,
		Arguments: combinedQueueArguments(args, QueueTypeClassic),
	}
}

func combinedQueueArguments(args *Arguments, queueType QueueType) *Arguments {
	combined := NewArguments().Set("x-queue-type", string(queueType))
	if args != nil {
		for _, key := range args.Keys() {
			value, _ := args.Get(key)
			combined.Set(key, cloneValue(value))
		}
	}

	return combined
}

// ExchangeSettings are exchange properties used at declaration time.
type ExchangeSettings struct {
	Type       ExchangeType `json:"type"`
	Durable    bool         `json:"durable"`
	AutoDelete bool         `json:"auto_delete"`
	Arguments  *Arguments   `json:"arguments,omitempty"`
}

// NewExchangeSettings returns settings for an exchange of the given type.
// args is deep-copied; the caller's value is never retained.
func NewExchangeSettings(exchangeType ExchangeType, durable, autoDelete bool, args *Arguments) ExchangeSettings {
	return ExchangeSettings{
		Type:       exchangeType,
		Durable:    durable,
		AutoDelete: autoDelete,
		Arguments:  args.Clone(),
	}
}

// NewDurableExchange returns settings for a durable, non-auto-delete
// exchange of the given type.
func NewDurableExchange(exchangeType ExchangeType, args *Arguments) ExchangeSettings {
	return NewExchangeSettings(exchangeType, true, false, args)
}

// BindingSettings are binding properties used at declaration time.
type BindingSettings struct {
	RoutingKey string     `json:"routing_key"`
	Arguments  *Arguments `json:"arguments,omitempty"`
}

// PolicySettings are policy properties used at declaration time.
type PolicySettings struct {
	Pattern    string       `json:"pattern"`
	ApplyTo    PolicyTarget `json:"apply-to"`
	Priority   int          `json:"priority"`
	Definition *Arguments   `json:"definition"`
}

// PermissionsSettings are the three permission regular expressions granted
// to a user in a virtual host.
type PermissionsSettings struct {
	Configure string `json:"configure"`
	Read      string `json:"read"`
	Write     string `json:"write"`
}

// TopicPermissionsSettings are topic authorization regular expressions
// granted to a user on one exchange.
type TopicPermissionsSettings struct {
	Exchange string `json:"exchange"`
	Read     string `json:"read"`
	Write    string `json:"write"`
}

// EnforcedLimit is the body of a limit PUT.
type EnforcedLimit struct {
	Value int64 `json:"value"`
}

// ShovelSettings describe a dynamic shovel. Declaring a shovel upserts the
// backing "shovel" runtime parameter.
type ShovelSettings struct {
	// SourceURI and DestinationURI are AMQP URIs, e.g. "amqp://" for the
	// local broker.
	SourceURI      string `json:"src-uri"`
	DestinationURI string `json:"dest-uri"`

	// Exactly one of SourceQueue/SourceExchange should be set, and likewise
	// for the destination.
	SourceQueue         string `json:"src-queue,omitempty"`
	SourceExchange      string `json:"src-exchange,omitempty"`
	SourceExchangeKey   string `json:"src-exchange-key,omitempty"`
	DestinationQueue    string `json:"dest-queue,omitempty"`
	DestinationExchange string `json:"dest-exchange,omitempty"`

	AckMode       string `json:"ack-mode,omitempty"`
	ReconnectDelay int   `json:"reconnect-delay,omitempty"`
	// DeleteAfter is "never", "queue-length", or a message count.
	DeleteAfter string `json:"src-delete-after,omitempty"`
}

// FederationUpstreamSettings describe a federation upstream. Declaring one
// upserts the backing "federation-upstream" runtime parameter.
type FederationUpstreamSettings struct {
	URI            string `json:"uri"`
	PrefetchCount  int    `json:"prefetch-count,omitempty"`
	ReconnectDelay int    `json:"reconnect-delay,omitempty"`
	AckMode        string `json:"ack-mode,omitempty"`
	TrustUserID    bool   `json:"trust-user-id,omitempty"`
	Exchange       string `json:"exchange,omitempty"`
	Queue          string `json:"queue,omitempty"`
}

// PublishOptions describe a message published via the HTTP API. This is a
// diagnostics affordance, not a performant publishing path.
type PublishOptions struct {
	RoutingKey string            `json:"routing_key"`
	Properties MessageProperties `json:"properties"`
	Payload    string            `json:"payload"`
	// PayloadEncoding is "string" or "base64".
	PayloadEncoding string `json:"payload_encoding"`
}

// GetMessagesOptions describe a basic-get fetch from a queue.
type GetMessagesOptions struct {
	Count int `json:"count"`
	// AckMode is one of "ack_requeue_true", "ack_requeue_false",
	// "reject_requeue_true", "reject_requeue_false".
	AckMode string `json:"ackmode"`
	// Encoding is "auto" or "base64".
	Encoding string `json:"encoding"`
	Truncate int    `json:"truncate,omitempty"`
}
