package rmq

// QueueType is the type of a queue: classic, quorum, or stream. Values
// outside the known set (e.g. types added by future RabbitMQ releases) are
// carried through unchanged; use IsKnown to detect them.
type QueueType string

const (
	QueueTypeClassic QueueType = "classic"
	QueueTypeQuorum  QueueType = "quorum"
	QueueTypeStream  QueueType = "stream"
)

// IsKnown reports whether the value is one of the queue types this client
// models explicitly.
func (t QueueType) IsKnown() bool {
	switch t {
	case QueueTypeClassic, QueueTypeQuorum, QueueTypeStream:
		return true
	default:
		return false
	}
}

// ExchangeType is the type of an exchange. Most values correspond to
// exchange types included with modern RabbitMQ distributions; types provided
// by third-party plugins round-trip as-is and report IsKnown() == false.
type ExchangeType string

const (
	ExchangeTypeFanout               ExchangeType = "fanout"
	ExchangeTypeTopic                ExchangeType = "topic"
	ExchangeTypeDirect               ExchangeType = "direct"
	ExchangeTypeHeaders              ExchangeType = "headers"
	ExchangeTypeConsistentHashing    ExchangeType = "x-consistent-hash"
	ExchangeTypeModulusHash          ExchangeType = "x-modulus-hash"
	ExchangeTypeRandom               ExchangeType = "x-random"
	ExchangeTypeLocalRandom          ExchangeType = "x-local-random"
	ExchangeTypeJMSTopic             ExchangeType = "x-jms-topic"
	ExchangeTypeRecentHistory        ExchangeType = "x-recent-history"
	ExchangeTypeDelayedMessage       ExchangeType = "x-delayed-message"
	ExchangeTypeMessageDeduplication ExchangeType = "x-message-deduplication"
)

// IsKnown reports whether the value is one of the exchange types this client
// models explicitly.
func (t ExchangeType) IsKnown() bool {
	switch t {
	case ExchangeTypeFanout, ExchangeTypeTopic, ExchangeTypeDirect, ExchangeTypeHeaders,
		ExchangeTypeConsistentHashing, ExchangeTypeModulusHash, ExchangeTypeRandom,
		ExchangeTypeLocalRandom, ExchangeTypeJMSTopic, ExchangeTypeRecentHistory,
		ExchangeTypeDelayedMessage, ExchangeTypeMessageDeduplication:
		return true
	default:
		return false
	}
}

// BindingDestinationType says whether a binding points at a queue or at
// another exchange (exchange-to-exchange bindings).
type BindingDestinationType string

const (
	BindingDestinationQueue    BindingDestinationType = "queue"
	BindingDestinationExchange BindingDestinationType = "exchange"
)

// IsKnown reports whether the value is a destination type this client models
// explicitly.
func (t BindingDestinationType) IsKnown() bool {
	return t == BindingDestinationQueue || t == BindingDestinationExchange
}

// PathAbbreviation returns the single-letter form ("q" or "e") used in
// binding endpoint paths.
func (t BindingDestinationType) PathAbbreviation() string {
	if t == BindingDestinationExchange {
		return "e"
	}

	return "q"
}

// PolicyTarget is the kind of resource a policy applies to ("apply-to").
type PolicyTarget string

const (
	PolicyTargetQueues        PolicyTarget = "queues"
	PolicyTargetClassicQueues PolicyTarget = "classic_queues"
	PolicyTargetQuorumQueues  PolicyTarget = "quorum_queues"
	PolicyTargetStreams       PolicyTarget = "streams"
	PolicyTargetExchanges     PolicyTarget = "exchanges"
	PolicyTargetAll           PolicyTarget = "all"
)

// IsKnown reports whether the value is a policy target this client models
// explicitly.
func (t PolicyTarget) IsKnown() bool {
	switch t {
	case PolicyTargetQueues, PolicyTargetClassicQueues, PolicyTargetQuorumQueues,
		PolicyTargetStreams, PolicyTargetExchanges, PolicyTargetAll:
		return true
	default:
		return false
	}
}

// VirtualHostLimitTarget identifies a per-vhost enforced limit.
type VirtualHostLimitTarget string

const (
	VirtualHostLimitMaxConnections VirtualHostLimitTarget = "max-connections"
	VirtualHostLimitMaxQueues      VirtualHostLimitTarget = "max-queues"
)

// IsKnown reports whether the value is a vhost limit this client models
// explicitly.
func (t VirtualHostLimitTarget) IsKnown() bool {
	return t == VirtualHostLimitMaxConnections || t == VirtualHostLimitMaxQueues
}

// UserLimitTarget identifies a per-user enforced limit.
type UserLimitTarget string

const (
	UserLimitMaxConnections UserLimitTarget = "max-connections"
	UserLimitMaxChannels    UserLimitTarget = "max-channels"
)

// IsKnown reports whether the value is a user limit this client models
// explicitly.
func (t UserLimitTarget) IsKnown() bool {
	return t == UserLimitMaxConnections || t == UserLimitMaxChannels
}
