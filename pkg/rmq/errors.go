package rmq

import (
	"errors"
	"fmt"
)

// BrokerErrorKind classifies a broker-reported failure so callers can branch
// on the common outcomes without inspecting status codes.
type BrokerErrorKind int

const (
	// KindGeneric is any broker failure without a more specific class.
	KindGeneric BrokerErrorKind = iota
	// KindNotFound is a 404: the target resource does not exist.
	KindNotFound
	// KindConflict is a 409, or RabbitMQ's 400 "inequivalent arguments"
	// answer to redeclaring a resource with a different definition.
	KindConflict
	// KindUnauthorized is a 401: missing or invalid credentials.
	KindUnauthorized
	// KindForbidden is a 403: authenticated but not permitted.
	KindForbidden
	// KindServer is any 5xx.
	KindServer
)

func (k BrokerErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindServer:
		return "server error"
	case KindGeneric:
		return "error"
	default:
		return "error"
	}
}

// BrokerError is a failure reported by the broker: it understood the request
// and answered with a non-2xx status. The upstream JSON error body, when one
// was returned, is preserved in ErrorName, Reason, and Payload; when the
// body was empty or not JSON, only StatusCode and Kind are meaningful.
type BrokerError struct {
	StatusCode int
	Kind       BrokerErrorKind
	// ErrorName is the short machine-readable "error" field of the broker's
	// JSON error body, e.g. "not_found" or "bad_request".
	ErrorName string
	// Reason is the human-readable "reason" field, or a status-derived
	// fallback when the body carried none.
	Reason string
	// Payload is the full parsed JSON error body, if any.
	Payload map[string]interface{}
}

func (e *BrokerError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("broker responded %d (%s): %s", e.StatusCode, e.Kind, e.Reason)
	}

	return fmt.Sprintf("broker responded %d (%s)", e.StatusCode, e.Kind)
}

// ValidationError reports caller input that cannot be turned into a request,
// e.g. an empty virtual host or resource name. It is always produced before
// any network I/O.
type ValidationError struct {
	// Field is the offending parameter, e.g. "vhost" or "name".
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransportError wraps a failure of the HTTP exchange itself: connection
// refused, timeout, TLS failure, context cancellation. The underlying cause
// is opaque to this package and available via errors.Unwrap.
type TransportError struct {
	// Op names the attempted operation, e.g. "GET /api/queues".
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a 2xx response body that did not match the expected
// model, which indicates a client/API mismatch rather than a broker failure.
type DecodeError struct {
	// Target describes what was being decoded, e.g. "queue".
	Target string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s response: %v", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a broker "not found" outcome.
func IsNotFound(err error) bool {
	return brokerErrorKind(err) == KindNotFound
}

// IsConflict reports whether err is a broker conflict, e.g. redeclaring a
// resource with a different definition.
func IsConflict(err error) bool {
	return brokerErrorKind(err) == KindConflict
}

// IsUnauthorized reports whether err is an authentication failure.
func IsUnauthorized(err error) bool {
	return brokerErrorKind(err) == KindUnauthorized
}

// IsForbidden reports whether err is an authorization failure.
func IsForbidden(err error) bool {
	return brokerErrorKind(err) == KindForbidden
}

func brokerErrorKind(err error) BrokerErrorKind {
	brokerErr := &BrokerError{}
	if errors.As(err, &brokerErr) {
		return brokerErr.Kind
	}

	return BrokerErrorKind(-1)
}

// Static errors for caller input validation.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrEndpointRequired = errors.New("endpoint is required")
)
