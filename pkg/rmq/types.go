package rmq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TagList is a list of tags on a user or virtual host. Older RabbitMQ
// releases emit tags as a single comma-separated string; newer ones as a
// JSON array. Both wire forms decode to the same list.
type TagList []string

// UnmarshalJSON accepts either a JSON array of strings or a single
// comma-separated string.
func (t *TagList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = nil

		return nil
	}

	if data[0] == '"' {
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return fmt.Errorf("decoding tag list: %w", err)
		}

		if joined == "" {
			*t = TagList{}

			return nil
		}

		*t = TagList(strings.Split(joined, ","))

		return nil
	}

	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return fmt.Errorf("decoding tag list: %w", err)
	}

	*t = TagList(tags)

	return nil
}

// FlexInt64 decodes JSON numbers and numeric strings uniformly. Several
// management API fields (e.g. a node's os_pid) are emitted in either form
// depending on the RabbitMQ version.
type FlexInt64 int64

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (v *FlexInt64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = 0

		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("decoding numeric string: %w", err)
		}

		if str == "" {
			*v = 0

			return nil
		}

		parsed, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return fmt.Errorf("decoding numeric string %q: %w", str, err)
		}

		*v = FlexInt64(parsed)

		return nil
	}

	var num int64
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("decoding number: %w", err)
	}

	*v = FlexInt64(num)

	return nil
}

// Int64 returns the value as a plain int64.
func (v FlexInt64) Int64() int64 {
	return int64(v)
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Page          int `json:"page"           yaml:"page"`
	PageCount     int `json:"page_count"     yaml:"page_count"`
	PageSize      int `json:"page_size"      yaml:"page_size"`
	ItemCount     int `json:"item_count"     yaml:"item_count"`
	FilteredCount int `json:"filtered_count" yaml:"filtered_count"`
	TotalCount    int `json:"total_count"    yaml:"total_count"`
	Items         []T `json:"items"          yaml:"items"`
}

// HasNext reports whether pages remain after this one.
func (p *Page[T]) HasNext() bool {
	return p.Page < p.PageCount
}

// NameAndVirtualHost identifies a named resource within a virtual host, the
// natural key for most broker entities.
type NameAndVirtualHost struct {
	Name        string `json:"name"  yaml:"name"`
	VirtualHost string `json:"vhost" yaml:"vhost"`
}

// LooseObject is a JSON object whose decode tolerates the management API's
// habit of emitting "[]" instead of "{}" for empty objects. A sequence on
// the wire decodes to an empty map.
type LooseObject map[string]interface{}

// UnmarshalJSON accepts a JSON object, a JSON array (treated as empty), or
// null.
func (m *LooseObject) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) || data[0] == '[' {
		*m = LooseObject{}

		return nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding object: %w", err)
	}

	*m = LooseObject(raw)

	return nil
}

// MessageProperties is the property map attached to a published or fetched
// message. The API emits "[]" for an absent property set.
type MessageProperties = LooseObject

// RuntimeParameterValue is the component-specific value of a runtime
// parameter. The API emits "[]" for an empty value.
type RuntimeParameterValue = LooseObject

// EnforcedLimits maps limit names ("max-connections", "max-queues", ...) to
// their enforced values.
type EnforcedLimits map[string]int64

// Logger is the logging interface accepted by the client. The library does
// not impose a logging implementation; adapt your logger of choice.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
