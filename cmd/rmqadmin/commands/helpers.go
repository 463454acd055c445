package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmqclient"
)

const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// ErrEndpointNotConfigured is returned when no endpoint is available from
// flags, environment, or the config file.
var ErrEndpointNotConfigured = errors.New("no endpoint configured; run 'rmqadmin login' or pass --endpoint")

// CreateClient builds a management API client from the effective CLI
// configuration (flags, environment variables, config file).
func CreateClient() (rmq.Client, error) {
	endpoint := viper.GetString("endpoint")
	if endpoint == "" {
		return nil, ErrEndpointNotConfigured
	}

	client, err := rmqclient.New(&rmq.Config{
		Endpoint:      endpoint,
		Username:      viper.GetString("username"),
		Password:      viper.GetString("password"),
		SkipTLSVerify: viper.GetBool("insecure-tls"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// renderOutput dispatches on the configured output format. data feeds the
// json and yaml encoders; table renders the human-readable default.
func renderOutput(data interface{}, table func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(data)
	case OutputFormatYAML:
		return renderYAML(data)
	default:
		return table()
	}
}

func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return nil
}

func formatTags(tags rmq.TagList) string {
	if len(tags) == 0 {
		return "-"
	}

	return strings.Join(tags, ",")
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}

func formatCount(value int64) string {
	return strconv.FormatInt(value, 10)
}

// formatArguments renders optional arguments compactly for table cells.
func formatArguments(args *rmq.Arguments) string {
	if args == nil || len(args.Keys()) == 0 {
		return "-"
	}

	encoded, err := json.Marshal(args)
	if err != nil {
		return "-"
	}

	return string(encoded)
}

// parseArgumentsFlag decodes a --arguments flag value, which is a JSON
// object such as '{"x-max-length": 1000}'.
func parseArgumentsFlag(raw string) (*rmq.Arguments, error) {
	if raw == "" {
		return nil, nil
	}

	args := rmq.NewArguments()
	if err := json.Unmarshal([]byte(raw), args); err != nil {
		return nil, fmt.Errorf("parsing arguments: %w", err)
	}

	return args, nil
}
