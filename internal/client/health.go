package client

import (
	"context"
	"errors"
	"fmt"
	gohttp "net/http"

	"github.com/ikrivosheev/rabbitmq-http-client/internal/http"
	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// HealthClient implements rmq.HealthClient. The broker reports a failed
// check as a 503 whose body describes the failure; that is a check result,
// not a client error, so it is decoded and returned without an error.
type HealthClient struct {
	httpClient *http.Client
}

// NewHealthClient creates a new health client.
func NewHealthClient(httpClient *http.Client) *HealthClient {
	return &HealthClient{
		httpClient: httpClient,
	}
}

// ClusterAlarms implements rmq.HealthClient.ClusterAlarms.
func (c *HealthClient) ClusterAlarms(ctx context.Context) (*rmq.AlarmCheckDetails, error) {
	return c.alarmCheck(ctx, apiPath("health", "checks", "alarms"))
}

// LocalAlarms implements rmq.HealthClient.LocalAlarms.
func (c *HealthClient) LocalAlarms(ctx context.Context) (*rmq.AlarmCheckDetails, error) {
	return c.alarmCheck(ctx, apiPath("health", "checks", "local-alarms"))
}

// NodeIsQuorumCritical implements rmq.HealthClient.NodeIsQuorumCritical.
func (c *HealthClient) NodeIsQuorumCritical(ctx context.Context) (*rmq.QuorumCriticalityCheckDetails, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("health", "checks", "node-is-quorum-critical"), nil)
	if failed, checkErr := checkFailed(resp, err); checkErr != nil {
		return nil, fmt.Errorf("running quorum criticality check: %w", checkErr)
	} else if !failed {
		return nil, nil
	}

	var details rmq.QuorumCriticalityCheckDetails
	if err := decodeInto("quorum criticality check", resp.Body, &details); err != nil {
		return nil, err
	}

	return &details, nil
}

func (c *HealthClient) alarmCheck(ctx context.Context, path string) (*rmq.AlarmCheckDetails, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if failed, checkErr := checkFailed(resp, err); checkErr != nil {
		return nil, fmt.Errorf("running alarm check: %w", checkErr)
	} else if !failed {
		return nil, nil
	}

	var details rmq.AlarmCheckDetails
	if err := decodeInto("alarm check", resp.Body, &details); err != nil {
		return nil, err
	}

	return &details, nil
}

// checkFailed separates a failed health check (503 with details) from a
// genuine request failure.
func checkFailed(resp *http.Response, err error) (bool, error) {
	if err == nil {
		return false, nil
	}

	var brokerErr *rmq.BrokerError
	if errors.As(err, &brokerErr) && brokerErr.StatusCode == gohttp.StatusServiceUnavailable && resp != nil {
		return true, nil
	}

	return false, err
}
