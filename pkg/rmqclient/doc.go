// Package rmqclient provides the primary entry point for constructing a
// RabbitMQ HTTP management API client that implements the rmq.Client
// interface.
//
// It layers endpoint normalization and transport configuration on top of
// the resource interfaces and types defined in the rmq package. Most
// applications should import rmqclient to build a client, then use the
// returned rmq.Client to access resource-specific clients, for example
// Queues(), Exchanges(), VirtualHosts(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
//	  "github.com/ikrivosheev/rabbitmq-http-client/pkg/rmqclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := rmqclient.New(&rmq.Config{
//	    Endpoint: "http://localhost:15672",
//	    Username: "guest",
//	    Password: "guest",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  queues, err := cli.Queues().ListIn(ctx, "/")
//	  if err != nil { log.Fatal(err) }
//	  _ = queues
//	}
//
// The endpoint may omit the scheme ("localhost:15672" defaults to
// "http://") and may carry a trailing slash or "/api" suffix; both are
// normalized away. NewWithEndpoint wraps New for the common
// endpoint/username/password case, and NewAsync builds the
// future-returning variant of the client.
//
// # TLS and development mode
//
// For local development, you can set Config.SkipTLSVerify=true. This is
// gated by the environment variable RMQ_DEV_MODE to avoid accidental
// insecure usage in production environments.
package rmqclient
