// Package rmq provides types, interfaces, and helpers for working with the
// RabbitMQ HTTP management API.
//
// # Overview
//
// The rmq package defines the domain types (e.g., VirtualHost, QueueInfo,
// ExchangeInfo, BindingInfo, Policy) and the interfaces for resource-oriented
// clients (e.g., QueuesClient, VirtualHostsClient). A concrete implementation
// of these clients is provided by the rmqclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// rmqclient to construct a client and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
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
//	  cli, err := rmqclient.New(&rmq.Config{
//	    Endpoint: "http://localhost:15672",
//	    Username: "guest",
//	    Password: "guest",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  queues, err := cli.Queues().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = queues
//	}
//
// # Arguments
//
// Optional queue, exchange, and binding configuration is expressed with the
// Arguments type, an order-preserving JSON object. Arguments round-trip
// through the API without reordering keys or losing numeric precision, which
// keeps exported definitions diffable.
//
// # Errors
//
// Every fallible operation returns one of four error families: a
// ValidationError (bad caller input, detected before any network I/O), a
// TransportError (the HTTP exchange itself failed), a DecodeError (a
// successful response did not match the model), or a BrokerError (the broker
// reported a failure). Use IsNotFound, IsConflict, IsUnauthorized, and
// IsForbidden to branch on the common broker outcomes.
package rmq
