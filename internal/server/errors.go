package server

import "errors"

// errNoServersAreCreated means neither SERVER_ADDRESS nor SERVER_GRPC_ADDRESS
// produced a listener.
var errNoServersAreCreated = errors.New("no servers are created: configure an HTTP or gRPC address")
