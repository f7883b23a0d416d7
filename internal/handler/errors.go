package handler

import "errors"

var errNoHandlersAreCreated = errors.New("no handlers are created: neither HTTP nor gRPC address is set")
