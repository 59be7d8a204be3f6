package server

import "stegno/api"

var (
	errRequestBodyDecode = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errCodecSetup        = api.Error{Error: "Error setting up carrier codec"}
	errInject            = api.Error{Code: "inject_error", Error: "An error occurred while injecting the message"}
	errInvalidSize       = api.Error{Code: "invalid_carrier_size", Error: "carrier_size must be a non-negative integer"}
)
