package server

import "errors"

// ErrPanic wraps every value recovered from a panicking handler.
var ErrPanic = errors.New("server: handler panicked")
