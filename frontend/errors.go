package frontend

import "errors"

var (
	// ErrInvalidVariable is returned when ConfigVariable is not a plain
	// JavaScript identifier.
	ErrInvalidVariable = errors.New("frontend: config variable is not a valid identifier")

	// ErrEncodeSettings is returned when the client settings cannot be
	// encoded as JSON.
	ErrEncodeSettings = errors.New("frontend: cannot encode client settings")
)
