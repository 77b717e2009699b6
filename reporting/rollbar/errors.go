package rollbar

import "errors"

// ErrMissingAccessToken is returned by InitOnce when the settings carry no
// "access_token".
var ErrMissingAccessToken = errors.New("rollbar: access_token is required")
