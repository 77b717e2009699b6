package security

import "context"

// Config defines how bearer tokens are authenticated.
type Config struct {
	// TokenSecret is the HMAC key used to verify bearer tokens. When empty,
	// no request is ever authenticated; the security context is still
	// initialized for every request.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "token_secret" key
	//   - Environment variable SECURITY_TOKEN_SECRET
	TokenSecret string `yaml:"token_secret" envconfig:"SECURITY_TOKEN_SECRET"`

	// TokenIssuer, when set, must match the "iss" claim of every token.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "token_issuer" key
	//   - Environment variable SECURITY_TOKEN_ISSUER
	TokenIssuer string `yaml:"token_issuer" envconfig:"SECURITY_TOKEN_ISSUER"`
}

// Logger is the logging surface used by this package.
type Logger interface {
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
