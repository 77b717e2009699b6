package reporting

import (
	"context"

	"github.com/mitchellh/copystructure"
)

// Settings keys overridden by the gate.
const (
	KeyRoot        = "root"
	KeyEnvironment = "environment"
	KeyPersonFn    = "person_fn"
	KeyPayload     = "payload"
	KeyPerson      = "person"
	KeyPersonID    = "id"
)

// Settings is an SDK settings payload.
type Settings map[string]interface{}

// PersonFunc returns the person to attach to a report produced while
// handling ctx: {"id": "..."} or an empty map.
type PersonFunc func(ctx context.Context) map[string]interface{}

// PersonFn returns the "person_fn" callback stored in s, if any.
func (s Settings) PersonFn() PersonFunc {
	switch fn := s[KeyPersonFn].(type) {
	case PersonFunc:
		return fn
	case func(context.Context) map[string]interface{}:
		return fn
	default:
		return nil
	}
}

// copySettings deep-copies a configured template so overrides never leak
// back into the static configuration.
func copySettings(src map[string]interface{}) Settings {
	if src == nil {
		return Settings{}
	}
	copied, err := copystructure.Copy(src)
	if err == nil {
		if m, ok := copied.(map[string]interface{}); ok {
			return m
		}
	}

	// copystructure only fails on values it cannot walk; keep the top level
	// independent at least.
	out := make(Settings, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// asMap returns v as a string-keyed map when it is one.
func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case Settings:
		return m, true
	default:
		return nil, false
	}
}
