// Package config loads the errgate configuration.
//
// Values are layered: Default, then a YAML file, then environment
// variables named by the envconfig tags on each section (LOGGER_LEVEL,
// APP_CONTEXT, REPORTING_ENABLE_FOR_PRODUCTION, ...). The reporting
// settings maps are file-only.
package config
