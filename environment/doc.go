// Package environment detects the application context ("Production",
// "Development", "Testing", optionally refined with sub-contexts such as
// "Production/Staging") and the application root directory.
//
// Only the root segment decides IsProduction/IsDevelopment/IsTesting; the
// full name is what gets reported downstream.
package environment
