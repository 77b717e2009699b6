package environment

// Provider exposes the application context the process runs under and the
// application root directory. Implementations are read-only after
// construction.
type Provider interface {
	// CurrentContext returns the detected application context.
	CurrentContext() Context

	IsProduction() bool
	IsDevelopment() bool
	IsTesting() bool

	// RootPath returns the absolute application root directory.
	RootPath() string
}
