package environment

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment is the static Provider built from Config at startup.
type Environment struct {
	context  Context
	rootPath string
}

// NewEnvironment parses cfg.Context and resolves cfg.RootPath.
//
// Example:
//
//	env, err := environment.NewEnvironment(environment.Config{
//	    Context:  "Production/Staging",
//	    RootPath: "/srv/app/",
//	})
//	env.IsProduction()     // true
//	env.CurrentContext()   // Production/Staging
func NewEnvironment(cfg Config) (*Environment, error) {
	ctx, err := ParseContext(cfg.Context)
	if err != nil {
		return nil, err
	}

	root := cfg.RootPath
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRootPath, err)
		}
	}
	if !filepath.IsAbs(root) {
		if root, err = filepath.Abs(root); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRootPath, err)
		}
	}

	return &Environment{context: ctx, rootPath: root}, nil
}

func (e *Environment) CurrentContext() Context { return e.context }
func (e *Environment) IsProduction() bool      { return e.context.IsProduction() }
func (e *Environment) IsDevelopment() bool     { return e.context.IsDevelopment() }
func (e *Environment) IsTesting() bool         { return e.context.IsTesting() }

// RootPath returns the root as configured. Absolute configured paths are
// kept verbatim, trailing slashes included.
func (e *Environment) RootPath() string { return e.rootPath }
