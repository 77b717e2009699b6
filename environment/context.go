package environment

import (
	"fmt"
	"strings"
)

// Root is one of the three top-level application contexts.
type Root string

const (
	Production  Root = "Production"
	Development Root = "Development"
	Testing     Root = "Testing"
)

// Context is an application context such as "Production/Staging/Eu".
// The first segment is always a Root; further segments are free-form
// sub-contexts that refine it.
type Context struct {
	root Root
	subs []string
}

// ParseContext parses a context name. The root segment is matched
// case-insensitively and normalized; sub-context segments keep their
// spelling. Empty segments are dropped, so "Production//Staging/" equals
// "Production/Staging".
func ParseContext(name string) (Context, error) {
	var segments []string
	for _, s := range strings.Split(name, "/") {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return Context{root: Development}, nil
	}

	var root Root
	switch strings.ToLower(segments[0]) {
	case "production":
		root = Production
	case "development":
		root = Development
	case "testing":
		root = Testing
	default:
		return Context{}, fmt.Errorf("%w: %q", ErrInvalidContext, name)
	}

	return Context{root: root, subs: segments[1:]}, nil
}

// MustParseContext is like ParseContext but panics on error.
func MustParseContext(name string) Context {
	c, err := ParseContext(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Root returns the top-level context.
func (c Context) Root() Root {
	if c.root == "" {
		return Development
	}
	return c.root
}

// Parent returns the enclosing context, or false for a root context.
func (c Context) Parent() (Context, bool) {
	if len(c.subs) == 0 {
		return Context{}, false
	}
	return Context{root: c.Root(), subs: c.subs[:len(c.subs)-1]}, true
}

// String returns the full context name, e.g. "Production/Staging".
func (c Context) String() string {
	return strings.Join(append([]string{string(c.Root())}, c.subs...), "/")
}

func (c Context) IsProduction() bool  { return c.Root() == Production }
func (c Context) IsDevelopment() bool { return c.Root() == Development }
func (c Context) IsTesting() bool     { return c.Root() == Testing }
