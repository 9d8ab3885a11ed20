// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/spf13/cobra"
)

// ErrCommandNotFound is returned for a name with no registered utility.
var ErrCommandNotFound = errors.New("command not found")

// DefaultRegistry holds the utilities reachable as subcommands, as
// busybox-style program names and as sh builtins.
var DefaultRegistry = newDefaultRegistry()

type (
	// CommandFactory builds a fresh, unattached command for one run.
	CommandFactory func(app *App) *cobra.Command

	// Stdio is the set of streams a builtin runs with.
	Stdio struct {
		In  io.Reader
		Out io.Writer
		Err io.Writer
	}

	// Registry maps utility names to command factories.
	// It is safe for concurrent use.
	Registry struct {
		mu        sync.RWMutex
		factories map[string]CommandFactory
	}
)

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]CommandFactory)}
}

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("cat", newCatCommand)
	r.Register("echo", newEchoCommand)
	r.Register("head", newHeadCommand)
	r.Register("uniq", newUniqCommand)
	r.Register("wc", newWcCommand)
	r.Register("sh", newShCommand)
	return r
}

// Register adds a factory under name.
// Panics if the name is empty or already registered.
func (r *Registry) Register(name string, factory CommandFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		panic("textutils: cannot register command with empty name")
	}
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("textutils: command %q already registered", name))
	}
	r.factories[name] = factory
}

// Lookup retrieves a factory by name.
func (r *Registry) Lookup(name string) (CommandFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run builds the named utility and executes it standalone with args
// (excluding the utility name) and the given streams.
func (r *Registry) Run(ctx context.Context, app *App, name string, args []string, stdio Stdio) error {
	factory, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrCommandNotFound)
	}

	c := factory(app)
	c.SetIn(stdio.In)
	c.SetOut(stdio.Out)
	c.SetErr(stdio.Err)
	c.SetArgs(args)
	c.SilenceUsage = true
	c.SilenceErrors = true
	return c.ExecuteContext(ctx)
}
