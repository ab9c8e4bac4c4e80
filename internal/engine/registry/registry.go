// Package registry implements the configurator registry: the ordered rule
// table that decides which argument emitters apply to an action kind under a
// given capability set.
package registry

import (
	"sync"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolveContext is the immutable build context a configurator sees.
// Emit functions are pure: same context in, same tokens out.
type ResolveContext struct {
	Target   string
	Platform domain.Platform
	Mode     domain.BuildMode
	Version  domain.ToolVersion
	Active   domain.FlagSet
}

// Emission is the output of one configurator: argument tokens and
// environment edits for a single action.
type Emission struct {
	Args []string
	Env  map[string]string
}

// EmitFunc produces an emission from the build context.
type EmitFunc func(ctx ResolveContext) Emission

// Configurator conditionally emits arguments for one or more action kinds.
// Applicability requires every flag in Requires to be active, and for each
// group in AnyOf at least one member to be active.
type Configurator struct {
	// Name identifies the configurator in error metadata and traces.
	Name string
	// Kinds is the set of action kinds this configurator applies to.
	Kinds []domain.ActionKind
	// Requires lists flags that must all be active.
	Requires []domain.Flag
	// AnyOf lists flag groups; each group is satisfied when at least one
	// member is active.
	AnyOf [][]domain.Flag
	// MinVersion optionally gates the configurator on the tooling version.
	MinVersion domain.ToolVersion
	// Emit produces the argument tokens and environment edits.
	Emit EmitFunc
}

func (c Configurator) appliesTo(kind domain.ActionKind) bool {
	for _, k := range c.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (c Configurator) satisfiedBy(active domain.FlagSet) bool {
	for _, f := range c.Requires {
		if !active.Contains(f) {
			return false
		}
	}
	for _, group := range c.AnyOf {
		any := false
		for _, f := range group {
			if active.Contains(f) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	return true
}

// Registry holds configurators in registration order. Registration happens
// once during startup; Seal marks the end of the construction phase, after
// which the registry is read-only and safe for concurrent resolution.
type Registry struct {
	mu            sync.Mutex
	configurators []Configurator
	sealed        bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register appends a configurator. Registration order is load-bearing:
// earlier configurators emit earlier, and under last-wins duplicate-flag
// semantics later arguments override them.
func (r *Registry) Register(c Configurator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return zerr.With(domain.ErrRegistrySealed, "configurator", c.Name)
	}
	r.configurators = append(r.configurators, c)
	return nil
}

// MustRegister registers a configurator and panics on failure.
// Only for static default tables built before any resolution.
func (r *Registry) MustRegister(c Configurator) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Seal closes the registry for registration. Idempotent.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Len returns the number of registered configurators.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.configurators)
}

// Applicable returns, in registration order, the configurators that apply to
// the action kind under the active flag set and tooling version.
func (r *Registry) Applicable(
	kind domain.ActionKind,
	active domain.FlagSet,
	version domain.ToolVersion,
) []Configurator {
	r.mu.Lock()
	all := r.configurators
	r.mu.Unlock()

	var out []Configurator
	for _, c := range all {
		if !c.appliesTo(kind) {
			continue
		}
		if !c.satisfiedBy(active) {
			continue
		}
		if c.MinVersion.Known() && !version.AtLeast(c.MinVersion) {
			continue
		}
		out = append(out, c)
	}
	return out
}
