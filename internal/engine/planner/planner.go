// Package planner drives the configurator registry to produce final action
// plans: per action kind, the ordered argument list, environment, and tool
// invocation for one target.
package planner

import (
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/engine/registry"
	"go.trai.ch/zerr"
)

// Planner resolves targets against a sealed configurator registry.
// It is stateless beyond the registry reference; concurrent Resolve calls on
// independent targets are safe.
type Planner struct {
	registry *registry.Registry
}

// New creates a Planner over a sealed registry.
func New(reg *registry.Registry) *Planner {
	return &Planner{registry: reg}
}

// Resolve produces the full plan for one target: the active capability set,
// one ActionPlan per action kind, and the plan fingerprint. It either fully
// succeeds or fails outright; a partially applied argument list could
// silently miscompile.
func (p *Planner) Resolve(target domain.Target) (*domain.Plan, error) {
	if err := target.Overrides.Validate(); err != nil {
		return nil, zerr.With(err, "target", target.Name)
	}

	active, err := domain.ResolveFlags(
		target.Requested,
		target.Disabled,
		target.Mode,
		target.Version,
		target.Defaults,
	)
	if err != nil {
		return nil, zerr.With(err, "target", target.Name)
	}

	ctx := registry.ResolveContext{
		Target:   target.Name,
		Platform: target.Platform,
		Mode:     target.Mode,
		Version:  target.Version,
		Active:   active,
	}

	plan := &domain.Plan{
		Target:      target.Name,
		Platform:    target.Platform,
		ActiveFlags: active,
	}

	for _, kind := range domain.ActionKinds {
		action, err := p.buildAction(ctx, kind, target.Overrides)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "target", target.Name), "action", string(kind))
		}
		plan.Actions = append(plan.Actions, action)
	}

	plan.Fingerprint = plan.ComputeFingerprint()
	return plan, nil
}

// buildAction concatenates, in registry order, the emissions of all
// applicable configurators, then applies overrides strictly last so that
// user-supplied arguments always win under last-wins semantics.
func (p *Planner) buildAction(
	ctx registry.ResolveContext,
	kind domain.ActionKind,
	overrides domain.Overrides,
) (domain.ActionPlan, error) {
	action := domain.ActionPlan{
		Kind: kind,
		Env:  make(map[string]string),
	}

	for _, c := range p.registry.Applicable(kind, ctx.Active, ctx.Version) {
		emission := c.Emit(ctx)
		action.Args = append(action.Args, emission.Args...)
		for k, v := range emission.Env {
			// Later configurators win on environment collisions, mirroring
			// the argument ordering contract.
			action.Env[k] = v
		}
	}

	action.Args = append(action.Args, overrides.ExtraArgs...)

	invocation, err := ResolveInvocation(kind, overrides)
	if err != nil {
		return domain.ActionPlan{}, err
	}
	action.Invocation = invocation

	return action, nil
}
