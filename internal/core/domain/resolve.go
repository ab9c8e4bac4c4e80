package domain

import "go.trai.ch/zerr"

// flagGates declares the minimum tooling version required for each
// version-gated capability. Evaluated once per resolution; raising the
// version only ever adds flags for a fixed requested/disabled pair.
var flagGates = map[Flag]ToolVersion{
	FlagSymbolGraph:       MustToolVersion("13.0"),
	FlagCoveragePrefixMap: MustToolVersion("14.0"),
	FlagMacros:            MustToolVersion("15.0"),
}

// modeDefaults lists the contextual default flags per build mode, in
// activation order.
var modeDefaults = map[BuildMode][]Flag{
	ModeDebug: {
		FlagModeDebug,
		FlagBatchMode,
		FlagIndexWhileBuilding,
		FlagDebugPrefixMap,
	},
	ModeOptimized: {
		FlagModeOpt,
		FlagWholeModule,
		FlagDebugPrefixMap,
	},
}

// gatedDefaults lists capabilities that activate by default once the tooling
// version satisfies their gate.
var gatedDefaults = []Flag{
	FlagSymbolGraph,
	FlagCoveragePrefixMap,
	FlagMacros,
}

// DefaultsPolicy selects how contextual defaults interact with an empty
// requested set. The distinction matters: a request that lists no flags may
// mean "use the standard set" or "intentionally none".
type DefaultsPolicy string

const (
	// DefaultsFull applies the built-in contextual default set.
	DefaultsFull DefaultsPolicy = "full"
	// DefaultsNone treats the requested set as authoritative, even when empty.
	DefaultsNone DefaultsPolicy = "none"
)

// ParseDefaultsPolicy validates a raw policy string. Empty defaults to full.
func ParseDefaultsPolicy(raw string) (DefaultsPolicy, error) {
	switch raw {
	case "", string(DefaultsFull):
		return DefaultsFull, nil
	case string(DefaultsNone):
		return DefaultsNone, nil
	default:
		return "", zerr.With(ErrInvalidDefaultsPolicy, "policy", raw)
	}
}

// contextualDefaults computes the default flag set for a build mode and
// tooling version. Gated defaults are included only when the version meets
// their floor, so the result grows monotonically with the version.
func contextualDefaults(mode BuildMode, version ToolVersion) FlagSet {
	var defaults FlagSet
	for _, f := range modeDefaults[mode] {
		defaults.Add(f)
	}
	for _, f := range gatedDefaults {
		if version.AtLeast(flagGates[f]) {
			defaults.Add(f)
		}
	}
	return defaults
}

// ResolveFlags computes the active capability set for a build context:
//
//	active = (contextualDefaults ∪ requested) \ disabled
//
// A flag present in both requested and disabled ends up excluded; disabled
// always wins. Explicitly requested flags whose version gate is not satisfied
// fail with ErrMissingVersion, since silently skipping the gate would produce
// an incorrect plan. A mutually exclusive pair both active after subtraction
// fails with ErrFlagConflict; that signals a registry or input bug and is
// fatal for the target.
func ResolveFlags(
	requested FlagSet,
	disabled FlagSet,
	mode BuildMode,
	version ToolVersion,
	policy DefaultsPolicy,
) (FlagSet, error) {
	for _, f := range requested.Slice() {
		if !IsKnownFlag(f) {
			return FlagSet{}, zerr.With(ErrUnknownFlag, "flag", string(f))
		}
		floor, gated := flagGates[f]
		if gated && !version.AtLeast(floor) {
			err := zerr.With(ErrMissingVersion, "flag", string(f))
			err = zerr.With(err, "required_version", floor.String())
			return FlagSet{}, zerr.With(err, "tooling_version", version.String())
		}
	}
	for _, f := range disabled.Slice() {
		if !IsKnownFlag(f) {
			return FlagSet{}, zerr.With(ErrUnknownFlag, "flag", string(f))
		}
	}

	base := NewFlagSet()
	if policy == DefaultsFull {
		base = contextualDefaults(mode, version)
	}

	active := base.Union(requested).Without(disabled)

	for _, pair := range mutualExclusions {
		if active.Contains(pair[0]) && active.Contains(pair[1]) {
			err := zerr.With(ErrFlagConflict, "flag", string(pair[0]))
			return FlagSet{}, zerr.With(err, "conflicts_with", string(pair[1]))
		}
	}

	return active, nil
}

// GateFor returns the minimum tooling version for a gated flag, if any.
func GateFor(f Flag) (ToolVersion, bool) {
	v, ok := flagGates[f]
	return v, ok
}
