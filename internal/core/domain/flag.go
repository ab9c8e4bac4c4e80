package domain

// Flag identifies a yes/no compiler or build capability.
// Flags are defined once in the registry below and referenced, never
// created dynamically at resolution time.
type Flag string

// The closed set of capability flags known to the resolver.
const (
	// FlagModeDebug marks a debug-mode build (no optimization, full debug info).
	FlagModeDebug Flag = "mode.debug"
	// FlagModeOpt marks an optimized build.
	FlagModeOpt Flag = "mode.opt"
	// FlagWholeModule enables whole-module optimization.
	FlagWholeModule Flag = "opt.whole_module"
	// FlagBatchMode enables batched frontend jobs for incremental builds.
	FlagBatchMode Flag = "compile.batch_mode"
	// FlagCoverage enables coverage instrumentation.
	FlagCoverage Flag = "coverage"
	// FlagCoveragePrefixMap remaps absolute paths in coverage data to stable
	// workspace-relative paths. Version-gated.
	FlagCoveragePrefixMap Flag = "coverage.prefix_map"
	// FlagDebugPrefixMap remaps absolute paths embedded in debug info.
	FlagDebugPrefixMap Flag = "debug.prefix_map"
	// FlagMacros enables compile-time macro plugin support. Version-gated.
	FlagMacros Flag = "macros"
	// FlagIndexWhileBuilding emits an index store alongside compilation.
	FlagIndexWhileBuilding Flag = "index.while_building"
	// FlagSymbolGraph emits a symbol graph for documentation tooling. Version-gated.
	FlagSymbolGraph Flag = "emit.symbol_graph"
	// FlagSplitDerivedFiles derives auxiliary outputs in a separate action
	// instead of the main compile.
	FlagSplitDerivedFiles Flag = "compile.split_derived_files"
)

// KnownFlags lists every capability flag the resolver understands, in
// definition order.
var KnownFlags = []Flag{
	FlagModeDebug,
	FlagModeOpt,
	FlagWholeModule,
	FlagBatchMode,
	FlagCoverage,
	FlagCoveragePrefixMap,
	FlagDebugPrefixMap,
	FlagMacros,
	FlagIndexWhileBuilding,
	FlagSymbolGraph,
	FlagSplitDerivedFiles,
}

// IsKnownFlag reports whether f is in the fixed flag registry.
func IsKnownFlag(f Flag) bool {
	for _, k := range KnownFlags {
		if k == f {
			return true
		}
	}
	return false
}

// mutualExclusions declares flag pairs that must never be active together.
// A violation is a registry or input bug, not a recoverable condition.
var mutualExclusions = [][2]Flag{
	{FlagModeDebug, FlagModeOpt},
	{FlagWholeModule, FlagBatchMode},
}

// FlagSet is an ordered-insertion, duplicate-free collection of capability flags.
// The zero value is an empty set ready for use.
type FlagSet struct {
	order   []Flag
	members map[Flag]struct{}
}

// NewFlagSet creates a FlagSet containing the given flags, preserving order
// and dropping duplicates.
func NewFlagSet(flags ...Flag) FlagSet {
	var s FlagSet
	for _, f := range flags {
		s.Add(f)
	}
	return s
}

// Add inserts f if not already present.
func (s *FlagSet) Add(f Flag) {
	if s.members == nil {
		s.members = make(map[Flag]struct{})
	}
	if _, ok := s.members[f]; ok {
		return
	}
	s.members[f] = struct{}{}
	s.order = append(s.order, f)
}

// Contains reports whether f is in the set.
func (s FlagSet) Contains(f Flag) bool {
	_, ok := s.members[f]
	return ok
}

// Len returns the number of flags in the set.
func (s FlagSet) Len() int {
	return len(s.order)
}

// Slice returns the flags in insertion order. The returned slice is a copy.
func (s FlagSet) Slice() []Flag {
	out := make([]Flag, len(s.order))
	copy(out, s.order)
	return out
}

// Union returns a new set containing the flags of s followed by the flags of
// other that are not already present.
func (s FlagSet) Union(other FlagSet) FlagSet {
	out := NewFlagSet(s.order...)
	for _, f := range other.order {
		out.Add(f)
	}
	return out
}

// Without returns a new set with every flag of other removed.
// A flag removed here can never be re-introduced by a later Union operand;
// callers compose requested and disabled sets through this method so that
// disabled always wins.
func (s FlagSet) Without(other FlagSet) FlagSet {
	var out FlagSet
	for _, f := range s.order {
		if !other.Contains(f) {
			out.Add(f)
		}
	}
	return out
}

// Strings returns the flags as plain strings in insertion order.
func (s FlagSet) Strings() []string {
	out := make([]string, len(s.order))
	for i, f := range s.order {
		out[i] = string(f)
	}
	return out
}
