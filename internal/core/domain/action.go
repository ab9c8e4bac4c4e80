package domain

import "go.trai.ch/zerr"

// ActionKind identifies a unit of compiler work. The set is closed.
type ActionKind string

const (
	// ActionCompile is the primary compilation of a module's sources.
	ActionCompile ActionKind = "compile"
	// ActionCompileModuleInterface compiles a textual module interface.
	ActionCompileModuleInterface ActionKind = "compile-module-interface"
	// ActionDeriveFiles derives auxiliary outputs (generated headers, object lists).
	ActionDeriveFiles ActionKind = "derive-files"
	// ActionPrecompileModule precompiles an external module for import.
	ActionPrecompileModule ActionKind = "precompile-module"
	// ActionDumpAST dumps the typed syntax tree for diagnostics.
	ActionDumpAST ActionKind = "dump-ast"
)

// ActionKinds lists every action kind in plan emission order.
var ActionKinds = []ActionKind{
	ActionCompile,
	ActionCompileModuleInterface,
	ActionDeriveFiles,
	ActionPrecompileModule,
	ActionDumpAST,
}

// ParseActionKind validates a raw action kind string.
func ParseActionKind(raw string) (ActionKind, error) {
	for _, k := range ActionKinds {
		if string(k) == raw {
			return k, nil
		}
	}
	return "", zerr.With(ErrUnknownActionKind, "kind", raw)
}

// BuildMode selects the optimization posture of a build.
type BuildMode string

const (
	// ModeDebug builds without optimization and with full debug info.
	ModeDebug BuildMode = "debug"
	// ModeOptimized builds with optimization enabled.
	ModeOptimized BuildMode = "optimized"
)

// ParseBuildMode validates a raw build mode string. An empty string
// defaults to debug.
func ParseBuildMode(raw string) (BuildMode, error) {
	switch raw {
	case "", string(ModeDebug):
		return ModeDebug, nil
	case string(ModeOptimized):
		return ModeOptimized, nil
	default:
		return "", zerr.With(ErrUnknownBuildMode, "mode", raw)
	}
}
