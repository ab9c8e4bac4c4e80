package planner

import (
	"path"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
)

// driverExecutable is the compiler driver binary resolved for every action
// kind. A toolchain root override replaces the bare name with a path under
// the root's bin directory.
const driverExecutable = "swiftc"

// toolchainsEnvVar selects a named custom toolchain in the driver's own
// toolchain discovery, mirroring the platform convention.
const toolchainsEnvVar = "TOOLCHAINS"

// headerRewriterTool post-processes the generated header the compile action
// produces. It is attached only to that action and never invoked standalone.
const headerRewriterTool = "generated-header-rewriter"

// execModeFor is a fixed policy, not configurable per call: the primary
// compile action runs in a long-lived reusable worker to amortize startup
// cost across many invocations; one-off derivative actions run ephemerally.
func execModeFor(kind domain.ActionKind) domain.ExecMode {
	if kind == domain.ActionCompile {
		return domain.ExecPersistentWorker
	}
	return domain.ExecEphemeral
}

// ResolveInvocation maps an action kind to the executable, environment, and
// execution mode that will run it, applying toolchain overrides.
//
// The root-vs-identifier conflict is validated by the planner before any
// argument is emitted; it is re-checked here because this function is also
// the entry point for callers resolving invocations directly.
func ResolveInvocation(kind domain.ActionKind, overrides domain.Overrides) (domain.ToolInvocation, error) {
	if overrides.ToolchainRoot != "" && overrides.ToolchainID != "" {
		err := zerr.With(domain.ErrConflictingOverride, "toolchain_root", overrides.ToolchainRoot)
		err = zerr.With(err, "toolchain_id", overrides.ToolchainID)
		return domain.ToolInvocation{}, zerr.With(err, "action", string(kind))
	}

	invocation := domain.ToolInvocation{
		Executable: driverExecutable,
		ExecMode:   execModeFor(kind),
		Env:        make(map[string]string),
	}

	if overrides.ToolchainRoot != "" {
		invocation.Executable = path.Join(overrides.ToolchainRoot, "bin", driverExecutable)
	}
	if overrides.ToolchainID != "" {
		invocation.Env[toolchainsEnvVar] = overrides.ToolchainID
	}

	if kind == domain.ActionCompile {
		invocation.AuxiliaryTools = []string{headerRewriterTool}
	}

	return invocation, nil
}
