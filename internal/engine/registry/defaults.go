package registry

import "go.trai.ch/anvil/internal/core/domain"

// Path placeholders substituted by the external executor. SDK discovery and
// output layout are collaborators' concerns; the resolver only names the
// slots.
const (
	// SDKRootPlaceholder stands for the resolved SDK root directory.
	SDKRootPlaceholder = "{sdk_root}"
	// WorkDirPlaceholder stands for the execution root directory.
	WorkDirPlaceholder = "{work_dir}"
	// DerivedDirPlaceholder stands for the per-target derived output directory.
	DerivedDirPlaceholder = "{derived_dir}"
	// ToolchainDirPlaceholder stands for the resolved toolchain directory.
	ToolchainDirPlaceholder = "{toolchain_dir}"
)

var allKinds = domain.ActionKinds

var compileLike = []domain.ActionKind{
	domain.ActionCompile,
	domain.ActionCompileModuleInterface,
	domain.ActionDeriveFiles,
}

func args(tokens ...string) EmitFunc {
	return func(_ ResolveContext) Emission {
		return Emission{Args: tokens}
	}
}

// NewDefault builds and seals the standard configurator registry.
// Registration order here is load-bearing: mode arguments come before
// feature arguments so that feature-specific tuning wins under the tools'
// last-wins duplicate-flag semantics, and user overrides are appended after
// everything by the planner.
func NewDefault() *Registry {
	r := New()

	r.MustRegister(Configurator{
		Name:  "target-triple",
		Kinds: allKinds,
		Emit: func(ctx ResolveContext) Emission {
			return Emission{Args: []string{"-target", ctx.Platform.Triple.String()}}
		},
	})

	r.MustRegister(Configurator{
		Name:  "sdk",
		Kinds: allKinds,
		Emit: func(_ ResolveContext) Emission {
			return Emission{Args: []string{"-sdk", SDKRootPlaceholder}}
		},
	})

	r.MustRegister(Configurator{
		Name:  "developer-frameworks",
		Kinds: compileLike,
		Emit: func(ctx ResolveContext) Emission {
			dir := ctx.Platform.DeveloperFrameworkDir()
			if dir == "" {
				// Host platform class: no separate developer directory.
				return Emission{}
			}
			return Emission{Args: []string{"-F" + SDKRootPlaceholder + "/" + dir}}
		},
	})

	r.MustRegister(Configurator{
		Name:     "debug-mode",
		Kinds:    compileLike,
		Requires: []domain.Flag{domain.FlagModeDebug},
		Emit:     args("-Onone", "-g"),
	})

	r.MustRegister(Configurator{
		Name:     "optimized-mode",
		Kinds:    compileLike,
		Requires: []domain.Flag{domain.FlagModeOpt},
		Emit:     args("-O"),
	})

	r.MustRegister(Configurator{
		Name:     "whole-module",
		Kinds:    []domain.ActionKind{domain.ActionCompile},
		Requires: []domain.Flag{domain.FlagModeOpt, domain.FlagWholeModule},
		Emit:     args("-wmo"),
	})

	r.MustRegister(Configurator{
		Name:     "batch-mode",
		Kinds:    []domain.ActionKind{domain.ActionCompile},
		Requires: []domain.Flag{domain.FlagBatchMode},
		Emit:     args("-enable-batch-mode"),
	})

	r.MustRegister(Configurator{
		Name:     "coverage",
		Kinds:    []domain.ActionKind{domain.ActionCompile},
		Requires: []domain.Flag{domain.FlagCoverage},
		Emit:     args("-profile-generate", "-profile-coverage-mapping"),
	})

	r.MustRegister(Configurator{
		Name:     "coverage-prefix-map",
		Kinds:    []domain.ActionKind{domain.ActionCompile},
		Requires: []domain.Flag{domain.FlagCoverage, domain.FlagCoveragePrefixMap},
		Emit:     args("-coverage-prefix-map", WorkDirPlaceholder+"=."),
	})

	r.MustRegister(Configurator{
		Name:  "debug-prefix-map",
		Kinds: compileLike,
		// Path remapping applies to any build that embeds paths: debug info
		// or coverage mappings.
		Requires: []domain.Flag{domain.FlagDebugPrefixMap},
		AnyOf: [][]domain.Flag{
			{domain.FlagModeDebug, domain.FlagCoverage},
		},
		Emit: args("-debug-prefix-map", WorkDirPlaceholder+"=."),
	})

	r.MustRegister(Configurator{
		Name:       "macro-plugins",
		Kinds:      compileLike,
		Requires:   []domain.Flag{domain.FlagMacros},
		MinVersion: domain.MustToolVersion("15.0"),
		Emit:       args("-external-plugin-path", ToolchainDirPlaceholder+"/lib/plugins"),
	})

	r.MustRegister(Configurator{
		Name:     "index-store",
		Kinds:    []domain.ActionKind{domain.ActionCompile},
		Requires: []domain.Flag{domain.FlagIndexWhileBuilding},
		Emit:     args("-index-store-path", DerivedDirPlaceholder+"/index-store"),
	})

	r.MustRegister(Configurator{
		Name:       "symbol-graph",
		Kinds:      []domain.ActionKind{domain.ActionCompile},
		Requires:   []domain.Flag{domain.FlagSymbolGraph},
		MinVersion: domain.MustToolVersion("13.0"),
		Emit:       args("-emit-symbol-graph", "-emit-symbol-graph-dir", DerivedDirPlaceholder+"/symbol-graph"),
	})

	r.MustRegister(Configurator{
		Name:  "module-interface",
		Kinds: []domain.ActionKind{domain.ActionCompileModuleInterface},
		Emit:  args("-compile-module-from-interface"),
	})

	r.MustRegister(Configurator{
		Name:     "derive-module-outputs",
		Kinds:    []domain.ActionKind{domain.ActionDeriveFiles},
		Requires: []domain.Flag{domain.FlagSplitDerivedFiles},
		Emit: func(ctx ResolveContext) Emission {
			return Emission{Args: []string{
				"-emit-module-path", DerivedDirPlaceholder + "/" + ctx.Target + ".module",
				"-emit-objc-header-path", DerivedDirPlaceholder + "/" + ctx.Target + "-generated.h",
			}}
		},
	})

	r.MustRegister(Configurator{
		Name:  "precompile-module",
		Kinds: []domain.ActionKind{domain.ActionPrecompileModule},
		Emit:  args("-emit-pcm"),
	})

	r.MustRegister(Configurator{
		Name:  "dump-ast",
		Kinds: []domain.ActionKind{domain.ActionDumpAST},
		Emit:  args("-dump-ast"),
	})

	r.Seal()
	return r
}
