package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/engine/planner"
	"go.trai.ch/anvil/internal/engine/registry"
)

func testTarget(t *testing.T, triple string) domain.Target {
	t.Helper()

	platform, err := domain.NewPlatform(triple)
	require.NoError(t, err)

	return domain.Target{
		Name:     "app",
		Platform: platform,
		Mode:     domain.ModeDebug,
		Version:  domain.MustToolVersion("15.0"),
		Defaults: domain.DefaultsFull,
	}
}

func TestPlanner_Resolve(t *testing.T) {
	p := planner.New(registry.NewDefault())

	plan, err := p.Resolve(testTarget(t, "arm64-apple-ios17.0-simulator"))
	require.NoError(t, err)

	assert.Equal(t, "app", plan.Target)
	assert.Equal(t, domain.ClassIOSSimulator, plan.Platform.Class)
	assert.NotEmpty(t, plan.Fingerprint)

	// One action plan per kind, in emission order.
	require.Len(t, plan.Actions, len(domain.ActionKinds))
	for i, kind := range domain.ActionKinds {
		assert.Equal(t, kind, plan.Actions[i].Kind)
	}

	compile := plan.Action(domain.ActionCompile)
	require.NotNil(t, compile)
	assert.Contains(t, compile.Args, "-Onone")
	assert.Contains(t, compile.Args, "-enable-batch-mode")
	assert.Equal(t, domain.ExecPersistentWorker, compile.Invocation.ExecMode)
}

func TestPlanner_Resolve_CoverageScenario(t *testing.T) {
	p := planner.New(registry.NewDefault())

	target := testTarget(t, "arm64-apple-ios17.0-simulator")
	target.Requested = domain.NewFlagSet(domain.FlagCoverage)

	plan, err := p.Resolve(target)
	require.NoError(t, err)

	compile := plan.Action(domain.ActionCompile)
	require.NotNil(t, compile)
	assert.Contains(t, compile.Args, "-profile-generate")
	assert.Contains(t, compile.Args, "-profile-coverage-mapping")
	// The prefix-map gate (14.0) is satisfied at 15.0 and activates by default.
	assert.Contains(t, compile.Args, "-coverage-prefix-map")
	// Macro support (15.0) activates by default as well.
	assert.Contains(t, compile.Args, "-external-plugin-path")
	assert.NotContains(t, compile.Args, "-O")
}

func TestPlanner_Resolve_CoverageScenarioOlderTooling(t *testing.T) {
	p := planner.New(registry.NewDefault())

	target := testTarget(t, "arm64-apple-ios17.0-simulator")
	target.Requested = domain.NewFlagSet(domain.FlagCoverage)
	target.Version = domain.MustToolVersion("14.0")

	plan, err := p.Resolve(target)
	require.NoError(t, err)

	compile := plan.Action(domain.ActionCompile)
	require.NotNil(t, compile)
	assert.Contains(t, compile.Args, "-coverage-prefix-map")
	assert.NotContains(t, compile.Args, "-external-plugin-path")
}

func TestPlanner_Resolve_UnsupportedFlagFails(t *testing.T) {
	p := planner.New(registry.NewDefault())

	target := testTarget(t, "arm64-apple-macos13.0")
	target.Requested = domain.NewFlagSet(domain.Flag("bogus"))

	_, err := p.Resolve(target)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownFlag)
}

func TestPlanner_Resolve_ExtraArgsComeLast(t *testing.T) {
	p := planner.New(registry.NewDefault())

	target := testTarget(t, "arm64-apple-macos13.0")
	target.Overrides = domain.Overrides{ExtraArgs: []string{"-O", "-custom-flag"}}

	plan, err := p.Resolve(target)
	require.NoError(t, err)

	for _, kind := range domain.ActionKinds {
		action := plan.Action(kind)
		require.NotNil(t, action, string(kind))
		n := len(action.Args)
		require.GreaterOrEqual(t, n, 2)
		assert.Equal(t, []string{"-O", "-custom-flag"}, action.Args[n-2:], string(kind))
	}
}

func TestPlanner_Resolve_ConflictingOverrides(t *testing.T) {
	p := planner.New(registry.NewDefault())

	target := testTarget(t, "arm64-apple-macos13.0")
	target.Overrides = domain.Overrides{
		ToolchainRoot: "/opt/toolchain",
		ToolchainID:   "org.example.nightly",
	}

	_, err := p.Resolve(target)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflictingOverride)
}

func TestPlanner_Resolve_Deterministic(t *testing.T) {
	p := planner.New(registry.NewDefault())

	target := testTarget(t, "arm64-apple-ios17.0-simulator")
	target.Requested = domain.NewFlagSet(domain.FlagCoverage, domain.FlagSplitDerivedFiles)
	target.Overrides = domain.Overrides{ToolchainID: "org.example.nightly", ExtraArgs: []string{"-v"}}

	first, err := p.Resolve(target)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := p.Resolve(target)
		require.NoError(t, err)
		assert.Equal(t, first.Fingerprint, again.Fingerprint)
		assert.Equal(t, first.ActiveFlags.Slice(), again.ActiveFlags.Slice())
		for _, kind := range domain.ActionKinds {
			assert.Equal(t, first.Action(kind).Args, again.Action(kind).Args)
		}
	}
}
