package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/core/domain"
)

func TestResolveFlags_DebugDefaults(t *testing.T) {
	active, err := domain.ResolveFlags(
		domain.NewFlagSet(),
		domain.NewFlagSet(),
		domain.ModeDebug,
		domain.MustToolVersion("12.0"),
		domain.DefaultsFull,
	)
	require.NoError(t, err)

	assert.True(t, active.Contains(domain.FlagModeDebug))
	assert.True(t, active.Contains(domain.FlagBatchMode))
	assert.True(t, active.Contains(domain.FlagIndexWhileBuilding))
	assert.True(t, active.Contains(domain.FlagDebugPrefixMap))
	assert.False(t, active.Contains(domain.FlagModeOpt))
	assert.False(t, active.Contains(domain.FlagWholeModule))
	// All gates are above 12.0.
	assert.False(t, active.Contains(domain.FlagSymbolGraph))
	assert.False(t, active.Contains(domain.FlagCoveragePrefixMap))
	assert.False(t, active.Contains(domain.FlagMacros))
}

func TestResolveFlags_OptimizedDefaults(t *testing.T) {
	active, err := domain.ResolveFlags(
		domain.NewFlagSet(),
		domain.NewFlagSet(),
		domain.ModeOptimized,
		domain.MustToolVersion("12.0"),
		domain.DefaultsFull,
	)
	require.NoError(t, err)

	assert.True(t, active.Contains(domain.FlagModeOpt))
	assert.True(t, active.Contains(domain.FlagWholeModule))
	assert.True(t, active.Contains(domain.FlagDebugPrefixMap))
	assert.False(t, active.Contains(domain.FlagModeDebug))
	assert.False(t, active.Contains(domain.FlagBatchMode))
}

// Raising the tooling version for a fixed requested/disabled pair only ever
// adds flags, never removes one.
func TestResolveFlags_GatesAreMonotonic(t *testing.T) {
	versions := []string{"12.0", "13.0", "14.0", "15.0", "16.1"}
	requested := domain.NewFlagSet(domain.FlagCoverage)
	disabled := domain.NewFlagSet()

	var previous domain.FlagSet
	for _, raw := range versions {
		active, err := domain.ResolveFlags(
			requested,
			disabled,
			domain.ModeDebug,
			domain.MustToolVersion(raw),
			domain.DefaultsFull,
		)
		require.NoError(t, err, raw)

		for _, f := range previous.Slice() {
			assert.True(t, active.Contains(f), "version %s dropped %s", raw, f)
		}
		previous = active
	}

	// Spot-check the individual floors.
	assert.True(t, previous.Contains(domain.FlagSymbolGraph))
	assert.True(t, previous.Contains(domain.FlagCoveragePrefixMap))
	assert.True(t, previous.Contains(domain.FlagMacros))
}

func TestResolveFlags_DisabledWins(t *testing.T) {
	t.Run("over a default", func(t *testing.T) {
		active, err := domain.ResolveFlags(
			domain.NewFlagSet(),
			domain.NewFlagSet(domain.FlagIndexWhileBuilding),
			domain.ModeDebug,
			domain.MustToolVersion("15.0"),
			domain.DefaultsFull,
		)
		require.NoError(t, err)
		assert.False(t, active.Contains(domain.FlagIndexWhileBuilding))
	})

	t.Run("over an explicit request", func(t *testing.T) {
		active, err := domain.ResolveFlags(
			domain.NewFlagSet(domain.FlagCoverage),
			domain.NewFlagSet(domain.FlagCoverage),
			domain.ModeDebug,
			domain.MustToolVersion("15.0"),
			domain.DefaultsFull,
		)
		require.NoError(t, err)
		assert.False(t, active.Contains(domain.FlagCoverage))
	})
}

func TestResolveFlags_UnknownFlag(t *testing.T) {
	_, err := domain.ResolveFlags(
		domain.NewFlagSet(domain.Flag("no.such_flag")),
		domain.NewFlagSet(),
		domain.ModeDebug,
		domain.MustToolVersion("15.0"),
		domain.DefaultsFull,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownFlag)

	_, err = domain.ResolveFlags(
		domain.NewFlagSet(),
		domain.NewFlagSet(domain.Flag("no.such_flag")),
		domain.ModeDebug,
		domain.MustToolVersion("15.0"),
		domain.DefaultsFull,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownFlag)
}

func TestResolveFlags_RequestedBelowGate(t *testing.T) {
	_, err := domain.ResolveFlags(
		domain.NewFlagSet(domain.FlagMacros),
		domain.NewFlagSet(),
		domain.ModeDebug,
		domain.MustToolVersion("14.0"),
		domain.DefaultsFull,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingVersion)
}

func TestResolveFlags_RequestedGatedWithUnknownVersion(t *testing.T) {
	var unknown domain.ToolVersion

	_, err := domain.ResolveFlags(
		domain.NewFlagSet(domain.FlagSymbolGraph),
		domain.NewFlagSet(),
		domain.ModeDebug,
		unknown,
		domain.DefaultsFull,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingVersion)
}

// An unknown version is fine as long as no gated flag is explicitly
// requested; gated defaults simply stay off.
func TestResolveFlags_UnknownVersionSkipsGatedDefaults(t *testing.T) {
	var unknown domain.ToolVersion

	active, err := domain.ResolveFlags(
		domain.NewFlagSet(domain.FlagCoverage),
		domain.NewFlagSet(),
		domain.ModeDebug,
		unknown,
		domain.DefaultsFull,
	)
	require.NoError(t, err)
	assert.True(t, active.Contains(domain.FlagCoverage))
	assert.False(t, active.Contains(domain.FlagSymbolGraph))
	assert.False(t, active.Contains(domain.FlagMacros))
}

func TestResolveFlags_MutualExclusion(t *testing.T) {
	t.Run("both modes requested", func(t *testing.T) {
		_, err := domain.ResolveFlags(
			domain.NewFlagSet(domain.FlagModeOpt),
			domain.NewFlagSet(),
			domain.ModeDebug,
			domain.MustToolVersion("15.0"),
			domain.DefaultsFull,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFlagConflict)
	})

	t.Run("whole module with batch mode", func(t *testing.T) {
		_, err := domain.ResolveFlags(
			domain.NewFlagSet(domain.FlagWholeModule),
			domain.NewFlagSet(),
			domain.ModeDebug,
			domain.MustToolVersion("15.0"),
			domain.DefaultsFull,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFlagConflict)
	})

	t.Run("disabling one side clears the conflict", func(t *testing.T) {
		active, err := domain.ResolveFlags(
			domain.NewFlagSet(domain.FlagWholeModule),
			domain.NewFlagSet(domain.FlagBatchMode),
			domain.ModeDebug,
			domain.MustToolVersion("15.0"),
			domain.DefaultsFull,
		)
		require.NoError(t, err)
		assert.True(t, active.Contains(domain.FlagWholeModule))
		assert.False(t, active.Contains(domain.FlagBatchMode))
	})
}

func TestResolveFlags_DefaultsNone(t *testing.T) {
	active, err := domain.ResolveFlags(
		domain.NewFlagSet(domain.FlagModeDebug, domain.FlagCoverage),
		domain.NewFlagSet(),
		domain.ModeDebug,
		domain.MustToolVersion("15.0"),
		domain.DefaultsNone,
	)
	require.NoError(t, err)

	// Only the requested flags; no contextual or gated defaults.
	assert.Equal(t, []domain.Flag{
		domain.FlagModeDebug,
		domain.FlagCoverage,
	}, active.Slice())
}

func TestResolveFlags_Deterministic(t *testing.T) {
	resolve := func() domain.FlagSet {
		active, err := domain.ResolveFlags(
			domain.NewFlagSet(domain.FlagCoverage, domain.FlagSymbolGraph),
			domain.NewFlagSet(domain.FlagIndexWhileBuilding),
			domain.ModeDebug,
			domain.MustToolVersion("15.0"),
			domain.DefaultsFull,
		)
		require.NoError(t, err)
		return active
	}

	first := resolve()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Slice(), resolve().Slice())
	}
}

func TestParseDefaultsPolicy(t *testing.T) {
	tests := []struct {
		raw     string
		want    domain.DefaultsPolicy
		wantErr bool
	}{
		{raw: "", want: domain.DefaultsFull},
		{raw: "full", want: domain.DefaultsFull},
		{raw: "none", want: domain.DefaultsNone},
		{raw: "some", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("policy "+tt.raw, func(t *testing.T) {
			got, err := domain.ParseDefaultsPolicy(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidDefaultsPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGateFor(t *testing.T) {
	gate, ok := domain.GateFor(domain.FlagMacros)
	require.True(t, ok)
	assert.Equal(t, "15.0", gate.String())

	_, ok = domain.GateFor(domain.FlagCoverage)
	assert.False(t, ok)
}
