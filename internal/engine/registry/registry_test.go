package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/engine/registry"
)

func emitNothing(_ registry.ResolveContext) registry.Emission {
	return registry.Emission{}
}

func TestRegistry_RegisterAndSeal(t *testing.T) {
	r := registry.New()

	err := r.Register(registry.Configurator{
		Name:  "first",
		Kinds: []domain.ActionKind{domain.ActionCompile},
		Emit:  emitNothing,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	r.Seal()

	err = r.Register(registry.Configurator{
		Name:  "late",
		Kinds: []domain.ActionKind{domain.ActionCompile},
		Emit:  emitNothing,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrySealed)
	assert.Equal(t, 1, r.Len())

	// Sealing twice is harmless.
	r.Seal()
}

func TestRegistry_Applicable_Order(t *testing.T) {
	r := registry.New()
	for _, name := range []string{"a", "b", "c"} {
		r.MustRegister(registry.Configurator{
			Name:  name,
			Kinds: []domain.ActionKind{domain.ActionCompile},
			Emit:  emitNothing,
		})
	}
	r.Seal()

	applicable := r.Applicable(domain.ActionCompile, domain.NewFlagSet(), domain.ToolVersion{})
	require.Len(t, applicable, 3)
	assert.Equal(t, "a", applicable[0].Name)
	assert.Equal(t, "b", applicable[1].Name)
	assert.Equal(t, "c", applicable[2].Name)
}

func TestRegistry_Applicable_KindFilter(t *testing.T) {
	r := registry.New()
	r.MustRegister(registry.Configurator{
		Name:  "compile-only",
		Kinds: []domain.ActionKind{domain.ActionCompile},
		Emit:  emitNothing,
	})
	r.Seal()

	assert.Len(t, r.Applicable(domain.ActionCompile, domain.NewFlagSet(), domain.ToolVersion{}), 1)
	assert.Empty(t, r.Applicable(domain.ActionDumpAST, domain.NewFlagSet(), domain.ToolVersion{}))
}

func TestRegistry_Applicable_Requires(t *testing.T) {
	r := registry.New()
	r.MustRegister(registry.Configurator{
		Name:     "needs-coverage",
		Kinds:    []domain.ActionKind{domain.ActionCompile},
		Requires: []domain.Flag{domain.FlagCoverage, domain.FlagCoveragePrefixMap},
		Emit:     emitNothing,
	})
	r.Seal()

	assert.Empty(t, r.Applicable(
		domain.ActionCompile,
		domain.NewFlagSet(domain.FlagCoverage),
		domain.ToolVersion{},
	))
	assert.Len(t, r.Applicable(
		domain.ActionCompile,
		domain.NewFlagSet(domain.FlagCoverage, domain.FlagCoveragePrefixMap),
		domain.ToolVersion{},
	), 1)
}

func TestRegistry_Applicable_AnyOf(t *testing.T) {
	r := registry.New()
	r.MustRegister(registry.Configurator{
		Name:  "debug-or-coverage",
		Kinds: []domain.ActionKind{domain.ActionCompile},
		AnyOf: [][]domain.Flag{
			{domain.FlagModeDebug, domain.FlagCoverage},
		},
		Emit: emitNothing,
	})
	r.Seal()

	assert.Empty(t, r.Applicable(
		domain.ActionCompile,
		domain.NewFlagSet(domain.FlagModeOpt),
		domain.ToolVersion{},
	))
	assert.Len(t, r.Applicable(
		domain.ActionCompile,
		domain.NewFlagSet(domain.FlagCoverage),
		domain.ToolVersion{},
	), 1)
	assert.Len(t, r.Applicable(
		domain.ActionCompile,
		domain.NewFlagSet(domain.FlagModeDebug),
		domain.ToolVersion{},
	), 1)
}

func TestRegistry_Applicable_MinVersion(t *testing.T) {
	r := registry.New()
	r.MustRegister(registry.Configurator{
		Name:       "gated",
		Kinds:      []domain.ActionKind{domain.ActionCompile},
		MinVersion: domain.MustToolVersion("15.0"),
		Emit:       emitNothing,
	})
	r.Seal()

	assert.Empty(t, r.Applicable(
		domain.ActionCompile,
		domain.NewFlagSet(),
		domain.MustToolVersion("14.2"),
	))
	// The unknown version never satisfies a gate.
	assert.Empty(t, r.Applicable(
		domain.ActionCompile,
		domain.NewFlagSet(),
		domain.ToolVersion{},
	))
	assert.Len(t, r.Applicable(
		domain.ActionCompile,
		domain.NewFlagSet(),
		domain.MustToolVersion("15.0"),
	), 1)
}
