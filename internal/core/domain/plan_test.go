package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/core/domain"
)

func testPlan(t *testing.T) *domain.Plan {
	t.Helper()

	platform, err := domain.NewPlatform("arm64-apple-ios17.0-simulator")
	require.NoError(t, err)

	return &domain.Plan{
		Target:      "app",
		Platform:    platform,
		ActiveFlags: domain.NewFlagSet(domain.FlagModeDebug, domain.FlagCoverage),
		Actions: []domain.ActionPlan{
			{
				Kind: domain.ActionCompile,
				Args: []string{"-target", "arm64-apple-ios17.0-simulator", "-Onone", "-g"},
				Env:  map[string]string{"B": "2", "A": "1"},
				Invocation: domain.ToolInvocation{
					Executable:     "swiftc",
					ExecMode:       domain.ExecPersistentWorker,
					AuxiliaryTools: []string{"generated-header-rewriter"},
				},
			},
			{
				Kind: domain.ActionDumpAST,
				Args: []string{"-dump-ast"},
				Invocation: domain.ToolInvocation{
					Executable: "swiftc",
					ExecMode:   domain.ExecEphemeral,
				},
			},
		},
	}
}

func TestPlan_Action(t *testing.T) {
	p := testPlan(t)

	compile := p.Action(domain.ActionCompile)
	require.NotNil(t, compile)
	assert.Equal(t, domain.ActionCompile, compile.Kind)

	assert.Nil(t, p.Action(domain.ActionPrecompileModule))
}

func TestPlan_ComputeFingerprint_Deterministic(t *testing.T) {
	first := testPlan(t).ComputeFingerprint()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, testPlan(t).ComputeFingerprint())
	}
	assert.Len(t, first, 16)
}

func TestPlan_ComputeFingerprint_SensitiveToContent(t *testing.T) {
	base := testPlan(t).ComputeFingerprint()

	changedArgs := testPlan(t)
	changedArgs.Actions[0].Args = append(changedArgs.Actions[0].Args, "-O")
	assert.NotEqual(t, base, changedArgs.ComputeFingerprint())

	changedTarget := testPlan(t)
	changedTarget.Target = "app2"
	assert.NotEqual(t, base, changedTarget.ComputeFingerprint())

	changedEnv := testPlan(t)
	changedEnv.Actions[0].Env["A"] = "changed"
	assert.NotEqual(t, base, changedEnv.ComputeFingerprint())
}

// Arg boundaries must be part of the digest; joining adjacent args must not
// collide with a differently split spelling.
func TestPlan_ComputeFingerprint_ArgBoundaries(t *testing.T) {
	a := testPlan(t)
	a.Actions[1].Args = []string{"-dump", "-ast"}

	b := testPlan(t)
	b.Actions[1].Args = []string{"-dump -ast"}

	assert.NotEqual(t, a.ComputeFingerprint(), b.ComputeFingerprint())
}

func TestPlan_ComputeFingerprint_EnvOrderIndependent(t *testing.T) {
	a := testPlan(t)
	a.Actions[0].Env = map[string]string{"A": "1", "B": "2", "C": "3"}

	b := testPlan(t)
	b.Actions[0].Env = map[string]string{"C": "3", "B": "2", "A": "1"}

	assert.Equal(t, a.ComputeFingerprint(), b.ComputeFingerprint())
}
