package render_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/adapters/render"
	"go.trai.ch/anvil/internal/core/domain"
)

func fixturePlans(t *testing.T) []*domain.Plan {
	t.Helper()

	app, err := domain.NewPlatform("arm64-apple-ios17.0-simulator")
	require.NoError(t, err)
	host, err := domain.NewPlatform("arm64-apple-macos13.0")
	require.NoError(t, err)

	return []*domain.Plan{
		{
			Target:      "app",
			Platform:    app,
			ActiveFlags: domain.NewFlagSet(domain.FlagModeDebug, domain.FlagCoverage),
			Actions: []domain.ActionPlan{
				{
					Kind: domain.ActionCompile,
					Args: []string{"-target", "arm64-apple-ios17.0-simulator", "-Onone", "-g"},
					Env:  map[string]string{"A": "1"},
					Invocation: domain.ToolInvocation{
						Executable:     "swiftc",
						ExecMode:       domain.ExecPersistentWorker,
						Env:            map[string]string{"TOOLCHAINS": "org.example.nightly"},
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
			Fingerprint: "deadbeef00000000",
		},
		{
			Target:      "lib",
			Platform:    host,
			ActiveFlags: domain.NewFlagSet(domain.FlagModeOpt),
			Actions: []domain.ActionPlan{
				{
					Kind: domain.ActionCompile,
					Args: []string{"-O"},
					Invocation: domain.ToolInvocation{
						Executable:     "swiftc",
						ExecMode:       domain.ExecPersistentWorker,
						AuxiliaryTools: []string{"generated-header-rewriter"},
					},
				},
			},
			Fingerprint: "0123456789abcdef",
		},
	}
}

func TestTextRenderer_Render(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	err := render.NewTextRenderer().Render(buf, fixturePlans(t))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "plans_text", buf.Bytes())
}

func TestTextRenderer_Render_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	err := render.NewTextRenderer().Render(buf, nil)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestJSONRenderer_Render(t *testing.T) {
	buf := &bytes.Buffer{}
	err := render.NewJSONRenderer().Render(buf, fixturePlans(t)[:1])
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "plans_json", buf.Bytes())
}

func TestJSONRenderer_Render_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	err := render.NewJSONRenderer().Render(buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}
