package render

import (
	"encoding/json"
	"io"

	"go.trai.ch/anvil/internal/core/domain"
)

// JSONRenderer implements ports.Renderer with machine-readable output.
type JSONRenderer struct{}

// NewJSONRenderer creates a new JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

type planJSON struct {
	Target      string       `json:"target"`
	Triple      string       `json:"triple"`
	Class       string       `json:"platformClass"`
	Flags       []string     `json:"flags"`
	Actions     []actionJSON `json:"actions"`
	Fingerprint string       `json:"fingerprint"`
}

type actionJSON struct {
	Kind           string            `json:"kind"`
	Args           []string          `json:"args"`
	Env            map[string]string `json:"env,omitempty"`
	Executable     string            `json:"executable"`
	ExecMode       string            `json:"execMode"`
	ToolEnv        map[string]string `json:"toolEnv,omitempty"`
	AuxiliaryTools []string          `json:"auxiliaryTools,omitempty"`
}

// Render writes the plans as an indented JSON array. Field order is fixed by
// the struct definitions and env maps marshal in sorted key order, so output
// is deterministic.
func (r *JSONRenderer) Render(w io.Writer, plans []*domain.Plan) error {
	out := make([]planJSON, 0, len(plans))
	for _, plan := range plans {
		p := planJSON{
			Target:      plan.Target,
			Triple:      plan.Platform.Triple.String(),
			Class:       string(plan.Platform.Class),
			Flags:       plan.ActiveFlags.Strings(),
			Fingerprint: plan.Fingerprint,
		}
		for _, action := range plan.Actions {
			p.Actions = append(p.Actions, actionJSON{
				Kind:           string(action.Kind),
				Args:           action.Args,
				Env:            action.Env,
				Executable:     action.Invocation.Executable,
				ExecMode:       string(action.Invocation.ExecMode),
				ToolEnv:        action.Invocation.Env,
				AuxiliaryTools: action.Invocation.AuxiliaryTools,
			})
		}
		out = append(out, p)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
