// Package render implements plan presentation: a human-readable text
// renderer for terminals and a machine-readable JSON renderer for tooling.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/ui/style"
)

// TextRenderer implements ports.Renderer with human-readable output.
type TextRenderer struct{}

// NewTextRenderer creates a new TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render writes one block per plan: the target header, active capability
// set, and per-action argument lists with invocation metadata.
func (r *TextRenderer) Render(w io.Writer, plans []*domain.Plan) error {
	for i, plan := range plans {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := r.renderPlan(w, plan); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) renderPlan(w io.Writer, plan *domain.Plan) error {
	header := style.Heading.Render(plan.Target) +
		" " + plan.Platform.Triple.String() +
		" " + style.Subtle.Render("("+plan.Fingerprint+")")
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	flags := plan.ActiveFlags.Strings()
	if _, err := fmt.Fprintln(w, "  flags:", strings.Join(flags, " ")); err != nil {
		return err
	}

	for _, action := range plan.Actions {
		label := style.ActionName.Render(string(action.Kind))
		mode := style.Subtle.Render("[" + string(action.Invocation.ExecMode) + "]")
		if _, err := fmt.Fprintf(w, "  %s %s %s\n", style.Arrow, label, mode); err != nil {
			return err
		}

		line := action.Invocation.Executable + " " + strings.Join(action.Args, " ")
		if _, err := fmt.Fprintln(w, "      "+line); err != nil {
			return err
		}

		if err := renderEnv(w, action); err != nil {
			return err
		}

		if len(action.Invocation.AuxiliaryTools) > 0 {
			tools := strings.Join(action.Invocation.AuxiliaryTools, " ")
			if _, err := fmt.Fprintln(w, "      tools: "+tools); err != nil {
				return err
			}
		}
	}

	return nil
}

func renderEnv(w io.Writer, action domain.ActionPlan) error {
	env := make(map[string]string, len(action.Env)+len(action.Invocation.Env))
	for k, v := range action.Env {
		env[k] = v
	}
	for k, v := range action.Invocation.Env {
		env[k] = v
	}
	if len(env) == 0 {
		return nil
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + env[k]
	}
	_, err := fmt.Fprintln(w, "      env: "+strings.Join(pairs, " "))
	return err
}
