package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ExecMode tags how the external executor should run a tool.
type ExecMode string

const (
	// ExecPersistentWorker keeps a long-lived process and feeds it work
	// requests, amortizing startup cost across many invocations.
	ExecPersistentWorker ExecMode = "persistent-worker"
	// ExecEphemeral spawns a fresh process per invocation.
	ExecEphemeral ExecMode = "ephemeral"
)

// ToolInvocation describes the executable, environment, and execution mode
// for one action kind. Consumed by the external executor; the resolver never
// spawns a process itself.
type ToolInvocation struct {
	Executable string
	ExecMode   ExecMode
	Env        map[string]string
	// AuxiliaryTools post-process the artifact the action produces. They are
	// never invoked standalone.
	AuxiliaryTools []string
}

// ActionPlan is the fully resolved argument list plus invocation metadata for
// one action kind. Immutable once returned.
type ActionPlan struct {
	Kind       ActionKind
	Args       []string
	Env        map[string]string
	Invocation ToolInvocation
}

// Plan is the resolved plan for one target: one ActionPlan per action kind,
// plus the active flag set and a content fingerprint.
type Plan struct {
	Target      string
	Platform    Platform
	ActiveFlags FlagSet
	Actions     []ActionPlan
	// Fingerprint is a hash of the canonical plan content. Two resolutions
	// with identical inputs must produce identical fingerprints; build
	// reproducibility depends on it.
	Fingerprint string
}

// Action returns the plan entry for a kind, or nil when absent.
func (p *Plan) Action(kind ActionKind) *ActionPlan {
	for i := range p.Actions {
		if p.Actions[i].Kind == kind {
			return &p.Actions[i]
		}
	}
	return nil
}

// ComputeFingerprint hashes the canonical serialization of the plan content.
// Environment maps are serialized in sorted key order so the digest is
// independent of map iteration order.
func (p *Plan) ComputeFingerprint() string {
	h := xxhash.New()

	writeString := func(s string) {
		_, _ = h.WriteString(s)
		_, _ = h.WriteString("\x00")
	}

	writeString(p.Target)
	writeString(p.Platform.Triple.String())
	writeString(strings.Join(p.ActiveFlags.Strings(), ","))

	for _, action := range p.Actions {
		writeString(string(action.Kind))
		writeString(strings.Join(action.Args, "\x1f"))
		writeEnv(writeString, action.Env)
		writeString(action.Invocation.Executable)
		writeString(string(action.Invocation.ExecMode))
		writeEnv(writeString, action.Invocation.Env)
		writeString(strings.Join(action.Invocation.AuxiliaryTools, "\x1f"))
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

func writeEnv(writeString func(string), env map[string]string) {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeString(k + "=" + env[k])
	}
}
