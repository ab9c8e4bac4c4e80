package ports

import (
	"io"

	"go.trai.ch/anvil/internal/core/domain"
)

// Renderer is the abstraction for presenting resolved plans.
// It decouples the resolution result from presentation, allowing the same
// plan set to drive human-readable output or machine-readable JSON.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render writes the plans to w. Plans are rendered in the order given;
	// callers sort them for deterministic output.
	Render(w io.Writer, plans []*domain.Plan) error
}
