package render

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anvil/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
// The default renderer follows environment detection; commands override it
// per invocation when the user passes an explicit format flag.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return ForFormat(DetectFormat()), nil
		},
	})
}
