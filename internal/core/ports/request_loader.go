package ports

import "go.trai.ch/anvil/internal/core/domain"

// RequestLoader defines the interface for loading a resolve request.
// The core consumes only the parsed domain.Request; reading and
// deserializing the request file is the adapter's concern.
//
//go:generate mockgen -source=request_loader.go -destination=mocks/mock_request_loader.go -package=mocks
type RequestLoader interface {
	// Load reads and validates the request file at path.
	// When path is empty, the default request file is searched for by
	// walking up from cwd.
	Load(cwd, path string) (*domain.Request, error)

	// Locate returns the request file path that Load would use.
	Locate(cwd, path string) (string, error)
}
