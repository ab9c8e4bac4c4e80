// Package config provides the resolve-request loader for anvil.
package config

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// RequestFileName is the default request file searched for by Locate.
const RequestFileName = "anvil.yaml"

// Loader implements ports.RequestLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Locate returns the request file path Load would use. An explicit path wins;
// otherwise the default file name is searched for by walking up from cwd.
func (l *Loader) Locate(cwd, path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", zerr.With(domain.ErrRequestNotFound, "path", path)
		}
		return path, nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, RequestFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrRequestNotFound, "cwd", cwd)
}

// Load reads and validates the request file, returning the parsed request
// the core consumes. All file I/O for the request lives here.
func (l *Loader) Load(cwd, path string) (*domain.Request, error) {
	requestPath, err := l.Locate(cwd, path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(requestPath) //nolint:gosec // Path comes from request discovery
	if err != nil {
		return nil, zerr.Wrap(zerr.With(domain.ErrRequestReadFailed, "path", requestPath), err.Error())
	}

	var file RequestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(zerr.With(domain.ErrRequestParseFailed, "path", requestPath), err.Error())
	}

	return l.buildRequest(&file, requestPath)
}

func (l *Loader) buildRequest(file *RequestFile, requestPath string) (*domain.Request, error) {
	if len(file.Targets) == 0 {
		return nil, zerr.With(domain.ErrNoTargetsSpecified, "path", requestPath)
	}

	// Sort target names so request ordering never depends on map iteration.
	names := make([]string, 0, len(file.Targets))
	for name := range file.Targets {
		names = append(names, name)
	}
	sort.Strings(names)

	request := &domain.Request{}
	for _, name := range names {
		target, err := buildTarget(name, file.Targets[name])
		if err != nil {
			return nil, err
		}
		request.Targets = append(request.Targets, target)
	}

	return request, nil
}

func buildTarget(name string, dto *TargetDTO) (domain.Target, error) {
	if !domain.ValidTargetName(name) {
		return domain.Target{}, zerr.With(domain.ErrInvalidTargetName, "target", name)
	}
	if dto == nil {
		return domain.Target{}, zerr.With(zerr.With(domain.ErrInvalidTriple, "target", name), "triple", "")
	}

	platform, err := domain.NewPlatform(dto.Triple)
	if err != nil {
		return domain.Target{}, zerr.With(err, "target", name)
	}

	mode, err := domain.ParseBuildMode(dto.Mode)
	if err != nil {
		return domain.Target{}, zerr.With(err, "target", name)
	}

	version, err := domain.ParseToolVersion(dto.Version)
	if err != nil {
		return domain.Target{}, zerr.With(err, "target", name)
	}

	defaults, err := domain.ParseDefaultsPolicy(dto.Defaults)
	if err != nil {
		return domain.Target{}, zerr.With(err, "target", name)
	}

	target := domain.Target{
		Name:      name,
		Platform:  platform,
		Mode:      mode,
		Requested: toFlagSet(dto.Requested),
		Disabled:  toFlagSet(dto.Disabled),
		Version:   version,
		Defaults:  defaults,
	}
	if dto.Overrides != nil {
		target.Overrides = domain.Overrides{
			ToolchainRoot: dto.Overrides.ToolchainRoot,
			ToolchainID:   dto.Overrides.ToolchainID,
			ExtraArgs:     dto.Overrides.ExtraArgs,
		}
		if err := target.Overrides.Validate(); err != nil {
			return domain.Target{}, zerr.With(err, "target", name)
		}
	}

	return target, nil
}

func toFlagSet(raw []string) domain.FlagSet {
	flags := make([]domain.Flag, len(raw))
	for i, f := range raw {
		flags[i] = domain.Flag(f)
	}
	return domain.NewFlagSet(flags...)
}
