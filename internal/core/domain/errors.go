package domain

import "errors"

var (
	// ErrUnsupportedPlatform is returned when a target triple maps to no known platform class.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrInvalidTriple is returned when a raw target triple cannot be parsed.
	ErrInvalidTriple = errors.New("invalid target triple")

	// ErrFlagConflict is returned when two mutually exclusive capability flags are both active.
	ErrFlagConflict = errors.New("mutually exclusive capability flags are both active")

	// ErrUnknownFlag is returned when a request names a capability flag that is not registered.
	ErrUnknownFlag = errors.New("unknown capability flag")

	// ErrConflictingOverride is returned when more than one toolchain override mechanism is specified.
	ErrConflictingOverride = errors.New("toolchain root and toolchain identifier are mutually exclusive")

	// ErrMissingVersion is returned when a version-gated capability is requested but the
	// tooling version does not satisfy the gate or is unknown.
	ErrMissingVersion = errors.New("tooling version does not satisfy capability gate")

	// ErrInvalidVersion is returned when a tooling version string cannot be parsed.
	ErrInvalidVersion = errors.New("invalid tooling version")

	// ErrUnknownActionKind is returned when a request names an action kind outside the closed set.
	ErrUnknownActionKind = errors.New("unknown action kind")

	// ErrUnknownBuildMode is returned when a build mode is neither debug nor optimized.
	ErrUnknownBuildMode = errors.New("unknown build mode, expected 'debug' or 'optimized'")

	// ErrNoTargetsSpecified is returned when a resolve request contains no targets.
	ErrNoTargetsSpecified = errors.New("no targets specified")

	// ErrDuplicateTargetName is returned when two targets in a request share a name.
	ErrDuplicateTargetName = errors.New("duplicate target name")

	// ErrInvalidTargetName is returned when a target name contains invalid characters.
	ErrInvalidTargetName = errors.New("target name can only contain alphanumeric characters, hyphens and underscores")

	// ErrRequestReadFailed is returned when the request file cannot be read.
	ErrRequestReadFailed = errors.New("failed to read request file")

	// ErrRequestParseFailed is returned when the request file cannot be parsed.
	ErrRequestParseFailed = errors.New("failed to parse request file")

	// ErrRequestNotFound is returned when no request file can be found.
	ErrRequestNotFound = errors.New("could not find request file")

	// ErrInvalidDefaultsPolicy is returned when a defaults policy is invalid.
	ErrInvalidDefaultsPolicy = errors.New("invalid defaults policy, expected 'full' or 'none'")

	// ErrResolutionFailed is returned when at least one target in a request failed to resolve.
	ErrResolutionFailed = errors.New("plan resolution failed")

	// ErrRegistrySealed is returned when a configurator is registered after the registry is sealed.
	ErrRegistrySealed = errors.New("configurator registry is sealed")
)
