package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

// Overrides carries user-supplied adjustments applied after all
// configurator-derived arguments. Under the tools' last-wins duplicate-flag
// semantics this guarantees overrides always take effect.
type Overrides struct {
	// ToolchainRoot points resolution at an alternate compiler installation
	// by filesystem path. Mutually exclusive with ToolchainID.
	ToolchainRoot string
	// ToolchainID names a registered alternate toolchain by identifier.
	// Mutually exclusive with ToolchainRoot.
	ToolchainID string
	// ExtraArgs are appended verbatim after all registry-derived arguments.
	ExtraArgs []string
}

// Validate rejects simultaneous toolchain override mechanisms.
func (o Overrides) Validate() error {
	if o.ToolchainRoot != "" && o.ToolchainID != "" {
		err := zerr.With(ErrConflictingOverride, "toolchain_root", o.ToolchainRoot)
		return zerr.With(err, "toolchain_id", o.ToolchainID)
	}
	return nil
}

// Target is one resolution unit: a named module to plan actions for.
type Target struct {
	Name      string
	Platform  Platform
	Mode      BuildMode
	Requested FlagSet
	Disabled  FlagSet
	Version   ToolVersion
	Defaults  DefaultsPolicy
	Overrides Overrides
}

// Request is a fully parsed resolve request, the only input the core
// consumes. File I/O and deserialization live in the adapters.
type Request struct {
	Targets []Target
}

var validTargetNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// ValidTargetName reports whether a target name is acceptable.
func ValidTargetName(name string) bool {
	return validTargetNameRegex.MatchString(name)
}
