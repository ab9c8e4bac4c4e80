package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ToolVersion is a parsed dotted-integer tooling version, e.g. "15.0.1".
// The zero value means "version unknown".
type ToolVersion struct {
	parts []int
	raw   string
}

// ParseToolVersion parses a dotted-integer version string.
// An empty string yields the unknown version without error.
func ParseToolVersion(raw string) (ToolVersion, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ToolVersion{}, nil
	}

	segments := strings.Split(raw, ".")
	parts := make([]int, len(segments))
	for i, seg := range segments {
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 {
			return ToolVersion{}, zerr.With(ErrInvalidVersion, "version", raw)
		}
		parts[i] = n
	}

	return ToolVersion{parts: parts, raw: raw}, nil
}

// MustToolVersion parses a version string and panics on failure.
// Only for statically known version literals such as gate tables.
func MustToolVersion(raw string) ToolVersion {
	v, err := ParseToolVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Known reports whether the version carries a value.
func (v ToolVersion) Known() bool {
	return len(v.parts) > 0
}

// String returns the original version string, or "" for the unknown version.
func (v ToolVersion) String() string {
	return v.raw
}

// Compare returns -1, 0, or +1 comparing v to other component-wise.
// Missing trailing components are treated as zero, so "15" == "15.0.0".
func (v ToolVersion) Compare(other ToolVersion) int {
	n := max(len(v.parts), len(other.parts))
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(v.parts) {
			a = v.parts[i]
		}
		if i < len(other.parts) {
			b = other.parts[i]
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// AtLeast reports whether v is known and not older than floor.
func (v ToolVersion) AtLeast(floor ToolVersion) bool {
	return v.Known() && v.Compare(floor) >= 0
}
