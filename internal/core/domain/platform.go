package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Triple is the normalized representation of a target triple such as
// "arm64-apple-ios17.0-simulator".
type Triple struct {
	Arch        string
	Vendor      string
	OS          string
	OSVersion   string
	Environment string
}

// String reassembles the triple in canonical form.
func (t Triple) String() string {
	s := t.Arch + "-" + t.Vendor + "-" + t.OS + t.OSVersion
	if t.Environment != "" {
		s += "-" + t.Environment
	}
	return s
}

// PlatformClass identifies a known (OS, environment) combination.
type PlatformClass string

// The closed set of platform classes.
const (
	ClassMacOS            PlatformClass = "macos"
	ClassIOSDevice        PlatformClass = "ios-device"
	ClassIOSSimulator     PlatformClass = "ios-simulator"
	ClassTVOSDevice       PlatformClass = "tvos-device"
	ClassTVOSSimulator    PlatformClass = "tvos-simulator"
	ClassWatchOSDevice    PlatformClass = "watchos-device"
	ClassWatchOSSimulator PlatformClass = "watchos-simulator"
)

// PlatformClasses lists every supported class in presentation order.
var PlatformClasses = []PlatformClass{
	ClassMacOS,
	ClassIOSDevice,
	ClassIOSSimulator,
	ClassTVOSDevice,
	ClassTVOSSimulator,
	ClassWatchOSDevice,
	ClassWatchOSSimulator,
}

// platformClasses maps (OS family, environment variant) to a class.
// Unknown combinations fail classification; callers must not guess a fallback.
var platformClasses = map[[2]string]PlatformClass{
	{"macos", ""}:             ClassMacOS,
	{"ios", ""}:               ClassIOSDevice,
	{"ios", "simulator"}:      ClassIOSSimulator,
	{"tvos", ""}:              ClassTVOSDevice,
	{"tvos", "simulator"}:     ClassTVOSSimulator,
	{"watchos", ""}:           ClassWatchOSDevice,
	{"watchos", "simulator"}: ClassWatchOSSimulator,
}

// osAliases normalizes OS spellings that appear in the wild.
var osAliases = map[string]string{
	"macosx": "macos",
	"darwin": "macos",
}

// ParseTriple normalizes a raw target triple string.
// Accepted shapes are "arch-vendor-os[version]" and
// "arch-vendor-os[version]-environment".
func ParseTriple(raw string) (Triple, error) {
	parts := strings.Split(raw, "-")
	if len(parts) < 3 || len(parts) > 4 {
		return Triple{}, zerr.With(ErrInvalidTriple, "triple", raw)
	}

	for _, p := range parts {
		if p == "" {
			return Triple{}, zerr.With(ErrInvalidTriple, "triple", raw)
		}
	}

	osPart := parts[2]
	family := strings.TrimRightFunc(osPart, func(r rune) bool {
		return r >= '0' && r <= '9' || r == '.'
	})
	version := osPart[len(family):]

	if alias, ok := osAliases[family]; ok {
		family = alias
	}

	t := Triple{
		Arch:      parts[0],
		Vendor:    parts[1],
		OS:        family,
		OSVersion: version,
	}
	if len(parts) == 4 {
		t.Environment = parts[3]
	}
	return t, nil
}

// Classify maps a triple to its platform class.
// It fails with ErrUnsupportedPlatform for any (OS, environment) pair outside
// the known table.
func Classify(t Triple) (PlatformClass, error) {
	class, ok := platformClasses[[2]string{t.OS, t.Environment}]
	if !ok {
		err := zerr.With(ErrUnsupportedPlatform, "os", t.OS)
		err = zerr.With(err, "environment", t.Environment)
		return "", zerr.With(err, "triple", t.String())
	}
	return class, nil
}

// DeveloperFrameworkDir returns the SDK-relative developer framework search
// directory for the class. The host platform compiles against the SDK
// directly and has no separate developer directory; for it the empty string
// is returned, which is a valid outcome and not an error.
func DeveloperFrameworkDir(class PlatformClass) string {
	if class == ClassMacOS {
		return ""
	}
	return "Developer/Library/Frameworks"
}

// Platform bundles a parsed triple with its derived facts.
type Platform struct {
	Triple Triple
	Class  PlatformClass
}

// NewPlatform parses and classifies a raw triple in one step.
func NewPlatform(raw string) (Platform, error) {
	t, err := ParseTriple(raw)
	if err != nil {
		return Platform{}, err
	}
	class, err := Classify(t)
	if err != nil {
		return Platform{}, err
	}
	return Platform{Triple: t, Class: class}, nil
}

// DeveloperFrameworkDir returns the derived framework search directory.
func (p Platform) DeveloperFrameworkDir() string {
	return DeveloperFrameworkDir(p.Class)
}
