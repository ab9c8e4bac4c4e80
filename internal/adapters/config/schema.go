package config

// RequestFile represents the structure of the anvil.yaml request file.
type RequestFile struct {
	Version string               `yaml:"version"`
	Targets map[string]*TargetDTO `yaml:"targets"`
}

// TargetDTO represents one target definition in the request file.
type TargetDTO struct {
	Triple    string        `yaml:"triple"`
	Mode      string        `yaml:"mode"`
	Requested []string      `yaml:"requested"`
	Disabled  []string      `yaml:"disabled"`
	Version   string        `yaml:"toolVersion"`
	Defaults  string        `yaml:"defaults"`
	Overrides *OverridesDTO `yaml:"overrides"`
}

// OverridesDTO represents user-supplied overrides for one target.
type OverridesDTO struct {
	ToolchainRoot string   `yaml:"toolchainRoot"`
	ToolchainID   string   `yaml:"toolchainId"`
	ExtraArgs     []string `yaml:"extraArgs"`
}
