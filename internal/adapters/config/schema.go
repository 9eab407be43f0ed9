package config

// SupportedVersion is the only project file version understood by the loader.
const SupportedVersion = "1"

// Crossfile represents the structure of the cross.yaml project file.
type Crossfile struct {
	Version   string        `yaml:"version"`
	ModeEnv   string        `yaml:"modeEnv"`
	Targets   []TargetDTO   `yaml:"targets"`
	Toolchain *ToolchainDTO `yaml:"toolchain"`
}

// TargetDTO is one registry entry. The list order is the registry order.
type TargetDTO struct {
	Alias  string `yaml:"alias"`
	Triple string `yaml:"triple"`
}

// ToolchainDTO overrides the external commands. Omitted fields keep their defaults.
type ToolchainDTO struct {
	Compiler         []string `yaml:"compiler"`
	TargetFlag       string   `yaml:"targetFlag"`
	ReleaseFlags     []string `yaml:"releaseFlags"`
	Installer        []string `yaml:"installer"`
	InstalledMarkers []string `yaml:"installedMarkers"`
	Clean            []string `yaml:"clean"`
	Docs             []string `yaml:"docs"`
	Version          []string `yaml:"version"`
}
