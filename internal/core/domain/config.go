package domain

// DefaultConfigFile is the name of the optional project file.
const DefaultConfigFile = "cross.yaml"

// Config is the per-invocation configuration: which targets exist and how to build them.
type Config struct {
	Registry  *Registry
	Toolchain Toolchain
}

// DefaultConfig returns the built-in registry and toolchain.
func DefaultConfig() *Config {
	return &Config{
		Registry:  DefaultRegistry(),
		Toolchain: DefaultToolchain(),
	}
}
