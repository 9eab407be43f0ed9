package domain

// DefaultModeEnv is the environment variable consulted to select the build mode.
const DefaultModeEnv = "BUILD_MODE"

// ReleaseModeValue is the exact value of the mode variable that selects a release build.
const ReleaseModeValue = "RELEASE"

// BuildMode selects the optimisation profile passed to the compiler.
type BuildMode int

const (
	// Debug is the default, unoptimised build mode.
	Debug BuildMode = iota
	// Release is the optimised build mode.
	Release
)

// String returns the lower-case mode name.
func (m BuildMode) String() string {
	if m == Release {
		return "release"
	}
	return "debug"
}

// LookupFunc reads a variable from an environment, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// SelectMode derives the build mode from the variable name in lookup.
// Only the exact value "RELEASE" selects Release; any other value, or absence, selects Debug.
func SelectMode(lookup LookupFunc, name string) BuildMode {
	if lookup == nil {
		return Debug
	}
	if v, ok := lookup(name); ok && v == ReleaseModeValue {
		return Release
	}
	return Debug
}
