package domain

import "slices"

// Toolchain describes the external programs the orchestrator drives.
type Toolchain struct {
	// Compiler is the build command line; the target flag and mode flags are appended.
	Compiler []string
	// TargetFlag precedes the triple on the compiler command line.
	TargetFlag string
	// ReleaseFlags are appended to the compiler command line in Release mode.
	ReleaseFlags []string
	// Installer is the toolchain install command line; the triple is appended.
	Installer []string
	// InstalledMarkers are output fragments by which the installer reports that
	// the toolchain is already present. Matching is case-insensitive.
	InstalledMarkers []string
	// Clean removes previous build artifacts.
	Clean []string
	// Docs generates documentation.
	Docs []string
	// Version prints the compiler version for diagnostics.
	Version []string
	// ModeEnv is the environment variable that selects the build mode.
	ModeEnv string
}

// DefaultToolchain returns the Rust toolchain defaults.
func DefaultToolchain() Toolchain {
	return Toolchain{
		Compiler:     []string{"cargo", "build"},
		TargetFlag:   "--target",
		ReleaseFlags: []string{"--release"},
		Installer:    []string{"rustup", "target", "add"},
		InstalledMarkers: []string{
			"is up to date",
			"already installed",
		},
		Clean:   []string{"cargo", "clean"},
		Docs:    []string{"cargo", "doc", "--no-deps"},
		Version: []string{"rustc", "--version"},
		ModeEnv: DefaultModeEnv,
	}
}

// CompileCommand returns the compiler invocation for triple in mode.
// An empty triple builds for the local machine without a target flag.
// The mode variable is exported to the child so build scripts agree with the selected mode.
func (tc Toolchain) CompileCommand(triple Triple, mode BuildMode) (Command, error) {
	var extra []string
	if triple != "" {
		extra = append(extra, tc.TargetFlag, triple.String())
	}
	if mode == Release {
		extra = append(extra, tc.ReleaseFlags...)
	}

	cmd, err := NewCommand(tc.Compiler, extra...)
	if err != nil {
		return Command{}, err
	}
	if tc.ModeEnv != "" && mode == Release {
		cmd.Env = append(cmd.Env, tc.ModeEnv+"="+ReleaseModeValue)
	}
	return cmd, nil
}

// InstallCommand returns the installer invocation for triple.
func (tc Toolchain) InstallCommand(triple Triple) (Command, error) {
	return NewCommand(tc.Installer, triple.String())
}

// Merge overlays the non-empty fields of override onto tc.
func (tc Toolchain) Merge(override Toolchain) Toolchain {
	out := tc
	pick := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = slices.Clone(src)
		}
	}
	pick(&out.Compiler, override.Compiler)
	pick(&out.ReleaseFlags, override.ReleaseFlags)
	pick(&out.Installer, override.Installer)
	pick(&out.InstalledMarkers, override.InstalledMarkers)
	pick(&out.Clean, override.Clean)
	pick(&out.Docs, override.Docs)
	pick(&out.Version, override.Version)
	if override.TargetFlag != "" {
		out.TargetFlag = override.TargetFlag
	}
	if override.ModeEnv != "" {
		out.ModeEnv = override.ModeEnv
	}
	return out
}
