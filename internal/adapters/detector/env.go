// Package detector provides environment detection for colour output selection.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// ColorMode represents the operator's colour preference.
type ColorMode int

const (
	// ColorAuto colours output only on an interactive terminal outside CI.
	ColorAuto ColorMode = iota
	// ColorAlways forces ANSI colours.
	ColorAlways
	// ColorNever disables colours.
	ColorNever
)

// ErrInvalidColorMode is returned for an unknown --color value.
var ErrInvalidColorMode = zerr.New("invalid color mode")

// Environment is the terminal state relevant to output rendering.
type Environment struct {
	IsTTY   bool
	CI      bool
	NoColor bool
}

// DetectEnvironment inspects f and the process environment.
func DetectEnvironment(f *os.File) Environment {
	return detect(f != nil && term.IsTerminal(int(f.Fd())), os.LookupEnv)
}

func detect(isTTY bool, lookup domain.LookupFunc) Environment {
	ci, _ := lookup("CI")
	noColor, _ := lookup("NO_COLOR")
	return Environment{
		IsTTY:   isTTY,
		CI:      ci == "true" || ci == "1",
		NoColor: noColor != "",
	}
}

// Profile returns the colour profile for env under mode.
// NO_COLOR always wins.
func (env Environment) Profile(mode ColorMode) termenv.Profile {
	if env.NoColor || mode == ColorNever {
		return termenv.Ascii
	}
	if mode == ColorAlways || env.CI {
		return termenv.ANSI
	}
	if env.IsTTY {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}

// ParseColorMode parses the --color flag.
// flag should be one of: "auto", "always", "never", or empty.
func ParseColorMode(flag string) (ColorMode, error) {
	switch flag {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, zerr.With(zerr.Wrap(ErrInvalidColorMode, "unknown --color value"), "value", flag)
	}
}
