package domain

// Unknown is reported for diagnostic fields that could not be determined.
const Unknown = "unknown"

// Diagnostics is the bundle printed by the info command for bug reports.
type Diagnostics struct {
	Version         string
	Commit          string
	OS              string
	Arch            string
	Revision        string
	Branch          string
	CompilerVersion string
}
