package domain

import "time"

// Phase is a step of the per-target pipeline.
type Phase string

const (
	// PhaseProvision installs the toolchain for a triple.
	PhaseProvision Phase = "provision"
	// PhaseCompile invokes the compiler.
	PhaseCompile Phase = "compile"
)

// Step identifies a single phase for a single target.
// An empty Triple means the local machine.
type Step struct {
	Phase  Phase
	Triple Triple
}

// Status is the outcome of building one target.
type Status string

const (
	// StatusSuccess means the toolchain was present and compilation succeeded.
	StatusSuccess Status = "success"
	// StatusToolchainInstallFailed means provisioning failed and compilation was not attempted.
	StatusToolchainInstallFailed Status = "toolchain-install-failed"
	// StatusCompileFailed means the compiler returned failure.
	StatusCompileFailed Status = "compile-failed"
)

// BuildResult is the outcome for one attempted target.
type BuildResult struct {
	Triple Triple
	Status Status
}

// Report summarises a run. Only attempted targets appear in Results.
type Report struct {
	Mode     BuildMode
	Results  []BuildResult
	Duration time.Duration
}

// Failed returns the first unsuccessful result, if any.
func (r Report) Failed() (BuildResult, bool) {
	for _, res := range r.Results {
		if res.Status != StatusSuccess {
			return res, true
		}
	}
	return BuildResult{}, false
}

// FailedPhase maps a failure status to the phase it happened in.
func (s Status) FailedPhase() (Phase, bool) {
	switch s {
	case StatusToolchainInstallFailed:
		return PhaseProvision, true
	case StatusCompileFailed:
		return PhaseCompile, true
	default:
		return "", false
	}
}
