package ports

import (
	"time"

	"go.trai.ch/cross/internal/core/domain"
)

// Reporter presents the progress of a build run to the operator.
// It is output only and never influences control flow.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnNoSelection is called when no target was given and the local machine is built.
	OnNoSelection()

	// OnUnknownAliases is called with the selected aliases that are not registered.
	OnUnknownAliases(aliases []string)

	// OnNoValidTargets is called when none of the selected aliases is registered.
	OnNoValidTargets(selection []string)

	// OnPlan is called with the ordered triples about to be built.
	OnPlan(triples []domain.Triple, mode domain.BuildMode)

	// OnStepStart is called when a phase for a target begins.
	// id identifies the step until OnStepComplete.
	OnStepStart(id string, step domain.Step, startTime time.Time)

	// OnStepComplete is called when the step identified by id finishes.
	// err is nil on success.
	OnStepComplete(id string, endTime time.Time, err error)

	// OnRunComplete is called once at the end of a run.
	// err is nil when every target succeeded.
	OnRunComplete(report domain.Report, err error)
}
