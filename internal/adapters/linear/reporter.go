// Package linear provides a synchronous, line-oriented run reporter.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/cross/internal/ui/output"
	"go.trai.ch/cross/internal/ui/style"
)

// localName labels steps that build for the local machine.
const localName = "local"

// Reporter implements ports.Reporter. It prints chronological progress lines
// prefixed with the target being built.
type Reporter struct {
	w      io.Writer
	output *termenv.Output

	mu    sync.Mutex
	steps map[string]stepState
}

type stepState struct {
	step      domain.Step
	startTime time.Time
}

// NewReporter creates a Reporter writing to w with the given colour profile.
func NewReporter(w io.Writer, profile termenv.Profile) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	return &Reporter{
		w:      w,
		output: output.New(w, profile),
		steps:  make(map[string]stepState),
	}
}

// OnNoSelection reports the local-machine fallback.
func (r *Reporter) OnNoSelection() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("%s No target specified, building for the local machine\n", r.warn())
}

// OnUnknownAliases reports the aliases that were skipped.
func (r *Reporter) OnUnknownAliases(aliases []string) {
	if len(aliases) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("%s Skipping unknown target(s): %s\n", r.warn(), strings.Join(aliases, ", "))
}

// OnNoValidTargets reports a selection without any registered alias.
func (r *Reporter) OnNoValidTargets(selection []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("%s No valid targets in selection: %s\n", r.fail(), strings.Join(selection, ", "))
}

// OnPlan prints the ordered targets about to be built.
func (r *Reporter) OnPlan(triples []domain.Triple, mode domain.BuildMode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(triples) == 0 {
		r.printf("Building for the local machine in %s mode\n", mode)
		return
	}

	names := make([]string, 0, len(triples))
	for _, t := range triples {
		names = append(names, t.String())
	}
	r.printf("Building %d target(s) in %s mode: %s\n", len(triples), mode, strings.Join(names, ", "))
}

// OnStepStart prints a step start message.
func (r *Reporter) OnStepStart(id string, step domain.Step, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.steps[id] = stepState{step: step, startTime: startTime}

	verb := "Compiling..."
	if step.Phase == domain.PhaseProvision {
		verb = "Installing toolchain..."
	}
	r.printf("%s %s\n", r.prefix(step), verb)
}

// OnStepComplete prints the completion status of a step.
func (r *Reporter) OnStepComplete(id string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.steps[id]
	if !ok {
		return
	}
	delete(r.steps, id)

	duration := endTime.Sub(state.startTime).Round(time.Millisecond)
	if err != nil {
		r.printf("%s %s Failed after %v: %s\n", r.prefix(state.step), r.fail(), duration, firstLine(err))
		return
	}
	r.printf("%s %s Completed in %v\n", r.prefix(state.step), r.ok(), duration)
}

// OnRunComplete prints the run summary.
func (r *Reporter) OnRunComplete(report domain.Report, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	duration := report.Duration.Round(time.Millisecond)

	if failed, ok := report.Failed(); ok {
		phase, _ := failed.Status.FailedPhase()
		r.printf("%s Build aborted: %s failed during %s (%s)\n",
			r.fail(), targetName(failed.Triple), phase, failed.Status)
		return
	}
	if err != nil {
		r.printf("%s Build aborted: %s\n", r.fail(), firstLine(err))
		return
	}
	r.printf("%s Built %d target(s) in %v (%s)\n", r.ok(), len(report.Results), duration, report.Mode)
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

func (r *Reporter) prefix(step domain.Step) string {
	return r.output.String(fmt.Sprintf("[%s]", targetName(step.Triple))).Faint().String()
}

func (r *Reporter) ok() string {
	return r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
}

func (r *Reporter) fail() string {
	return r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
}

func (r *Reporter) warn() string {
	return r.output.String(style.Warning).Foreground(termenv.ANSIYellow).String()
}

func targetName(triple domain.Triple) string {
	if triple == "" {
		return localName
	}
	return triple.String()
}

func firstLine(err error) string {
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}
