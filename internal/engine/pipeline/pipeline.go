// Package pipeline runs the per-target provision and compile steps.
package pipeline

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/cross/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline builds resolved targets one after another and stops at the first failure.
type Pipeline struct {
	provisioner ports.Provisioner
	compiler    ports.Compiler
	tracer      ports.Tracer
	now         func() time.Time
}

// New creates a Pipeline with the given dependencies.
func New(provisioner ports.Provisioner, compiler ports.Compiler, tracer ports.Tracer) *Pipeline {
	return &Pipeline{
		provisioner: provisioner,
		compiler:    compiler,
		tracer:      tracer,
		now:         time.Now,
	}
}

// Run builds every triple in order.
//
// An empty triples slice builds once for the local machine without provisioning.
// The returned report lists only the targets that were attempted.
func (p *Pipeline) Run(ctx context.Context, triples []domain.Triple, mode domain.BuildMode) (domain.Report, error) {
	start := p.now()
	report := domain.Report{Mode: mode}

	if len(triples) == 0 {
		err := p.step(ctx, domain.Step{Phase: domain.PhaseCompile}, func(ctx context.Context) error {
			return p.compiler.Compile(ctx, "", mode)
		})
		report.Results = append(report.Results, result("", err, domain.StatusCompileFailed))
		report.Duration = p.now().Sub(start)
		return report, annotate(err, "", domain.PhaseCompile)
	}

	for _, triple := range triples {
		if err := ctx.Err(); err != nil {
			report.Duration = p.now().Sub(start)
			return report, zerr.Wrap(err, "build cancelled")
		}

		err := p.step(ctx, domain.Step{Phase: domain.PhaseProvision, Triple: triple}, func(ctx context.Context) error {
			return p.provisioner.Ensure(ctx, triple)
		})
		if err != nil {
			report.Results = append(report.Results, result(triple, err, domain.StatusToolchainInstallFailed))
			report.Duration = p.now().Sub(start)
			return report, annotate(err, triple, domain.PhaseProvision)
		}

		err = p.step(ctx, domain.Step{Phase: domain.PhaseCompile, Triple: triple}, func(ctx context.Context) error {
			return p.compiler.Compile(ctx, triple, mode)
		})
		report.Results = append(report.Results, result(triple, err, domain.StatusCompileFailed))
		if err != nil {
			report.Duration = p.now().Sub(start)
			return report, annotate(err, triple, domain.PhaseCompile)
		}
	}

	report.Duration = p.now().Sub(start)
	return report, nil
}

// step runs fn inside a span for the given step.
func (p *Pipeline) step(ctx context.Context, step domain.Step, fn func(context.Context) error) error {
	ctx, span := p.tracer.Start(ctx, step)
	defer span.End()

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func result(triple domain.Triple, err error, failed domain.Status) domain.BuildResult {
	status := domain.StatusSuccess
	if err != nil {
		status = failed
	}
	return domain.BuildResult{Triple: triple, Status: status}
}

// annotate makes sure the failure carries its phase sentinel and location.
func annotate(err error, triple domain.Triple, phase domain.Phase) error {
	if err == nil {
		return nil
	}
	sentinel := domain.ErrCompileFailed
	if phase == domain.PhaseProvision {
		sentinel = domain.ErrToolchainInstallFailed
	}
	if !errors.Is(err, sentinel) {
		err = zerr.Wrap(errors.Join(sentinel, err), string(phase)+" failed")
	}
	err = zerr.With(err, "phase", string(phase))
	if triple != "" {
		err = zerr.With(err, "triple", triple.String())
	}
	return err
}
