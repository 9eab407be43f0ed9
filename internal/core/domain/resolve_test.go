package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cross/internal/core/domain"
)

func exampleRegistry(t *testing.T) *domain.Registry {
	t.Helper()
	reg, err := domain.NewRegistry(
		domain.Target{Alias: "linux", Triple: "T1"},
		domain.Target{Alias: "windows", Triple: "T2"},
		domain.Target{Alias: "mac", Triple: "T3"},
	)
	require.NoError(t, err)
	return reg
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		selection   []string
		wantOutcome domain.Outcome
		wantTriples []domain.Triple
		wantUnknown []string
	}{
		{
			name:        "empty selection falls back to local",
			selection:   nil,
			wantOutcome: domain.OutcomeNoSelection,
		},
		{
			name:        "empty non-nil selection",
			selection:   []string{},
			wantOutcome: domain.OutcomeNoSelection,
		},
		{
			name:        "dedup keeps first occurrence order",
			selection:   []string{"windows", "linux", "windows"},
			wantOutcome: domain.OutcomeResolved,
			wantTriples: []domain.Triple{"T2", "T1"},
		},
		{
			name:        "all expands in registry order",
			selection:   []string{"all"},
			wantOutcome: domain.OutcomeResolved,
			wantTriples: []domain.Triple{"T1", "T2", "T3"},
		},
		{
			name:        "all ignores other tokens",
			selection:   []string{"mac", "bogus", "all", "linux"},
			wantOutcome: domain.OutcomeResolved,
			wantTriples: []domain.Triple{"T1", "T2", "T3"},
		},
		{
			name:        "all is case sensitive",
			selection:   []string{"ALL"},
			wantOutcome: domain.OutcomeNoValidTargets,
			wantUnknown: []string{"ALL"},
		},
		{
			name:        "only unknown aliases",
			selection:   []string{"bsd"},
			wantOutcome: domain.OutcomeNoValidTargets,
			wantUnknown: []string{"bsd"},
		},
		{
			name:        "unknown aliases are skipped",
			selection:   []string{"bsd", "mac", "Linux", "linux"},
			wantOutcome: domain.OutcomeResolved,
			wantTriples: []domain.Triple{"T3", "T1"},
			wantUnknown: []string{"bsd", "Linux"},
		},
	}

	reg := exampleRegistry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Resolve(tt.selection, reg)
			assert.Equal(t, tt.wantOutcome, got.Outcome)
			assert.Equal(t, tt.wantTriples, got.Triples)
			assert.Equal(t, tt.wantUnknown, got.Unknown)
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	reg := domain.DefaultRegistry()
	selection := []string{"rpi", "linux", "rpi64", "linux", "mac"}

	first := domain.Resolve(selection, reg)
	for range 20 {
		assert.Equal(t, first, domain.Resolve(selection, reg))
	}
}

func TestResolve_AllDeduplicatesSharedTriples(t *testing.T) {
	reg, err := domain.NewRegistry(
		domain.Target{Alias: "pi", Triple: "armv7"},
		domain.Target{Alias: "linux", Triple: "x86"},
		domain.Target{Alias: "rpi", Triple: "armv7"},
	)
	require.NoError(t, err)

	got := domain.Resolve([]string{"all"}, reg)
	assert.Equal(t, []domain.Triple{"armv7", "x86"}, got.Triples)

	got = domain.Resolve([]string{"rpi", "pi"}, reg)
	assert.Equal(t, []domain.Triple{"armv7"}, got.Triples)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "resolved", domain.OutcomeResolved.String())
	assert.Equal(t, "no targets selected", domain.OutcomeNoSelection.String())
	assert.Equal(t, "no valid targets", domain.OutcomeNoValidTargets.String())
	assert.Equal(t, "unknown", domain.Outcome(42).String())
}
