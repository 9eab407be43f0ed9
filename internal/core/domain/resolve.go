package domain

import "slices"

// Outcome classifies the result of resolving a selection.
type Outcome int

const (
	// OutcomeResolved means at least one registered target was selected.
	OutcomeResolved Outcome = iota
	// OutcomeNoSelection means the selection was empty; the caller builds for the local machine.
	OutcomeNoSelection
	// OutcomeNoValidTargets means a selection was given but none of its aliases is registered.
	OutcomeNoValidTargets
)

// String returns a human readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeResolved:
		return "resolved"
	case OutcomeNoSelection:
		return "no targets selected"
	case OutcomeNoValidTargets:
		return "no valid targets"
	default:
		return "unknown"
	}
}

// Resolution is the result of resolving a selection against a registry.
type Resolution struct {
	Outcome Outcome
	// Triples is ordered by first occurrence and free of duplicates.
	Triples []Triple
	// Unknown lists the selection tokens that are not registered, in selection order.
	// It is left empty when the selection contains "all".
	Unknown []string
}

// Resolve turns an operator selection into an ordered, duplicate-free list of triples.
//
// An empty selection yields OutcomeNoSelection. A selection containing "all" yields every
// registered triple in declared order. Otherwise unknown aliases are skipped and recorded
// in Unknown; if nothing known remains the outcome is OutcomeNoValidTargets.
func Resolve(selection []string, reg *Registry) Resolution {
	if len(selection) == 0 {
		return Resolution{Outcome: OutcomeNoSelection}
	}

	if slices.Contains(selection, AllTargets) {
		var triples []Triple
		for t := range reg.Targets() {
			triples = appendUnique(triples, t.Triple)
		}
		return Resolution{Outcome: OutcomeResolved, Triples: triples}
	}

	var res Resolution
	for _, token := range selection {
		triple, ok := reg.Lookup(Alias(token))
		if !ok {
			res.Unknown = append(res.Unknown, token)
			continue
		}
		res.Triples = appendUnique(res.Triples, triple)
	}

	if len(res.Triples) == 0 {
		res.Outcome = OutcomeNoValidTargets
		return res
	}

	res.Outcome = OutcomeResolved
	return res
}

func appendUnique(triples []Triple, t Triple) []Triple {
	if slices.Contains(triples, t) {
		return triples
	}
	return append(triples, t)
}
