package match

import (
	"errors"
	"fmt"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/scorefile"
)

// ErrNoMatches is returned when no target variant matches any scoring-file
// variant. The run must abort before writing any output.
var ErrNoMatches = errors.New("no target variants match any variants in the scoring files")

// OverlapError reports that too few scoring-file variants found a match.
type OverlapError struct {
	Matched    int
	Total      int
	MinOverlap float64
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("insufficient overlap: %d of %d scoring variants matched (%.2f < minimum %.2f)",
		e.Matched, e.Total, e.Fraction(), e.MinOverlap)
}

// Fraction returns the achieved overlap fraction.
func (e *OverlapError) Fraction() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Matched) / float64(e.Total)
}

// scoreVariant identifies a distinct scoring-file variant for overlap
// accounting.
type scoreVariant struct {
	chrom     string
	pos       int64
	effect    string
	other     string
	accession string
}

func newScoreVariant(e scorefile.Entry) scoreVariant {
	return scoreVariant{e.ChrName, e.ChrPosition, e.EffectAllele, e.OtherAllele, e.Accession}
}

// CheckOverlap verifies that at least minOverlap of the distinct
// scoring-file variants obtained a match. Returns ErrNoMatches when the
// match set is empty, an *OverlapError below the threshold, nil otherwise.
func CheckOverlap(entries []scorefile.Entry, records []Record, minOverlap float64) error {
	if len(records) == 0 {
		return ErrNoMatches
	}

	total := make(map[scoreVariant]bool, len(entries))
	for _, e := range entries {
		total[newScoreVariant(e)] = true
	}

	matched := make(map[scoreVariant]bool, len(records))
	for _, r := range records {
		v := newScoreVariant(r.Entry)
		if total[v] {
			matched[v] = true
		}
	}

	if len(total) == 0 {
		return ErrNoMatches
	}
	if fraction := float64(len(matched)) / float64(len(total)); fraction < minOverlap {
		return &OverlapError{Matched: len(matched), Total: len(total), MinOverlap: minOverlap}
	}
	return nil
}
