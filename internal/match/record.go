// Package match joins scoring-file entries against target variants under
// four allele-orientation hypotheses and prepares the results for scoring.
package match

import (
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/scorefile"
)

// Type identifies which allele-orientation hypothesis produced a match.
type Type string

// The four allele-orientation hypotheses, tested in this order:
// effect/other against REF/ALT, ALT/REF, then the strand-flipped pairs.
const (
	RefAlt     Type = "refalt"
	AltRef     Type = "altref"
	RefAltFlip Type = "refalt_flip"
	AltRefFlip Type = "altref_flip"
)

// Record is a scoring-file entry joined to a target variant under one
// allele-orientation hypothesis. Records are created by Match, labeled
// once by LabelAmbiguous, and never mutated afterwards.
type Record struct {
	scorefile.Entry

	// Joined target variant columns.
	ID      string
	Ref     string
	Alt     string
	RefFlip string
	AltFlip string

	MatchType Type
	Ambiguous bool
}
