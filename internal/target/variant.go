// Package target provides target variant models and loaders for PLINK
// variant tables (.bim and .pvar).
package target

import (
	"fmt"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/allele"
)

// Variant represents one genotyped site in the target dataset.
// RefFlip and AltFlip are derived once at load time and never change.
type Variant struct {
	Chrom   string // Chromosome name (e.g. "1", "chr1")
	ID      string // Variant identifier (e.g. rs ID or chr:pos:ref:alt)
	Pos     int64  // 1-based genomic position
	Ref     string // Reference allele
	Alt     string // Alternate allele
	RefFlip string // Complement of Ref
	AltFlip string // Complement of Alt
}

// New builds a Variant, deriving the flipped alleles from ref and alt.
func New(chrom, id string, pos int64, ref, alt string) (Variant, error) {
	refFlip, err := allele.Complement(ref)
	if err != nil {
		return Variant{}, fmt.Errorf("variant %s: flip ref: %w", id, err)
	}
	altFlip, err := allele.Complement(alt)
	if err != nil {
		return Variant{}, fmt.Errorf("variant %s: flip alt: %w", id, err)
	}
	return Variant{
		Chrom:   chrom,
		ID:      id,
		Pos:     pos,
		Ref:     ref,
		Alt:     alt,
		RefFlip: refFlip,
		AltFlip: altFlip,
	}, nil
}
