package match

import (
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/scorefile"
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/target"
)

// position is the equi-join key between scorefile entries and target
// variants.
type position struct {
	chrom string
	pos   int64
}

// hypothesis selects which target allele columns the entry's effect and
// other alleles must equal for a match of the given type.
type hypothesis struct {
	matchType Type
	effect    func(target.Variant) string
	other     func(target.Variant) string
}

var hypotheses = []hypothesis{
	{RefAlt, func(v target.Variant) string { return v.Ref }, func(v target.Variant) string { return v.Alt }},
	{AltRef, func(v target.Variant) string { return v.Alt }, func(v target.Variant) string { return v.Ref }},
	{RefAltFlip, func(v target.Variant) string { return v.RefFlip }, func(v target.Variant) string { return v.AltFlip }},
	{AltRefFlip, func(v target.Variant) string { return v.AltFlip }, func(v target.Variant) string { return v.RefFlip }},
}

// Match inner-joins scorefile entries against target variants on
// (chromosome, position) under each of the four allele-orientation
// hypotheses. A pair satisfying several hypotheses yields one Record per
// satisfied hypothesis; deduplication is deliberately left to ambiguity
// labeling. Output order is fixed: all refalt records first, then altref,
// refalt_flip, altref_flip, each in entry input order.
func Match(entries []scorefile.Entry, variants []target.Variant) []Record {
	index := make(map[position][]target.Variant, len(variants))
	for _, v := range variants {
		k := position{v.Chrom, v.Pos}
		index[k] = append(index[k], v)
	}

	var records []Record
	for _, h := range hypotheses {
		for _, e := range entries {
			for _, v := range index[position{e.ChrName, e.ChrPosition}] {
				if e.EffectAllele != h.effect(v) || e.OtherAllele != h.other(v) {
					continue
				}
				records = append(records, Record{
					Entry:     e,
					ID:        v.ID,
					Ref:       v.Ref,
					Alt:       v.Alt,
					RefFlip:   v.RefFlip,
					AltFlip:   v.AltFlip,
					MatchType: h.matchType,
				})
			}
		}
	}

	return records
}

// CountByType tallies records per match type.
func CountByType(records []Record) map[Type]int {
	counts := make(map[Type]int, len(hypotheses))
	for _, r := range records {
		counts[r.MatchType]++
	}
	return counts
}
