package match

// LabelAmbiguous marks records whose allele pair is palindromic under
// strand flipping (A/T or C/G), making the orientation undecidable from
// allele identity alone. A record is ambiguous when its effect allele also
// equals the flipped reference or flipped alternate allele of the joined
// target row, regardless of which hypothesis produced the record.
// When remove is true, ambiguous records are discarded.
// The input slice is not modified.
func LabelAmbiguous(records []Record, remove bool) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		r.Ambiguous = r.EffectAllele == r.AltFlip || r.EffectAllele == r.RefFlip
		if remove && r.Ambiguous {
			continue
		}
		out = append(out, r)
	}
	return out
}
