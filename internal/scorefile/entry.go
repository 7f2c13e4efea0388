// Package scorefile reads combined scoring-file tables, one row per
// (variant, scoring source) pair.
package scorefile

import "fmt"

// EffectType is the genetic model under which a variant's weight applies.
type EffectType string

// Known effect types. Each must be scored independently downstream.
const (
	Additive  EffectType = "additive"
	Dominant  EffectType = "dominant"
	Recessive EffectType = "recessive"
)

// Entry represents one scoring-file row. Multiple entries may share
// chromosome and position when several scoring files are combined.
type Entry struct {
	ChrName      string
	ChrPosition  int64
	EffectAllele string
	OtherAllele  string
	EffectWeight float64
	EffectType   EffectType
	Accession    string
}

// ParseEffectType normalizes an effect_type column value. Combined
// scorefiles encode dominant and recessive models as boolean column names
// (is_dominant, is_recessive); plain labels are accepted too. An empty
// value defaults to additive.
func ParseEffectType(s string) (EffectType, error) {
	switch s {
	case "", "additive":
		return Additive, nil
	case "is_dominant", "dominant":
		return Dominant, nil
	case "is_recessive", "recessive":
		return Recessive, nil
	default:
		return "", fmt.Errorf("unknown effect type %q", s)
	}
}
