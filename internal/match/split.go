package match

import (
	"sort"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/scorefile"
)

// SplitByEffectType partitions records into disjoint groups keyed by
// effect type. Additive, dominant and recessive weights must be scored
// independently, so each group is processed separately downstream.
func SplitByEffectType(records []Record) map[scorefile.EffectType][]Record {
	groups := make(map[scorefile.EffectType][]Record)
	for _, r := range records {
		groups[r.EffectType] = append(groups[r.EffectType], r)
	}
	return groups
}

// EffectTypes returns the effect types present in a grouped match set in
// sorted order, for deterministic iteration.
func EffectTypes(groups map[scorefile.EffectType][]Record) []scorefile.EffectType {
	types := make([]scorefile.EffectType, 0, len(groups))
	for et := range groups {
		types = append(types, et)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// SplitDuplicates partitions records by target identifier multiplicity.
// Every record whose ID appears more than once in the input goes to the
// duplicate group; the rest go to unique. Duplicate identifiers arise when
// scoring sources assign different effect alleles to the same position,
// and downstream scoring tools demand one row per identifier.
// No record is altered, only grouped.
func SplitDuplicates(records []Record) (unique, duplicate []Record) {
	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[r.ID]++
	}
	for _, r := range records {
		if counts[r.ID] > 1 {
			duplicate = append(duplicate, r)
		} else {
			unique = append(unique, r)
		}
	}
	return unique, duplicate
}
