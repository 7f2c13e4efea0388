// Package output pivots matched records into wide scorefile tables and
// writes them in the layout scoring tools consume.
package output

import (
	"sort"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/match"
)

// Table is a wide scorefile table: one row per (identifier, effect
// allele), one weight column per accession.
type Table struct {
	Accessions []string // column order, sorted
	Rows       []Row
}

// Row is one output line. Weights is parallel to Table.Accessions; an
// accession with no score contribution for this row holds zero, not a
// missing value.
type Row struct {
	ID           string
	EffectAllele string
	Weights      []float64
}

// Pivot builds a wide table from matched records. The accession column set
// is derived from the records and ordered by sorted accession name; rows
// keep first-seen order.
func Pivot(records []match.Record) *Table {
	accessionSet := make(map[string]bool)
	for _, r := range records {
		accessionSet[r.Accession] = true
	}
	accessions := make([]string, 0, len(accessionSet))
	for a := range accessionSet {
		accessions = append(accessions, a)
	}
	sort.Strings(accessions)

	colIndex := make(map[string]int, len(accessions))
	for i, a := range accessions {
		colIndex[a] = i
	}

	type rowKey struct {
		id     string
		effect string
	}
	rowIndex := make(map[rowKey]int)
	table := &Table{Accessions: accessions}

	for _, r := range records {
		k := rowKey{r.ID, r.EffectAllele}
		i, ok := rowIndex[k]
		if !ok {
			i = len(table.Rows)
			rowIndex[k] = i
			table.Rows = append(table.Rows, Row{
				ID:           r.ID,
				EffectAllele: r.EffectAllele,
				Weights:      make([]float64, len(accessions)),
			})
		}
		table.Rows[i].Weights[colIndex[r.Accession]] = r.EffectWeight
	}

	return table
}
