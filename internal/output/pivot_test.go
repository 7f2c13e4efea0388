package output

import (
	"testing"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/match"
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/scorefile"
)

func record(chrom string, id, effect string, weight float64, accession string) match.Record {
	return match.Record{
		Entry: scorefile.Entry{
			ChrName:      chrom,
			ChrPosition:  100,
			EffectAllele: effect,
			OtherAllele:  "G",
			EffectWeight: weight,
			EffectType:   scorefile.Additive,
			Accession:    accession,
		},
		ID:        id,
		MatchType: match.RefAlt,
	}
}

func TestPivot(t *testing.T) {
	records := []match.Record{
		record("1", "rs1", "A", 0.5, "PGS000002"),
		record("1", "rs2", "C", 0.3, "PGS000001"),
		record("1", "rs1", "A", -0.1, "PGS000001"),
	}

	table := Pivot(records)

	// Accession columns in sorted order regardless of input order.
	if len(table.Accessions) != 2 {
		t.Fatalf("got %d accession columns, want 2", len(table.Accessions))
	}
	if table.Accessions[0] != "PGS000001" || table.Accessions[1] != "PGS000002" {
		t.Errorf("accessions = %v, want [PGS000001 PGS000002]", table.Accessions)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}

	// Rows keep first-seen order.
	r := table.Rows[0]
	if r.ID != "rs1" || r.EffectAllele != "A" {
		t.Errorf("row 0 = %s/%s, want rs1/A", r.ID, r.EffectAllele)
	}
	if r.Weights[0] != -0.1 || r.Weights[1] != 0.5 {
		t.Errorf("rs1 weights = %v, want [-0.1 0.5]", r.Weights)
	}

	// Missing score contribution is zero, not a gap.
	r = table.Rows[1]
	if r.Weights[0] != 0.3 || r.Weights[1] != 0 {
		t.Errorf("rs2 weights = %v, want [0.3 0]", r.Weights)
	}
}

func TestPivot_DistinctEffectAllelesSeparateRows(t *testing.T) {
	// The same identifier with different effect alleles pivots to two
	// rows, not a merge.
	records := []match.Record{
		record("1", "1:100:A:C", "A", 0.3, "X"),
		record("1", "1:100:A:C", "C", 0.7, "Y"),
	}

	table := Pivot(records)
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
}

func TestPivot_Empty(t *testing.T) {
	table := Pivot(nil)
	if len(table.Rows) != 0 || len(table.Accessions) != 0 {
		t.Errorf("empty input produced %d rows, %d accessions", len(table.Rows), len(table.Accessions))
	}
}
