package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/match"
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/scorefile"
)

// Duplicate-group labels used in output filenames. Unique and duplicate
// groups get genuinely distinct names so neither file overwrites the other.
const (
	GroupUnique    = "first"
	GroupDuplicate = "dup"
)

// allChromosomes is the filename chromosome field when output is not split
// per chromosome.
const allChromosomes = "ALL"

// Filename returns the scorefile name for one output partition, e.g.
// "ALL_additive_first.scorefile" or "22_dominant_dup.scorefile".
func Filename(chrom string, effectType scorefile.EffectType, group string) string {
	return fmt.Sprintf("%s_%s_%s.scorefile", chrom, effectType, group)
}

// WriteScorefiles writes one scorefile per duplicate-status group for a
// single effect type, split per chromosome when split is true. Empty
// groups produce no file. Returns the paths written.
func WriteScorefiles(dir string, result match.Result, split bool) ([]string, error) {
	var written []string

	groups := []struct {
		label   string
		records []match.Record
	}{
		{GroupUnique, result.Unique},
		{GroupDuplicate, result.Duplicate},
	}

	for _, g := range groups {
		if len(g.records) == 0 {
			continue
		}
		for _, part := range splitByChrom(g.records, split) {
			path := filepath.Join(dir, Filename(part.chrom, result.EffectType, g.label))
			if err := writeTable(path, Pivot(part.records)); err != nil {
				return written, err
			}
			written = append(written, path)
		}
	}

	return written, nil
}

type chromPartition struct {
	chrom   string
	records []match.Record
}

// splitByChrom groups records per chromosome in sorted chromosome order,
// or returns a single ALL partition when split is false.
func splitByChrom(records []match.Record, split bool) []chromPartition {
	if !split {
		return []chromPartition{{chrom: allChromosomes, records: records}}
	}

	byChrom := make(map[string][]match.Record)
	for _, r := range records {
		byChrom[r.ChrName] = append(byChrom[r.ChrName], r)
	}

	chroms := make([]string, 0, len(byChrom))
	for c := range byChrom {
		chroms = append(chroms, c)
	}
	sort.Strings(chroms)

	parts := make([]chromPartition, 0, len(chroms))
	for _, c := range chroms {
		parts = append(parts, chromPartition{chrom: c, records: byChrom[c]})
	}
	return parts
}

func writeTable(path string, table *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scorefile: %w", err)
	}

	if err := WriteTable(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTable serializes a pivoted table as tab-delimited text with an
// "ID\teffect_allele\t<accession...>" header.
func WriteTable(w io.Writer, table *Table) error {
	bw := bufio.NewWriter(w)

	header := append([]string{"ID", "effect_allele"}, table.Accessions...)
	if _, err := bw.WriteString(strings.Join(header, "\t") + "\n"); err != nil {
		return fmt.Errorf("write scorefile header: %w", err)
	}

	for _, row := range table.Rows {
		values := make([]string, 0, len(row.Weights)+2)
		values = append(values, row.ID, row.EffectAllele)
		for _, w := range row.Weights {
			values = append(values, strconv.FormatFloat(w, 'g', -1, 64))
		}
		if _, err := bw.WriteString(strings.Join(values, "\t") + "\n"); err != nil {
			return fmt.Errorf("write scorefile row: %w", err)
		}
	}

	return bw.Flush()
}
