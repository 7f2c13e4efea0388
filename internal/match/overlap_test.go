package match

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/scorefile"
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/target"
)

func TestCheckOverlap_NoMatches(t *testing.T) {
	entries := []scorefile.Entry{entry("1", 100, "A", "G", 0.5, scorefile.Additive, "X")}

	err := CheckOverlap(entries, nil, 0.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoMatches))
}

func TestCheckOverlap_BelowThreshold(t *testing.T) {
	entries := []scorefile.Entry{
		entry("1", 100, "A", "G", 0.5, scorefile.Additive, "X"),
		entry("1", 200, "C", "A", 0.2, scorefile.Additive, "X"),
		entry("1", 300, "G", "A", 0.1, scorefile.Additive, "X"),
	}
	variants := []target.Variant{mustVariant(t, "1", "rs1", 100, "A", "G")}

	records := LabelAmbiguous(Match(entries, variants), true)
	require.Len(t, records, 1)

	err := CheckOverlap(entries, records, 0.75)
	require.Error(t, err)

	var overlapErr *OverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, 1, overlapErr.Matched)
	assert.Equal(t, 3, overlapErr.Total)
	assert.InDelta(t, 1.0/3.0, overlapErr.Fraction(), 1e-9)
}

func TestCheckOverlap_AtThreshold(t *testing.T) {
	entries := []scorefile.Entry{
		entry("1", 100, "A", "G", 0.5, scorefile.Additive, "X"),
		entry("1", 999, "C", "A", 0.2, scorefile.Additive, "X"),
	}
	variants := []target.Variant{mustVariant(t, "1", "rs1", 100, "A", "G")}

	records := LabelAmbiguous(Match(entries, variants), true)
	assert.NoError(t, CheckOverlap(entries, records, 0.5))
}

func TestCheckOverlap_DuplicateEntriesCountOnce(t *testing.T) {
	// The same scoring variant listed twice is one distinct variant for
	// overlap accounting.
	e := entry("1", 100, "A", "G", 0.5, scorefile.Additive, "X")
	entries := []scorefile.Entry{e, e}
	variants := []target.Variant{mustVariant(t, "1", "rs1", 100, "A", "G")}

	records := LabelAmbiguous(Match(entries, variants), true)
	assert.NoError(t, CheckOverlap(entries, records, 1.0))
}

func TestPipeline_Run(t *testing.T) {
	variants := []target.Variant{
		mustVariant(t, "1", "rs1", 100, "A", "G"),
		mustVariant(t, "1", "rs2", 200, "A", "T"), // palindromic, removed
		mustVariant(t, "2", "rs3", 300, "C", "A"),
		mustVariant(t, "2", "rs4", 400, "G", "A"),
	}
	entries := []scorefile.Entry{
		entry("1", 100, "A", "G", 0.5, scorefile.Additive, "PGS000001"),
		entry("1", 200, "A", "T", 0.1, scorefile.Additive, "PGS000001"),
		entry("2", 300, "C", "A", 0.2, scorefile.Dominant, "PGS000002"),
		entry("2", 400, "G", "A", 0.3, scorefile.Additive, "PGS000002"),
	}

	p := NewPipeline(0.5)
	results, err := p.Run(entries, variants)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Sorted by effect type: additive first.
	assert.Equal(t, scorefile.Additive, results[0].EffectType)
	assert.Equal(t, scorefile.Dominant, results[1].EffectType)

	assert.Len(t, results[0].Unique, 2) // rs1 and rs4; rs2 removed as ambiguous
	assert.Empty(t, results[0].Duplicate)
	assert.Len(t, results[1].Unique, 1)
}

func TestPipeline_Run_NoMatches(t *testing.T) {
	variants := []target.Variant{mustVariant(t, "1", "rs1", 100, "A", "G")}
	entries := []scorefile.Entry{entry("22", 999, "C", "A", 0.5, scorefile.Additive, "X")}

	p := NewPipeline(0.5)
	_, err := p.Run(entries, variants)
	require.ErrorIs(t, err, ErrNoMatches)
}

func TestPipeline_Run_InsufficientOverlap(t *testing.T) {
	variants := []target.Variant{mustVariant(t, "1", "rs1", 100, "A", "G")}
	entries := []scorefile.Entry{
		entry("1", 100, "A", "G", 0.5, scorefile.Additive, "X"),
		entry("1", 200, "C", "A", 0.2, scorefile.Additive, "X"),
		entry("1", 300, "G", "A", 0.1, scorefile.Additive, "X"),
		entry("1", 400, "A", "C", 0.4, scorefile.Additive, "X"),
	}

	p := NewPipeline(0.75)
	_, err := p.Run(entries, variants)

	var overlapErr *OverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, 1, overlapErr.Matched)
	assert.Equal(t, 4, overlapErr.Total)
}

func TestPipeline_Run_KeepAmbiguous(t *testing.T) {
	variants := []target.Variant{mustVariant(t, "1", "rs2", 200, "A", "T")}
	entries := []scorefile.Entry{entry("1", 200, "A", "T", 0.1, scorefile.Additive, "X")}

	p := NewPipeline(0.5)
	p.SetKeepAmbiguous(true)
	results, err := p.Run(entries, variants)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Both hypothesis records survive with the flag set; the shared ID
	// routes them to the duplicate group.
	require.Len(t, results[0].Duplicate, 2)
	for _, r := range results[0].Duplicate {
		assert.True(t, r.Ambiguous)
	}
}
