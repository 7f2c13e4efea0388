package match

import (
	"go.uber.org/zap"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/scorefile"
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/target"
)

// Result holds the matches for one effect type, split by identifier
// multiplicity.
type Result struct {
	EffectType scorefile.EffectType
	Unique     []Record
	Duplicate  []Record
}

// Pipeline runs the full matching flow: hypothesis joins, ambiguity
// labeling, overlap checks, then effect-type and duplicate partitioning.
type Pipeline struct {
	minOverlap    float64
	keepAmbiguous bool
	logger        *zap.Logger
}

// NewPipeline creates a pipeline that fails when fewer than minOverlap of
// the distinct scoring variants find a match.
func NewPipeline(minOverlap float64) *Pipeline {
	return &Pipeline{
		minOverlap: minOverlap,
		logger:     zap.NewNop(),
	}
}

// SetKeepAmbiguous configures whether strand-ambiguous matches are kept
// (flagged) instead of removed.
func (p *Pipeline) SetKeepAmbiguous(keep bool) {
	p.keepAmbiguous = keep
}

// SetLogger sets the logger for run statistics.
func (p *Pipeline) SetLogger(l *zap.Logger) {
	p.logger = l
}

// Run matches entries against variants and returns one Result per effect
// type present, sorted by effect type. It fails before producing any
// result when the match set is empty or overlap is insufficient, so no
// partial output can be written from a bad run.
func (p *Pipeline) Run(entries []scorefile.Entry, variants []target.Variant) ([]Result, error) {
	raw := Match(entries, variants)
	for mt, n := range CountByType(raw) {
		p.logger.Info("hypothesis matches", zap.String("match_type", string(mt)), zap.Int("count", n))
	}

	labeled := LabelAmbiguous(raw, !p.keepAmbiguous)
	p.logger.Info("ambiguity labeling done",
		zap.Int("raw", len(raw)),
		zap.Int("kept", len(labeled)),
		zap.Bool("removed_ambiguous", !p.keepAmbiguous))

	if err := CheckOverlap(entries, labeled, p.minOverlap); err != nil {
		return nil, err
	}

	groups := SplitByEffectType(labeled)
	results := make([]Result, 0, len(groups))
	for _, et := range EffectTypes(groups) {
		unique, duplicate := SplitDuplicates(groups[et])
		p.logger.Info("effect type partition",
			zap.String("effect_type", string(et)),
			zap.Int("unique", len(unique)),
			zap.Int("duplicate", len(duplicate)))
		results = append(results, Result{EffectType: et, Unique: unique, Duplicate: duplicate})
	}

	return results, nil
}
