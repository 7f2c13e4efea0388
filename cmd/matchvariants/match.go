package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/match"
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/matchdb"
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/output"
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/scorefile"
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/target"
)

type matchOptions struct {
	dataset       string
	scorefilePath string
	targetPath    string
	targetFormat  string
	outDir        string
	matchDBPath   string
	split         bool
	verbose       bool
}

func newMatchCmd() *cobra.Command {
	var opts matchOptions

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match scoring-file variants against target variants and write scorefiles",
		Example: `  matchvariants match -d thousand_genomes -s combined.scorefile.tsv -t target.bim --format bim
  matchvariants match -d ukb -s combined.tsv -t target.pvar --format pvar --split -m 0.9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.dataset, "dataset", "d", "", "Label for the target genomic dataset (required)")
	flags.StringVarP(&opts.scorefilePath, "scorefiles", "s", "", "Combined scorefile path (required)")
	flags.StringVarP(&opts.targetPath, "target", "t", "", "Table of target genomic variants (required)")
	flags.StringVar(&opts.targetFormat, "format", target.FormatBIM, "Target table format: bim or pvar")
	flags.StringVarP(&opts.outDir, "outdir", "o", ".", "Directory for output scorefiles")
	flags.StringVar(&opts.matchDBPath, "match-db", "", "Optional DuckDB file recording every match for later inspection")
	flags.BoolVar(&opts.split, "split", false, "Split output scorefiles per chromosome")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose console logging")

	flags.Float64P("min-overlap", "m", 0.75, "Minimum proportion of scoring variants that must match")
	flags.Bool("keep-ambiguous", false, "Keep strand-ambiguous matches, flagged, instead of removing them")
	must(viper.BindPFlag("match.min_overlap", flags.Lookup("min-overlap")))
	must(viper.BindPFlag("match.keep_ambiguous", flags.Lookup("keep-ambiguous")))

	must(cmd.MarkFlagRequired("dataset"))
	must(cmd.MarkFlagRequired("scorefiles"))
	must(cmd.MarkFlagRequired("target"))

	return cmd
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func runMatch(opts matchOptions) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	minOverlap := viper.GetFloat64("match.min_overlap")
	keepAmbiguous := viper.GetBool("match.keep_ambiguous")

	variants, err := target.Read(opts.targetPath, opts.targetFormat)
	if err != nil {
		return fmt.Errorf("read target variants: %w", err)
	}
	logger.Info("loaded target variants",
		zap.String("dataset", opts.dataset),
		zap.String("path", opts.targetPath),
		zap.Int("count", len(variants)))

	entries, err := scorefile.Read(opts.scorefilePath)
	if err != nil {
		return fmt.Errorf("read scorefile: %w", err)
	}
	logger.Info("loaded scorefile entries",
		zap.String("path", opts.scorefilePath),
		zap.Int("count", len(entries)))

	pipeline := match.NewPipeline(minOverlap)
	pipeline.SetKeepAmbiguous(keepAmbiguous)
	pipeline.SetLogger(logger)

	results, err := pipeline.Run(entries, variants)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, result := range results {
		written, err := output.WriteScorefiles(opts.outDir, result, opts.split)
		if err != nil {
			return fmt.Errorf("write scorefiles for %s: %w", result.EffectType, err)
		}
		for _, path := range written {
			logger.Info("wrote scorefile",
				zap.String("effect_type", string(result.EffectType)),
				zap.String("path", path))
		}
	}

	if opts.matchDBPath != "" {
		if err := writeMatchDB(opts.matchDBPath, opts.dataset, results); err != nil {
			return err
		}
		logger.Info("wrote match database", zap.String("path", opts.matchDBPath))
	}

	return nil
}

func writeMatchDB(path, dataset string, results []match.Result) error {
	store, err := matchdb.Open(path)
	if err != nil {
		return fmt.Errorf("open match db: %w", err)
	}
	defer store.Close()

	if err := store.WriteResults(dataset, results); err != nil {
		return fmt.Errorf("write match db: %w", err)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	return cfg.Build()
}
