package matchdb

import (
	"context"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/match"
)

// WriteResults batch-inserts the matches of a run into DuckDB using the
// Appender API, tagging every record with the dataset label and its
// duplicate-group routing.
func (s *Store) WriteResults(dataset string, results []match.Result) error {
	total := 0
	for _, res := range results {
		total += len(res.Unique) + len(res.Duplicate)
	}
	if total == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "match_results")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, res := range results {
		if err := appendRecords(appender, dataset, res.Unique, false); err != nil {
			return err
		}
		if err := appendRecords(appender, dataset, res.Duplicate, true); err != nil {
			return err
		}
	}

	return appender.Flush()
}

func appendRecords(appender *goduckdb.Appender, dataset string, records []match.Record, isDuplicate bool) error {
	for _, r := range records {
		if err := appender.AppendRow(
			dataset, r.ChrName, r.ChrPosition, r.ID,
			r.EffectAllele, r.OtherAllele, r.EffectWeight,
			string(r.EffectType), r.Accession, string(r.MatchType),
			r.Ambiguous, isDuplicate,
		); err != nil {
			return fmt.Errorf("append match result: %w", err)
		}
	}
	return nil
}

// Count returns the number of stored match results.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM match_results").Scan(&n); err != nil {
		return 0, fmt.Errorf("count match results: %w", err)
	}
	return n, nil
}

// CountAmbiguous returns the number of stored strand-ambiguous matches.
func (s *Store) CountAmbiguous() (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM match_results WHERE ambiguous").Scan(&n); err != nil {
		return 0, fmt.Errorf("count ambiguous results: %w", err)
	}
	return n, nil
}

// LookupVariant returns the stored match types for one target identifier.
func (s *Store) LookupVariant(dataset, id string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT match_type FROM match_results WHERE dataset=? AND id=?",
		dataset, id)
	if err != nil {
		return nil, fmt.Errorf("query match results: %w", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var mt string
		if err := rows.Scan(&mt); err != nil {
			return nil, fmt.Errorf("scan match result: %w", err)
		}
		types = append(types, mt)
	}
	return types, rows.Err()
}
