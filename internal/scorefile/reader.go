package scorefile

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Required combined-scorefile header columns.
const (
	ColChrName      = "chr_name"
	ColChrPosition  = "chr_position"
	ColEffectAllele = "effect_allele"
	ColOtherAllele  = "other_allele"
	ColEffectWeight = "effect_weight"
	ColEffectType   = "effect_type"
	ColAccession    = "accession"
)

var requiredColumns = []string{
	ColChrName, ColChrPosition, ColEffectAllele, ColOtherAllele,
	ColEffectWeight, ColEffectType, ColAccession,
}

// ParseError represents an error during scorefile parsing with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("scorefile parse error at line %d: %s", e.Line, e.Message)
}

// Read loads all entries from a combined scorefile at path.
// Supports both plain and gzipped input.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scorefile: %w", err)
	}
	defer f.Close()

	buf := make([]byte, 2)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read scorefile header: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("seek scorefile: %w", err)
	}

	var r io.Reader = f
	if n == 2 && buf[0] == 0x1f && buf[1] == 0x8b {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		r = gz
	}

	return ReadFrom(r)
}

// ReadFrom loads all entries from a headered tab-delimited scorefile.
// Extra columns are ignored; missing required columns are an error.
func ReadFrom(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read scorefile: %w", err)
		}
		return nil, &ParseError{Line: 0, Message: "no header line found"}
	}

	header := strings.TrimRight(scanner.Text(), "\r\n")
	cols := make(map[string]int)
	for i, name := range strings.Split(header, "\t") {
		cols[name] = i
	}
	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, &ParseError{
				Line:    1,
				Message: fmt.Sprintf("required column %q not found in header", required),
			}
		}
	}

	var entries []Entry
	line := 1
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if text == "" {
			continue
		}

		fields := strings.Split(text, "\t")
		if len(fields) < len(cols) {
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("expected %d columns, got %d", len(cols), len(fields)),
			}
		}

		pos, err := strconv.ParseInt(fields[cols[ColChrPosition]], 10, 64)
		if err != nil {
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("invalid position %q", fields[cols[ColChrPosition]]),
			}
		}

		weight, err := strconv.ParseFloat(fields[cols[ColEffectWeight]], 64)
		if err != nil {
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("invalid effect weight %q", fields[cols[ColEffectWeight]]),
			}
		}

		effectType, err := ParseEffectType(fields[cols[ColEffectType]])
		if err != nil {
			return nil, &ParseError{Line: line, Message: err.Error()}
		}

		entries = append(entries, Entry{
			ChrName:      fields[cols[ColChrName]],
			ChrPosition:  pos,
			EffectAllele: fields[cols[ColEffectAllele]],
			OtherAllele:  fields[cols[ColOtherAllele]],
			EffectWeight: weight,
			EffectType:   effectType,
			Accession:    fields[cols[ColAccession]],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read scorefile: %w", err)
	}

	return entries, nil
}
