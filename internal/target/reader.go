package target

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Supported target table formats.
const (
	FormatBIM  = "bim"
	FormatPVAR = "pvar"
)

// BIM column order: chromosome, ID, centimorgans, position, ref, alt.
const (
	bimColChrom = iota
	bimColID
	bimColCM
	bimColPos
	bimColRef
	bimColAlt
	bimColCount
)

// Required .pvar header columns.
const (
	ColChrom = "#CHROM"
	ColPos   = "POS"
	ColID    = "ID"
	ColRef   = "REF"
	ColAlt   = "ALT"
)

// ParseError represents an error during target table parsing with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("target parse error at line %d: %s", e.Line, e.Message)
}

// Read loads all target variants from a .bim or .pvar table.
// Supports both plain and gzipped input.
func Read(path, format string) ([]Variant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open target file: %w", err)
	}
	defer f.Close()

	r, err := maybeGzip(f)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatBIM:
		return ReadBIM(r)
	case FormatPVAR:
		return ReadPVAR(r)
	default:
		return nil, fmt.Errorf("unknown target format %q (expected %q or %q)", format, FormatBIM, FormatPVAR)
	}
}

// maybeGzip wraps f in a gzip reader when the file starts with the gzip
// magic number (0x1f, 0x8b).
func maybeGzip(f *os.File) (io.Reader, error) {
	buf := make([]byte, 2)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read target header: %w", err)
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("seek target file: %w", err)
	}

	if n == 2 && buf[0] == 0x1f && buf[1] == 0x8b {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		return gz, nil
	}
	return f, nil
}

// ReadBIM reads a headerless 6-column PLINK .bim table.
// The centimorgan column is parsed positionally and discarded.
func ReadBIM(r io.Reader) ([]Variant, error) {
	var variants []Variant

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if text == "" {
			continue
		}

		cols := strings.Split(text, "\t")
		if len(cols) < bimColCount {
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("expected %d columns, got %d", bimColCount, len(cols)),
			}
		}

		pos, err := strconv.ParseInt(cols[bimColPos], 10, 64)
		if err != nil {
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("invalid position %q", cols[bimColPos]),
			}
		}

		v, err := New(cols[bimColChrom], cols[bimColID], pos, cols[bimColRef], cols[bimColAlt])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		variants = append(variants, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read bim: %w", err)
	}

	return variants, nil
}

// ReadPVAR reads a headered PLINK2 .pvar table. Lines starting with "##"
// are header comments; the column header line starts with "#CHROM".
func ReadPVAR(r io.Reader) ([]Variant, error) {
	scanner := bufio.NewScanner(r)
	line := 0

	// Locate the column header.
	var cols map[string]int
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if text == "" || strings.HasPrefix(text, "##") {
			continue
		}
		if !strings.HasPrefix(text, ColChrom) {
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("expected header line starting with %q", ColChrom),
			}
		}
		var err error
		cols, err = parsePVARHeader(text, line)
		if err != nil {
			return nil, err
		}
		break
	}
	if cols == nil {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read pvar: %w", err)
		}
		return nil, &ParseError{Line: line, Message: "no header line found"}
	}

	var variants []Variant
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

		pos, err := strconv.ParseInt(fields[cols[ColPos]], 10, 64)
		if err != nil {
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("invalid position %q", fields[cols[ColPos]]),
			}
		}

		v, err := New(fields[cols[ColChrom]], fields[cols[ColID]], pos, fields[cols[ColRef]], fields[cols[ColAlt]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		variants = append(variants, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read pvar: %w", err)
	}

	return variants, nil
}

func parsePVARHeader(header string, line int) (map[string]int, error) {
	cols := make(map[string]int)
	for i, name := range strings.Split(header, "\t") {
		cols[name] = i
	}
	for _, required := range []string{ColChrom, ColPos, ColID, ColRef, ColAlt} {
		if _, ok := cols[required]; !ok {
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("required column %q not found in header", required),
			}
		}
	}
	return cols, nil
}
