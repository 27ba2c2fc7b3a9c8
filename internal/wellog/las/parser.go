// Package las parses columnar LAS-style well-log text files into wellog
// datasets. Only the subset of the format needed for analysis is handled:
// section headers, curve declarations, the NULL parameter, and the ASCII
// data block.
package las

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/subsurfaceio/petrolog/internal/wellog"
)

type section int

const (
	sectionNone section = iota
	sectionVersion
	sectionWell
	sectionCurve
	sectionParameter
	sectionOther
	sectionData
)

// curveDecl is a parsed header line of the form NAME.UNIT : DESCRIPTION.
type curveDecl struct {
	name string
	unit string
}

// ParseFile reads a LAS file from disk. The well name is taken from the
// WELL parameter when present, falling back to the file name.
func ParseFile(path string) (*wellog.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open LAS file: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(strings.ToUpper(filenameBase(path)), ".LAS")
	return Parse(f, name)
}

// Parse reads LAS-formatted text and assembles a dataset. The first
// declared curve is treated as the depth track.
func Parse(r io.Reader, fallbackWell string) (*wellog.Dataset, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		current   = sectionNone
		decls     []curveDecl
		nullValue = wellog.Sentinel
		wellName  = fallbackWell
		rows      [][]float64
		pending   []float64
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "~") {
			current = classifySection(line)
			continue
		}

		switch current {
		case sectionVersion, sectionWell:
			mnem, value := parseHeaderLine(line)
			switch mnem {
			case "NULL":
				if v, err := strconv.ParseFloat(value, 64); err == nil {
					nullValue = v
				}
			case "WELL":
				if value != "" {
					wellName = value
				}
			}
		case sectionCurve:
			mnem, unit := parseCurveLine(line)
			if mnem != "" {
				decls = append(decls, curveDecl{name: mnem, unit: unit})
			}
		case sectionData:
			if len(decls) == 0 {
				return nil, fmt.Errorf("data before curve declarations: %w", wellog.ErrMalformedInput)
			}
			values, err := parseDataTokens(line, nullValue)
			if err != nil {
				return nil, err
			}
			// Wrapped files split one depth step across lines; accumulate
			// until the declared curve count is reached.
			pending = append(pending, values...)
			for len(pending) >= len(decls) {
				row := make([]float64, len(decls))
				copy(row, pending[:len(decls)])
				rows = append(rows, row)
				pending = pending[len(decls):]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read LAS data: %w", err)
	}
	if len(pending) != 0 {
		return nil, fmt.Errorf("trailing data row has %d of %d values: %w",
			len(pending), len(decls), wellog.ErrMalformedInput)
	}
	if len(decls) == 0 || len(rows) == 0 {
		return nil, fmt.Errorf("no curves or no data rows: %w", wellog.ErrMalformedInput)
	}

	axis := make(wellog.DepthAxis, len(rows))
	curves := make([]wellog.LogCurve, 0, len(decls)-1)
	for col, decl := range decls {
		samples := make([]float64, len(rows))
		for i, row := range rows {
			samples[i] = row[col]
		}
		if col == 0 {
			copy(axis, samples)
			continue
		}
		curves = append(curves, wellog.LogCurve{Name: decl.name, Unit: decl.unit, Samples: samples})
	}

	return wellog.NewDataset(wellName, axis, curves)
}

func classifySection(line string) section {
	keyword := strings.ToUpper(strings.TrimPrefix(line, "~"))
	switch {
	case strings.HasPrefix(keyword, "V"):
		return sectionVersion
	case strings.HasPrefix(keyword, "W"):
		return sectionWell
	case strings.HasPrefix(keyword, "C"):
		return sectionCurve
	case strings.HasPrefix(keyword, "P"):
		return sectionParameter
	case strings.HasPrefix(keyword, "A"):
		return sectionData
	default:
		return sectionOther
	}
}

// parseHeaderLine splits MNEM.UNIT  VALUE : DESCRIPTION, returning the
// mnemonic and the value field.
func parseHeaderLine(line string) (mnem, value string) {
	body := line
	if idx := strings.LastIndex(line, ":"); idx >= 0 {
		body = line[:idx]
	}
	dot := strings.Index(body, ".")
	if dot < 0 {
		return "", ""
	}
	mnem = strings.ToUpper(strings.TrimSpace(body[:dot]))

	rest := body[dot+1:]
	// The unit runs to the first whitespace after the dot; the value is
	// whatever follows.
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return mnem, ""
	}
	if strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, "\t") {
		// No unit attached to the dot; everything is the value.
		return mnem, strings.Join(fields, " ")
	}
	return mnem, strings.Join(fields[1:], " ")
}

// parseCurveLine handles curve declarations NAME.UNIT : DESCRIPTION.
func parseCurveLine(line string) (mnem, unit string) {
	body := line
	if idx := strings.LastIndex(line, ":"); idx >= 0 {
		body = line[:idx]
	}
	dot := strings.Index(body, ".")
	if dot < 0 {
		return strings.ToUpper(strings.TrimSpace(body)), ""
	}
	mnem = strings.ToUpper(strings.TrimSpace(body[:dot]))
	unitFields := strings.Fields(body[dot+1:])
	if len(unitFields) > 0 {
		unit = unitFields[0]
	}
	return mnem, unit
}

func parseDataTokens(line string, nullValue float64) ([]float64, error) {
	tokens := strings.Fields(line)
	values := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("bad numeric token %q: %w", tok, wellog.ErrMalformedInput)
		}
		// Normalize the file's NULL marker to the canonical sentinel.
		if math.Abs(v-nullValue) < 1e-4 {
			v = wellog.Sentinel
		}
		values = append(values, v)
	}
	return values, nil
}

func filenameBase(path string) string {
	if idx := strings.LastIndexAny(path, "/\\"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
