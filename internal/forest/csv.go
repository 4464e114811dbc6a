package forest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

const csvFieldCount = 4

// Ingest summarizes one delimited-text load.
type Ingest struct {
	Added    int
	Problems []*LineError
}

// ReadDelimited appends trees parsed from r, one
// "species,yearOfPlanting,height,growthRatePercent" record per line.
//
// Lines with the wrong field count, an unknown species or an unparseable
// number are recorded in Ingest.Problems and skipped; parsing continues with
// the next line. The returned error is non-nil only when r itself fails.
func (f *Forest) ReadDelimited(r io.Reader) (Ingest, error) {
	var result Ingest
	reader := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return result, fmt.Errorf("read delimited text: line %d: %w", lineNo, readErr)
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			tree, err := parseRecord(line)
			if err != nil {
				result.Problems = append(result.Problems, &LineError{Line: lineNo, Text: line, Err: err})
			} else {
				f.Add(tree)
				result.Added++
			}
		}
		if readErr != nil {
			return result, nil
		}
	}
}

// LoadCSV opens path and ingests it with ReadDelimited. A missing file
// returns an error wrapping ErrSourceNotFound and leaves the forest unchanged.
func (f *Forest) LoadCSV(path string) (Ingest, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Ingest{}, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return Ingest{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return f.ReadDelimited(file)
}

func parseRecord(line string) (*Tree, error) {
	fields := strings.Split(line, ",")
	if len(fields) != csvFieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrFieldCount, csvFieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	species, err := ParseSpecies(fields[0])
	if err != nil {
		return nil, err
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("year of planting %q: %w", fields[1], err)
	}
	height, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, fmt.Errorf("height %q: %w", fields[2], err)
	}
	percent, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return nil, fmt.Errorf("growth rate %q: %w", fields[3], err)
	}
	return NewTree(species, height, percent/100.0, year), nil
}
