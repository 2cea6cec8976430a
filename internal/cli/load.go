// Package cli implements the tabula command tree and its file loaders
package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kode4food/tabula/table"
)

// Source is a set of Rows read from a file, along with the column mapping
// that names their fields
type Source struct {
	Columns table.Columns       `yaml:"columns"`
	Rows    []table.Row[string] `yaml:"rows"`
}

// Error messages
var (
	ErrUnknownFormat = errors.New("unknown file format")
	ErrNoFile        = errors.New("no input file provided")
)

// Load reads a Source from a YAML or CSV file, chosen by its extension. For
// CSV files with a header, the first record names the columns
func Load(path string, header bool) (*Source, error) {
	if path == "" {
		return nil, ErrNoFile
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML(f)
	case ".csv":
		return ReadCSV(f, header)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// ReadYAML decodes a Source document
func ReadYAML(r io.Reader) (*Source, error) {
	var res Source
	if err := yaml.NewDecoder(r).Decode(&res); err != nil {
		if errors.Is(err, io.EOF) {
			return &res, nil
		}
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return &res, nil
}

// ReadCSV decodes CSV records into a Source. Records may differ in length
func ReadCSV(r io.Reader, header bool) (*Source, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decoding csv: %w", err)
	}

	res := &Source{}
	if header && len(records) != 0 {
		res.Columns = make(table.Columns, len(records[0]))
		for i, name := range records[0] {
			res.Columns[name] = i
		}
		records = records[1:]
	}
	res.Rows = make([]table.Row[string], len(records))
	for i, rec := range records {
		res.Rows[i] = rec
	}
	return res, nil
}
