package calendar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Format is a calendar file format.
type Format int

// Supported calendar file formats.
const (
	FormatCSV Format = iota
	FormatJSON
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// DetectFormat determines the calendar format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// record is one calendar row: a date in DateLayout and a workday flag,
// 1 for business days and 0 otherwise.
type record struct {
	Date    string `csv:"date" json:"date" yaml:"date" toml:"date"`
	Workday int    `csv:"workday" json:"workday" yaml:"workday" toml:"workday"`
}

// document is the JSON, YAML and TOML calendar layout.
type document struct {
	Days []record `json:"days" yaml:"days" toml:"days"`
}

// LoadFile reads a calendar file, detecting its format by extension.
func LoadFile(path string) (*Table, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read calendar %s: %w", path, err)
	}
	table, err := Decode(bytes.NewReader(content), format)
	if err != nil {
		return nil, fmt.Errorf("load calendar %s: %w", path, err)
	}
	return table, nil
}

// Decode reads a calendar in the given format from r.
func Decode(r io.Reader, format Format) (*Table, error) {
	var records []record
	switch format {
	case FormatCSV:
		var rows []*record
		if err := gocsv.Unmarshal(r, &rows); err != nil {
			return nil, fmt.Errorf("csv parse error: %w", err)
		}
		for _, row := range rows {
			records = append(records, *row)
		}
	case FormatJSON:
		var doc document
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("json parse error: %w", err)
		}
		records = doc.Days
	case FormatYAML:
		var doc document
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
		records = doc.Days
	case FormatTOML:
		var doc document
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
		records = doc.Days
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return tableFromRecords(records)
}

// Encode writes the table to w in the given format.
func Encode(w io.Writer, table *Table, format Format) error {
	entries := table.Entries()
	records := make([]record, 0, len(entries))
	for _, entry := range entries {
		records = append(records, newRecord(entry))
	}
	doc := document{Days: records}

	switch format {
	case FormatCSV:
		rows := make([]*record, len(records))
		for i := range records {
			rows[i] = &records[i]
		}
		return gocsv.Marshal(rows, w)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(doc); err != nil {
			return err
		}
		return encoder.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func newRecord(entry Entry) record {
	workday := 0
	if entry.BusinessDay {
		workday = 1
	}
	return record{Date: entry.Date.Format(DateLayout), Workday: workday}
}

func (r record) entry() (Entry, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(r.Date))
	if err != nil {
		return Entry{}, fmt.Errorf("%w: date %q", ErrInvalidEntry, r.Date)
	}
	if r.Workday != 0 && r.Workday != 1 {
		return Entry{}, fmt.Errorf("%w: workday %d for %s", ErrInvalidEntry, r.Workday, r.Date)
	}
	return Entry{Date: date, BusinessDay: r.Workday == 1}, nil
}

func tableFromRecords(records []record) (*Table, error) {
	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entry, err := r.entry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return NewTable(entries)
}
