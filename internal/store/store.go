// Package store implements the portal's record store: one flat CSV table per
// record type, loaded and rewritten wholesale on every mutation.
//
// The store deliberately keeps the portal's historical persistence contract:
// there is no locking and no change log, so two concurrent savers on the same
// table are last-write-wins with silent loss of the earlier write. The design
// assumes a single writer at a time per table.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
)

// ErrUnknownTable is returned for table names the store was not built with.
var ErrUnknownTable = errors.New("unknown table")

// Row is one record keyed by column name. Values are kept as raw strings;
// rows with unparseable typed fields (dates, counts) load and save untouched
// and are only excluded from derived views that attempt parsing.
type Row map[string]string

// Table describes one flat table: its registry name, backing file and header.
type Table struct {
	Name   string
	File   string
	Header []string
}

// Store owns the backing files of a fixed set of tables under one directory.
type Store struct {
	dir    string
	tables map[string]Table
	logger zerolog.Logger
}

// New creates a store over dir for the given tables.
func New(dir string, tables []Table, logger zerolog.Logger) *Store {
	byName := make(map[string]Table, len(tables))
	for _, t := range tables {
		byName[t.Name] = t
	}
	return &Store{
		dir:    dir,
		tables: byName,
		logger: logger,
	}
}

// Initialize creates the data directory and any missing table file with its
// header row only. An existing table file is never rewritten or migrated
// here, whatever its contents.
func (s *Store) Initialize() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	for _, t := range s.tables {
		path := filepath.Join(s.dir, t.File)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat table %s: %w", t.Name, err)
		}

		if err := s.writeFile(path, t.Header, nil); err != nil {
			return fmt.Errorf("failed to initialize table %s: %w", t.Name, err)
		}
		s.logger.Info().Str("table", t.Name).Str("file", path).Msg("Initialized empty table")
	}

	return nil
}

func (s *Store) table(name string) (Table, error) {
	t, ok := s.tables[name]
	if !ok {
		return Table{}, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return t, nil
}

// Load reads a table and returns its rows in file order. Records shorter or
// longer than the header are tolerated: extra cells are dropped and missing
// cells simply leave their key unset. A load never fails on row content.
func (s *Store) Load(name string) ([]Row, error) {
	t, err := s.table(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, t.File))
	if err != nil {
		return nil, fmt.Errorf("failed to open table %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Save rewrites the whole table from rows. The write goes through a temp
// file and a rename, so a concurrent reader sees either the old file or the
// new one, never a torn write. Concurrent savers still race last-write-wins.
func (s *Store) Save(name string, rows []Row) error {
	t, err := s.table(name)
	if err != nil {
		return err
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		record := make([]string, len(t.Header))
		for i, col := range t.Header {
			record[i] = row[col]
		}
		records = append(records, record)
	}

	return s.writeFile(filepath.Join(s.dir, t.File), t.Header, records)
}

// NextID derives the next surrogate ID as current row count + 1, recomputed
// fresh on every insert. This is the portal's historical policy, not max+1:
// after a deletion the next insert reissues an ID that may still be present
// in the table.
func (s *Store) NextID(name string) (int, error) {
	rows, err := s.Load(name)
	if err != nil {
		return 0, err
	}
	return len(rows) + 1, nil
}

// Append loads a table, appends one row and rewrites it.
func (s *Store) Append(name string, row Row) error {
	rows, err := s.Load(name)
	if err != nil {
		return err
	}
	return s.Save(name, append(rows, row))
}

func (s *Store) writeFile(path string, header []string, records [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(records); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write rows: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to flush rows: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace table file: %w", err)
	}

	return nil
}

// MatchID reports whether a row's ID column equals id. Rows whose ID does
// not parse never match.
func MatchID(row Row, id int) bool {
	return row[ColID] == strconv.Itoa(id)
}
