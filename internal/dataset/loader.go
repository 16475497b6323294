// Package dataset loads the bulk company dataset into memory and answers
// fuzzy name lookups against it.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Record is one normalized row of the bulk company dataset.
type Record struct {
	Name             string
	Domain           string
	YearFounded      int // 0 when absent or invalid
	Industry         string
	SizeRange        string
	Locality         string
	Country          string
	CurrentEmployees int
	TotalEmployees   int
}

// sizeRanges enumerates the fixed employee-size buckets the dataset uses.
var sizeRanges = map[string]bool{
	"1-10":       true,
	"11-50":      true,
	"51-200":     true,
	"201-500":    true,
	"501-1000":   true,
	"1001-5000":  true,
	"5001-10000": true,
	"10001+":     true,
}

// SizeUnavailable is the sentinel used when a row's size range is not one of
// the known buckets.
const SizeUnavailable = "Information not available"

// Loader reads the dataset file once and holds it for the process lifetime.
// Concurrent first loads share a single file read.
type Loader struct {
	path string

	once    sync.Once
	records []Record
}

// NewLoader creates a loader for the dataset at path. An empty path is
// allowed and behaves as an empty dataset.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the dataset records, reading the backing file on first call.
// Safe to call concurrently: callers that arrive during an in-flight load
// await that load instead of re-reading the file. A missing or unreadable
// file is not fatal; it yields an empty dataset and a log line.
func (l *Loader) Load(ctx context.Context) []Record {
	// sync.Once publishes records to every caller, including those that
	// arrive after the load completed.
	l.once.Do(func() {
		l.records = l.read()
	})
	return l.records
}

func (l *Loader) read() []Record {
	if l.path == "" {
		return nil
	}

	start := time.Now()
	f, err := os.Open(l.path)
	if err != nil {
		log.Printf("[dataset] cannot open %s: %v (continuing with empty dataset)", l.path, err)
		return nil
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		log.Printf("[dataset] cannot read header from %s: %v", l.path, err)
		return nil
	}

	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip malformed rows rather than abandoning the load.
			continue
		}

		name := getCol(row, colIdx, "name")
		if name == "" {
			continue
		}

		records = append(records, Record{
			Name:             name,
			Domain:           getCol(row, colIdx, "domain"),
			YearFounded:      parseYear(getCol(row, colIdx, "year founded")),
			Industry:         defaultString(getCol(row, colIdx, "industry"), "Technology"),
			SizeRange:        parseSizeRange(getCol(row, colIdx, "size range")),
			Locality:         getCol(row, colIdx, "locality"),
			Country:          getCol(row, colIdx, "country"),
			CurrentEmployees: parseCount(getCol(row, colIdx, "current employee estimate")),
			TotalEmployees:   parseCount(getCol(row, colIdx, "total employee estimate")),
		})
	}

	log.Printf("[dataset] loaded %d companies from %s in %v", len(records), l.path, time.Since(start))
	return records
}

func getCol(row []string, colIdx map[string]int, name string) string {
	idx, ok := colIdx[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseYear validates a founding year: integer within [1800, current year],
// anything else is treated as absent.
func parseYear(s string) int {
	if s == "" {
		return 0
	}
	// Dataset exports years as floats ("1998.0") in some dumps.
	if idx := strings.IndexByte(s, '.'); idx > 0 {
		s = s[:idx]
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	if year < 1800 || year > time.Now().Year() {
		return 0
	}
	return year
}

// parseCount validates an employee estimate: positive integer, else 0.
func parseCount(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseSizeRange(s string) string {
	if sizeRanges[s] {
		return s
	}
	return SizeUnavailable
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Stats summarizes a loaded dataset, used by the import tool.
func (l *Loader) Stats(ctx context.Context) string {
	records := l.Load(ctx)
	withYear := 0
	for _, r := range records {
		if r.YearFounded > 0 {
			withYear++
		}
	}
	return fmt.Sprintf("%d companies, %d with founding year", len(records), withYear)
}
