package fundview

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/fundview/date"
	"github.com/xuri/excelize/v2"
)

// Prices holds fund prices by group and price column.
//
// A group gathers comparable funds (e.g. target date funds with the same
// target year), a column is a price flavour (e.g. before and after fees).
type Prices struct {
	columns []string
	groups  map[int]map[string]Collection // group -> column -> ticker -> series
}

// Columns returns the price columns, in file order.
func (p *Prices) Columns() []string { return slices.Clone(p.columns) }

// Groups returns the groups, sorted.
func (p *Prices) Groups() []int { return slices.Sorted(maps.Keys(p.groups)) }

// Collection returns the series of a group for one price column, keyed by ticker.
// It is empty if the group or the column is unknown.
func (p *Prices) Collection(group int, column string) Collection {
	c, ok := p.groups[group][column]
	if !ok {
		return Collection{}
	}
	return c
}

func (p *Prices) put(group int, column, ticker string, day date.Date, v float64) bool {
	cols, ok := p.groups[group]
	if !ok {
		cols = make(map[string]Collection, len(p.columns))
		p.groups[group] = cols
	}
	c, ok := cols[column]
	if !ok {
		c = make(Collection)
		cols[column] = c
	}
	s, ok := c[ticker]
	if !ok {
		s = new(Series)
		c[ticker] = s
	}
	_, exists := s.Get(day)
	s.Append(day, v)
	return !exists
}

const (
	colGroup = iota
	colTicker
	colDate
	colFirstPrice
)

// DecodePrices reads a prices table from CSV.
//
// The header is "group,ticker,date" followed by one or more price columns.
// Empty price cells are missing values.
func DecodePrices(r io.Reader) (*Prices, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return decodePrices("csv", rows)
}

// DecodePricesXLSX reads a prices table from the first sheet of a workbook.
// The table has the same layout as the CSV one.
func DecodePricesXLSX(r io.Reader) (*Prices, error) {
	rows, err := readXLSX(r)
	if err != nil {
		return nil, err
	}
	return decodePrices("xlsx", rows)
}

func decodePrices(source string, rows [][]string) (*Prices, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("format error in %q: missing header", source)
	}
	header := rows[0]
	if len(header) <= colFirstPrice {
		return nil, fmt.Errorf("format error in %q: header %q needs group, ticker, date and at least one price column", source, header)
	}

	p := &Prices{
		columns: slices.Clone(header[colFirstPrice:]),
		groups:  make(map[int]map[string]Collection),
	}
	for i, row := range rows[1:] {
		line := i + 2
		if isBlank(row) {
			continue
		}
		if len(row) < colFirstPrice {
			return nil, fmt.Errorf("format error in %q on line %d: want at least %d cells got %d", source, line, colFirstPrice, len(row))
		}
		group, err := strconv.Atoi(strings.TrimSpace(row[colGroup]))
		if err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: invalid group: %w", source, line, err)
		}
		ticker := strings.TrimSpace(row[colTicker])
		if ticker == "" {
			return nil, fmt.Errorf("format error in %q on line %d: empty ticker", source, line)
		}
		day, err := date.Parse(strings.TrimSpace(row[colDate]))
		if err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", source, line, err)
		}
		for j, column := range p.columns {
			cell := ""
			if k := colFirstPrice + j; k < len(row) {
				cell = row[k]
			}
			v, err := parsePrice(cell)
			if err != nil {
				return nil, fmt.Errorf("format error in %q on line %d column %q: %w", source, line, column, err)
			}
			if !p.put(group, column, ticker, day, v) {
				log.Printf("warning: %q line %d: duplicated price for %s on %s, keeping the last one", source, line, ticker, day)
			}
		}
	}
	return p, nil
}

// parsePrice parses a price cell, an empty cell is a missing value.
func parsePrice(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	switch strings.ToLower(cell) {
	case "", "nan", "null":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
}

// DecodeNames reads a "ticker,name" CSV table into a ticker to display name map.
func DecodeNames(r io.Reader) (map[string]string, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return decodeNames("csv", rows)
}

// DecodeNamesXLSX reads the "ticker,name" table from the first sheet of a workbook.
func DecodeNamesXLSX(r io.Reader) (map[string]string, error) {
	rows, err := readXLSX(r)
	if err != nil {
		return nil, err
	}
	return decodeNames("xlsx", rows)
}

func decodeNames(source string, rows [][]string) (map[string]string, error) {
	names := make(map[string]string)
	for i, row := range rows {
		if i == 0 || isBlank(row) {
			continue // header
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("format error in %q on line %d: want ticker and name", source, i+1)
		}
		names[strings.TrimSpace(row[0])] = strings.TrimSpace(row[1])
	}
	return names, nil
}

// DecodeRanks reads a "name,rank" CSV table.
func DecodeRanks(r io.Reader) (Ranks, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	ranks := make(Ranks)
	for i, row := range rows {
		if i == 0 || isBlank(row) {
			continue // header
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("format error in ranks on line %d: want name and rank", i+1)
		}
		rank, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("format error in ranks on line %d: %w", i+1, err)
		}
		ranks[strings.TrimSpace(row[0])] = rank
	}
	return ranks, nil
}

// LoadPrices reads a prices file, ".xlsx" files are read as workbooks and anything else as CSV.
func LoadPrices(path string) (*Prices, error) {
	return load(path, DecodePrices, DecodePricesXLSX)
}

// LoadNames reads a names file, see LoadPrices for the supported formats.
func LoadNames(path string) (map[string]string, error) {
	return load(path, DecodeNames, DecodeNamesXLSX)
}

// LoadRanks reads a CSV ranks file.
func LoadRanks(path string) (Ranks, error) {
	return load(path, DecodeRanks, nil)
}

func load[T any](path string, decodeCSV, decodeXLSX func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	decode := decodeCSV
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		if decodeXLSX == nil {
			return zero, fmt.Errorf("cannot read %q: xlsx is not supported for this table", path)
		}
		decode = decodeXLSX
	}
	v, err := decode(f)
	if err != nil {
		return zero, fmt.Errorf("cannot read %q: %w", path, err)
	}
	return v, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("invalid workbook: no sheet")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("invalid workbook sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
