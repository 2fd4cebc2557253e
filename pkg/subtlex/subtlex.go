// Package subtlex assigns frequency ranks from the SUBTLEX-CH spreadsheets.
// Rank is the row position among valid data rows (1 = most frequent); the
// tables carry header and corpus-metadata rows that must be skipped by
// literal match. Both spreadsheets are optional sources: when a file is
// absent the extractor degrades to an empty mapping and the pipeline simply
// emits no frequency annotations.
package subtlex

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Known non-data rows in the word table.
var wordHeaderLiterals = map[string]struct{}{
	"Word":                         {},
	"Total word count: 33,546,516": {},
	"Context number: 6,243":        {},
}

// Header row of the character table.
const charHeaderLiteral = "C"

// LoadWordRanks reads the word frequency table. The first column holds the
// word; every other column is ignored. A missing file yields an empty map.
func LoadWordRanks(path string) (map[string]int, error) {
	return loadRanks(path, func(cell string) bool {
		if cell == "" {
			return false
		}
		_, header := wordHeaderLiterals[cell]
		return !header
	})
}

// LoadCharRanks reads the character frequency table. Only rows whose first
// cell is a single character count as data rows.
func LoadCharRanks(path string) (map[string]int, error) {
	return loadRanks(path, func(cell string) bool {
		return cell != charHeaderLiteral && utf8.RuneCountInString(cell) == 1
	})
}

func loadRanks(path string, valid func(cell string) bool) (map[string]int, error) {
	ranks := make(map[string]int)
	if path == "" {
		return ranks, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ranks, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open frequency table %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read frequency table %s: %w", path, err)
	}

	rank := 0
	for _, row := range rows {
		if len(row) == 0 || !valid(row[0]) {
			continue
		}
		rank++
		ranks[row[0]] = rank
	}
	return ranks, nil
}
