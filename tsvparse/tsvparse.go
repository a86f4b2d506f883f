// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tsvparse

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MartinWickman/mello2026/models"
)

// Header markers from the Google Forms export. Song columns start with
// SongColumnPrefix and embed the display name in square brackets; the voter
// name column is the first whose header contains NameColumnMarker,
// case-insensitively.
const (
	SongColumnPrefix = "Lyssna"
	NameColumnMarker = "namn"
)

// Structural errors: the header row does not look like a Forms export.
var (
	ErrNoSongColumns = fmt.Errorf("no song columns found (expected header cells starting with %q)", SongColumnPrefix)
	ErrNoNameColumn  = fmt.Errorf("no name column found (expected a header cell containing %q)", NameColumnMarker)
)

// ParseFile opens path and parses it as a Forms TSV export.
func ParseFile(path string) ([]models.Song, []models.Ballot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open ballot file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a Forms TSV export and returns the songs in header-column
// order plus one ballot per submitted row. Rows whose first cell is blank
// were never submitted and are skipped. Any malformed point cell aborts the
// parse with an error naming the data row and song.
func Parse(r io.Reader) ([]models.Song, []models.Ballot, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1 // Forms rows can end early
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, errors.New("input is empty, expected a header row")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header row: %w", err)
	}

	songs, songCols, err := songColumns(header)
	if err != nil {
		return nil, nil, err
	}
	if len(songs) == 0 {
		return nil, nil, ErrNoSongColumns
	}

	nameCol, ok := nameColumn(header)
	if !ok {
		return nil, nil, ErrNoNameColumn
	}

	var ballots []models.Ballot
	row := 0 // 1-based data row number, header excluded
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: failed to read: %w", row, err)
		}

		// A blank leading cell marks a row that was never submitted.
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}

		ballot, err := parseBallot(record, songs, songCols, nameCol)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", row, err)
		}
		ballots = append(ballots, ballot)
	}

	return songs, ballots, nil
}

// songColumns scans the header for song cells and extracts the bracketed
// display names. Song indexes follow column order.
func songColumns(header []string) ([]models.Song, []int, error) {
	var songs []models.Song
	var cols []int
	for i, cell := range header {
		if !strings.HasPrefix(cell, SongColumnPrefix) {
			continue
		}
		name, err := bracketedName(cell)
		if err != nil {
			return nil, nil, fmt.Errorf("header column %d: %w", i+1, err)
		}
		songs = append(songs, models.Song{Index: len(songs), Name: name})
		cols = append(cols, i)
	}
	return songs, cols, nil
}

// bracketedName extracts the display name from a header cell like
// "Lyssna, njut och poängsätt!  [Song / Artist]".
func bracketedName(cell string) (string, error) {
	open := strings.Index(cell, "[")
	if open < 0 {
		return "", fmt.Errorf("song header %q has no bracketed name", cell)
	}
	end := strings.LastIndex(cell, "]")
	if end < open {
		return "", fmt.Errorf("song header %q has an unclosed bracket", cell)
	}
	name := strings.TrimSpace(cell[open+1 : end])
	if name == "" {
		return "", fmt.Errorf("song header %q has an empty bracketed name", cell)
	}
	return name, nil
}

// nameColumn finds the first header cell containing the name marker.
func nameColumn(header []string) (int, bool) {
	for i, cell := range header {
		if strings.Contains(strings.ToLower(cell), NameColumnMarker) {
			return i, true
		}
	}
	return 0, false
}

func parseBallot(record []string, songs []models.Song, songCols []int, nameCol int) (models.Ballot, error) {
	voter := models.UnknownVoter
	if nameCol < len(record) {
		if name := strings.TrimSpace(record[nameCol]); name != "" {
			voter = name
		}
	}

	var points []int
	for i, col := range songCols {
		if col >= len(record) {
			break // the row ended early; later song columns are ascending
		}
		value, err := parsePoints(record[col])
		if err != nil {
			return models.Ballot{}, fmt.Errorf("song %q: %w", songs[i].Name, err)
		}
		points = append(points, value)
	}

	return models.Ballot{Voter: voter, Points: points}, nil
}

// parsePoints converts a point cell to its integer value, stripping the
// optional "p" unit suffix: "10", "10p", and "10 p" all parse as 10.
func parsePoints(cell string) (int, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, errors.New("empty point value")
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "p"))
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad point value %q", cell)
	}
	return value, nil
}
