// Copyright (c) 2026 Martin Wickman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MartinWickman/mello2026/models"
)

// Songs builds a song list from display names, indexed in column order.
func Songs(names ...string) []models.Song {
	songs := make([]models.Song, len(names))
	for i, name := range names {
		songs[i] = models.Song{Index: i, Name: name}
	}
	return songs
}

// Ballot builds one voter's ballot.
func Ballot(voter string, points ...int) models.Ballot {
	return models.Ballot{Voter: voter, Points: points}
}

// ValidPoints returns a fresh complete point sequence in descending order.
// Tests permute it to build distinct valid ballots.
func ValidPoints() []int {
	return []int{10, 8, 6, 5, 4, 3, 2, 1}
}

// FormsHeader returns a realistic export header row: a timestamp column, one
// song column per name, the voter name question, and a trailing free-text
// column that parsing must ignore.
func FormsHeader(songNames ...string) []string {
	header := []string{"Tidstämpel"}
	for _, name := range songNames {
		header = append(header, fmt.Sprintf("Lyssna, njut och poängsätt!  [%s]", name))
	}
	header = append(header, "Vad heter du? (namn)", "Säg nåt smart")
	return header
}

// BallotRow returns a data row aligned with FormsHeader: timestamp, one
// point cell per song, then the voter name. Point cells are raw strings so
// tests can exercise "10", "10p", and "10 p" spellings.
func BallotRow(voter string, points ...string) []string {
	row := []string{"2026-02-14 19:03:11"}
	row = append(row, points...)
	row = append(row, voter)
	return row
}

// TSV joins rows into tab-separated text, one line per row.
func TSV(rows ...[]string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// TempTSV writes content to a file in a test temp dir and returns its path.
func TempTSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ballots.tsv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test TSV: %v", err)
	}
	return path
}
