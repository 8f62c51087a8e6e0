package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ScoreRecord is one address's score in an export.
type ScoreRecord struct {
	Address string  `json:"address"`
	Score   float64 `json:"score"`
}

// sortedRecords orders a score map by address for stable output.
func sortedRecords(scores map[string]float64) []ScoreRecord {
	records := make([]ScoreRecord, 0, len(scores))
	for addr, score := range scores {
		records = append(records, ScoreRecord{Address: addr, Score: score})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Address < records[j].Address })
	return records
}

// WriteScoresCSV writes scores as CSV with a header row, ordered by
// address.
func WriteScoresCSV(w io.Writer, scores map[string]float64) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"address", "score"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range sortedRecords(scores) {
		row := []string{rec.Address, strconv.FormatFloat(rec.Score, 'g', -1, 64)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %q: %w", rec.Address, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteScoresJSON writes scores as an indented JSON array, ordered by
// address.
func WriteScoresJSON(w io.Writer, scores map[string]float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sortedRecords(scores))
}
