package model

import (
	"math"
	"sort"

	"github.com/gridironlabs/cfpsim/internal/contracts"
)

// conferenceEncodedColumn is the model-side encoding of the
// categorical conference column; the adapter reconstructs it at
// inference time because feature rows carry the raw name.
const (
	conferenceEncodedColumn = "conference_encoded"
	conferenceSourceColumn  = "conference"
)

// PrepareMatrix translates feature rows into the exact column layout
// the model expects. Missing expected columns and missing values are
// filled with 0; the encoded conference column is rebuilt through the
// model's encoder, with unseen conferences mapping to the unknown
// sentinel and 0 when the model carries no encoder.
func PrepareMatrix(rows []contracts.FeatureRow, m Contract) ([][]float64, []string) {
	columns := m.ExpectedColumns()
	if len(columns) == 0 {
		columns = deriveColumns(rows)
	}

	matrix := make([][]float64, len(rows))
	for i, row := range rows {
		vector := make([]float64, len(columns))
		for j, column := range columns {
			if value, ok := row.Values[column]; ok {
				if !math.IsNaN(value) {
					vector[j] = value
				}
				continue
			}
			if column == conferenceEncodedColumn {
				if enc, ok := m.EncoderFor(conferenceSourceColumn); ok {
					vector[j] = float64(enc.Encode(row.Conference))
				}
			}
		}
		matrix[i] = vector
	}

	return matrix, columns
}

// PredictRankings scores every feature row and returns entries in
// ascending score order (best first) with dense 1-based ranks. Ties
// keep input order. Fails with ErrModelUnavailable when no model is
// loaded.
func PredictRankings(rows []contracts.FeatureRow, m Contract) ([]contracts.RankingEntry, error) {
	if m == nil {
		return nil, ErrModelUnavailable
	}

	matrix, _ := PrepareMatrix(rows, m)
	scores, err := m.Predict(matrix)
	if err != nil {
		return nil, err
	}

	entries := make([]contracts.RankingEntry, len(rows))
	for i, row := range rows {
		entries[i] = contracts.RankingEntry{
			Team:           row.Team,
			PredictedScore: scores[i],
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PredictedScore < entries[j].PredictedScore
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

// PredictTopN returns the first n entries of the predicted ranking.
func PredictTopN(rows []contracts.FeatureRow, m Contract, n int) ([]contracts.RankingEntry, error) {
	entries, err := PredictRankings(rows, m)
	if err != nil {
		return nil, err
	}
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

// deriveColumns falls back to the sorted union of value names across
// rows when the model does not declare its layout.
func deriveColumns(rows []contracts.FeatureRow) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, row := range rows {
		for name := range row.Values {
			if !seen[name] {
				seen[name] = true
				columns = append(columns, name)
			}
		}
	}
	sort.Strings(columns)
	return columns
}
