package model

import "fmt"

// LinearModel is a conforming adapter for linear scoring models: a
// weight per input column plus an intercept. Lower output = better
// resume.
type LinearModel struct {
	columns   []string
	weights   map[string]float64
	intercept float64
	encoders  map[string]*LabelEncoder
}

// NewLinearModel builds a linear model over the given column layout.
func NewLinearModel(columns []string, weights map[string]float64, intercept float64, encoders map[string]*LabelEncoder) *LinearModel {
	return &LinearModel{
		columns:   columns,
		weights:   weights,
		intercept: intercept,
		encoders:  encoders,
	}
}

// Predict scores each input row. Rows must match the declared column
// layout.
func (m *LinearModel) Predict(matrix [][]float64) ([]float64, error) {
	scores := make([]float64, len(matrix))
	for i, row := range matrix {
		if len(row) != len(m.columns) {
			return nil, fmt.Errorf("row %d has %d values, model expects %d columns", i, len(row), len(m.columns))
		}
		score := m.intercept
		for j, column := range m.columns {
			score += m.weights[column] * row[j]
		}
		scores[i] = score
	}
	return scores, nil
}

// ExpectedColumns returns the fitted column layout.
func (m *LinearModel) ExpectedColumns() []string {
	return m.columns
}

// EncoderFor returns the fitted encoder for a source column.
func (m *LinearModel) EncoderFor(column string) (Encoder, bool) {
	enc, ok := m.encoders[column]
	if !ok || enc == nil {
		return nil, false
	}
	return enc, true
}
