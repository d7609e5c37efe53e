package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlabs/cfpsim/internal/contracts"
)

func featureRow(team string, values map[string]float64) contracts.FeatureRow {
	return contracts.FeatureRow{
		Team:   team,
		Season: 2024,
		Week:   10,
		Values: values,
	}
}

func TestLabelEncoder(t *testing.T) {
	enc := NewLabelEncoder("ACC", "Big Ten", "SEC")

	assert.Equal(t, 0, enc.Encode("ACC"))
	assert.Equal(t, 2, enc.Encode("SEC"))
	assert.Equal(t, UnknownLabelCode, enc.Encode("MAC"))
	assert.Equal(t, []string{"ACC", "Big Ten", "SEC"}, enc.Classes())
}

func TestLinearModelPredict(t *testing.T) {
	m := NewLinearModel(
		[]string{"wins", "losses"},
		map[string]float64{"wins": -1.0, "losses": 2.0},
		10.0,
		nil,
	)

	scores, err := m.Predict([][]float64{
		{8, 1},
		{4, 5},
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, scores[0], 1e-9)
	assert.InDelta(t, 16.0, scores[1], 1e-9)

	_, err = m.Predict([][]float64{{1, 2, 3}})
	assert.Error(t, err)
}

func TestPrepareMatrixConferenceEncoding(t *testing.T) {
	m := NewLinearModel(
		[]string{"wins", "conference_encoded"},
		map[string]float64{"wins": -1.0},
		0,
		map[string]*LabelEncoder{
			"conference": NewLabelEncoder("ACC", "SEC"),
		},
	)

	rows := []contracts.FeatureRow{
		{Team: "Georgia", Conference: "SEC", Values: map[string]float64{"wins": 9}},
		{Team: "Toledo", Conference: "MAC", Values: map[string]float64{"wins": 7}},
	}

	matrix, columns := PrepareMatrix(rows, m)
	assert.Equal(t, []string{"wins", "conference_encoded"}, columns)
	assert.Equal(t, []float64{9, 1}, matrix[0])
	// Unseen conferences map to the unknown sentinel.
	assert.Equal(t, []float64{7, float64(UnknownLabelCode)}, matrix[1])
}

func TestPrepareMatrixMissingValuesFilledWithZero(t *testing.T) {
	m := NewLinearModel(
		[]string{"wins", "sos_score", "conference_encoded"},
		nil, 0, nil,
	)

	rows := []contracts.FeatureRow{
		featureRow("Georgia", map[string]float64{"wins": 9}),
	}

	matrix, _ := PrepareMatrix(rows, m)
	// Missing column and absent encoder both fill with 0.
	assert.Equal(t, []float64{9, 0, 0}, matrix[0])
}

func TestPredictRankingsOrderAndTies(t *testing.T) {
	m := NewLinearModel(
		[]string{"wins"},
		map[string]float64{"wins": -1.0},
		0,
		nil,
	)

	rows := []contracts.FeatureRow{
		featureRow("Middle", map[string]float64{"wins": 8}),
		featureRow("TiedFirst", map[string]float64{"wins": 10}),
		featureRow("TiedSecond", map[string]float64{"wins": 10}),
	}

	entries, err := PredictRankings(rows, m)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Lower score ranks first; ties keep input order.
	assert.Equal(t, "TiedFirst", entries[0].Team)
	assert.Equal(t, "TiedSecond", entries[1].Team)
	assert.Equal(t, "Middle", entries[2].Team)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestPredictRankingsNilModel(t *testing.T) {
	_, err := PredictRankings([]contracts.FeatureRow{featureRow("Georgia", nil)}, nil)
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestPredictTopN(t *testing.T) {
	m := NewLinearModel([]string{"wins"}, map[string]float64{"wins": -1.0}, 0, nil)

	rows := []contracts.FeatureRow{
		featureRow("A", map[string]float64{"wins": 1}),
		featureRow("B", map[string]float64{"wins": 2}),
		featureRow("C", map[string]float64{"wins": 3}),
	}

	entries, err := PredictTopN(rows, m, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "C", entries[0].Team)
	assert.Equal(t, "B", entries[1].Team)
}
