package model

import "errors"

// ErrModelUnavailable is returned by every projection path when no
// scoring model has been loaded. It always propagates to the caller;
// nothing downgrades it to a degenerate ranking.
var ErrModelUnavailable = errors.New("scoring model not loaded")

// Contract is the interface every scoring model family conforms to.
// Predict takes one feature row per team and returns one real-valued
// score per team, where lower is better.
type Contract interface {
	Predict(matrix [][]float64) ([]float64, error)

	// ExpectedColumns returns the input column layout the model was
	// fitted on. Empty means the adapter derives columns from the
	// feature rows.
	ExpectedColumns() []string

	// EncoderFor returns the fitted categorical encoder for a source
	// column, if the model carries one.
	EncoderFor(column string) (Encoder, bool)
}

// Encoder maps a categorical label to its fitted integer code.
type Encoder interface {
	// Encode returns the code for a label, or UnknownLabelCode for
	// labels not seen during fitting.
	Encode(label string) int
}

// UnknownLabelCode is the sentinel for labels the encoder was not
// fitted on.
const UnknownLabelCode = -1
