package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Bundle is an explicitly constructed, owned model value: the trained
// estimator plus its fitted encoders and training metadata. Created
// once per process or per test and passed into the engine; no ambient
// global state.
type Bundle struct {
	Model    Contract
	Metadata map[string]string
}

// bundleFile is the on-disk JSON layout the training pipeline saves.
type bundleFile struct {
	Model struct {
		Columns   []string           `json:"columns"`
		Weights   map[string]float64 `json:"weights"`
		Intercept float64            `json:"intercept"`
	} `json:"model"`
	Encoders map[string]struct {
		Classes []string `json:"classes"`
	} `json:"encoders"`
	Metadata map[string]string `json:"metadata"`
}

// LoadBundle reads a model bundle from a JSON file.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model bundle: %w", err)
	}

	var file bundleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse model bundle: %w", err)
	}
	if len(file.Model.Columns) == 0 {
		return nil, fmt.Errorf("model bundle %s declares no columns", path)
	}

	encoders := make(map[string]*LabelEncoder, len(file.Encoders))
	for column, enc := range file.Encoders {
		encoders[column] = NewLabelEncoder(enc.Classes...)
	}

	metadata := file.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	return &Bundle{
		Model:    NewLinearModel(file.Model.Columns, file.Model.Weights, file.Model.Intercept, encoders),
		Metadata: metadata,
	}, nil
}
