package contracts

// FeatureRow is one team's resume at a (season, week) cutoff: a flat
// name -> value map of numeric resume features plus the categorical
// conference name. Rows are created fresh per computation and never
// mutated afterwards.
type FeatureRow struct {
	Team       string             `json:"team"`
	Season     int                `json:"season"`
	Week       int                `json:"week"`
	Conference string             `json:"conference"`
	Values     map[string]float64 `json:"values"`
}

// Value returns the named feature, 0 when absent.
func (r FeatureRow) Value(name string) float64 {
	return r.Values[name]
}
