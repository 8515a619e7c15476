package profiling

// ColumnSummary describes one output column of a filter result
type ColumnSummary struct {
	Label    string         `json:"label"`
	Values   int            `json:"values"`    // rows in the result
	NonEmpty int            `json:"non_empty"` // rows with a value
	Numeric  int            `json:"numeric"`   // rows with a numeric value
	Distinct int            `json:"distinct"`  // distinct values, ignoring case
	Stats    *NumericSummary `json:"stats,omitempty"`
}

// NumericSummary is filled only when every non-empty value is numeric
type NumericSummary struct {
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
	Skew   float64 `json:"skew"`
}
