package model

// Metric is a result value that is either a finite number or explicitly
// unbounded. ROI and payback use the unbounded case instead of IEEE
// infinities so serialization and rendering never depend on host float
// semantics.
type Metric struct {
	Value     float64 `json:"value"`
	Unbounded bool    `json:"unbounded,omitempty"`
}

func FiniteMetric(v float64) Metric { return Metric{Value: v} }

func UnboundedMetric() Metric { return Metric{Unbounded: true} }
