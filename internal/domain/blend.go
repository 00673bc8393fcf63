package domain

// Blend weights for the 1Y/3Y/5Y windows. These are fixed by contract:
// the recent window dominates, and the 10Y growth column is shown but
// never blended.
const (
	blendWeight1Y = 0.5
	blendWeight3Y = 0.3
	blendWeight5Y = 0.2
)

// Blend combines a metric's 1Y/3Y/5Y values into its composite score.
// The composite is unavailable iff any input is unavailable — partial
// blends would silently mix computed and missing data, so there are
// none.
func Blend(kind MetricKind, v1, v3, v5 MetricValue) MetricValue {
	f1, ok1 := v1.Float()
	f3, ok3 := v3.Float()
	f5, ok5 := v5.Float()
	if !ok1 || !ok3 || !ok5 {
		return Unavailable(kind, WindowComposite)
	}
	score := blendWeight1Y*f1 + blendWeight3Y*f3 + blendWeight5Y*f5
	return Value(kind, WindowComposite, score)
}
