package domain

import "math"

// MetricKind enumerates the ratio families computed per security.
type MetricKind string

const (
	KindGrowth     MetricKind = "growth"      // price CAGR
	KindROCE       MetricKind = "roce"        // return on capital employed
	KindCostMargin MetricKind = "cost_margin" // cost of revenue / total revenue
	KindDebtEquity MetricKind = "debt_equity" // total debt / stockholders equity
	KindBeta       MetricKind = "beta"        // OLS slope vs benchmark returns
)

// Percentage reports whether values of this kind render as percentages.
func (k MetricKind) Percentage() bool {
	switch k {
	case KindGrowth, KindROCE, KindCostMargin:
		return true
	}
	return false
}

// Window is a lookback horizon in calendar years. Two special horizons
// exist: TTM (most recent fiscal snapshot only) and the blended composite.
type Window int

const (
	WindowTTM       Window = 0
	Window1Y        Window = 1
	Window3Y        Window = 3
	Window5Y        Window = 5
	Window10Y       Window = 10
	WindowComposite Window = -1
)

// Label returns the column-friendly name of the window.
func (w Window) Label() string {
	switch w {
	case WindowTTM:
		return "TTM"
	case WindowComposite:
		return "Composite"
	case Window1Y:
		return "1Y"
	case Window3Y:
		return "3Y"
	case Window5Y:
		return "5Y"
	case Window10Y:
		return "10Y"
	}
	return "?"
}

// MetricKey addresses one (kind, window) cell of a SecurityRecord.
type MetricKey struct {
	Kind   MetricKind
	Window Window
}

// MetricValue is the result of one windowed ratio computation. It is
// either a finite value with available=true, or unavailable with no
// numeric payload. NaN and Inf never escape the constructors.
type MetricValue struct {
	Kind      MetricKind
	Window    Window
	value     float64
	available bool
}

// Value constructs an available MetricValue. Non-finite inputs collapse
// to Unavailable so degenerate arithmetic can never leak downstream.
func Value(kind MetricKind, window Window, v float64) MetricValue {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unavailable(kind, window)
	}
	return MetricValue{Kind: kind, Window: window, value: v, available: true}
}

// Unavailable constructs the could-not-compute sentinel for a cell.
func Unavailable(kind MetricKind, window Window) MetricValue {
	return MetricValue{Kind: kind, Window: window}
}

// Available reports whether the metric carries a value.
func (m MetricValue) Available() bool { return m.available }

// Float returns the numeric payload and whether it is available.
func (m MetricValue) Float() (float64, bool) {
	return m.value, m.available
}

// SecurityRecord is one row of the output: a security plus every
// windowed value and composite computed for it. Records are built once
// by the pipeline and never mutated afterward.
type SecurityRecord struct {
	Security Security
	Values   map[MetricKey]MetricValue
}

// NewSecurityRecord returns an empty record for a security.
func NewSecurityRecord(sec Security) SecurityRecord {
	return SecurityRecord{Security: sec, Values: make(map[MetricKey]MetricValue)}
}

// Get returns the cell for (kind, window), or Unavailable when the
// pipeline never produced one.
func (r SecurityRecord) Get(kind MetricKind, window Window) MetricValue {
	if v, ok := r.Values[MetricKey{Kind: kind, Window: window}]; ok {
		return v
	}
	return Unavailable(kind, window)
}

// Set stores one cell.
func (r SecurityRecord) Set(v MetricValue) {
	r.Values[MetricKey{Kind: v.Kind, Window: v.Window}] = v
}

// ResultTable is the ranked cross-section, one record per security.
type ResultTable []SecurityRecord

// ColumnOrder is the documented output order: ticker first, then each
// metric family from longest window down to the composite. Growth has a
// 10Y informational column and no TTM point; beta has neither.
func ColumnOrder() []MetricKey {
	cols := make([]MetricKey, 0, 24)
	add := func(kind MetricKind, windows ...Window) {
		for _, w := range windows {
			cols = append(cols, MetricKey{Kind: kind, Window: w})
		}
	}
	add(KindGrowth, Window10Y, Window5Y, Window3Y, Window1Y, WindowComposite)
	add(KindROCE, WindowTTM, Window5Y, Window3Y, Window1Y, WindowComposite)
	add(KindCostMargin, WindowTTM, Window5Y, Window3Y, Window1Y, WindowComposite)
	add(KindDebtEquity, WindowTTM, Window5Y, Window3Y, Window1Y, WindowComposite)
	add(KindBeta, Window5Y, Window3Y, Window1Y, WindowComposite)
	return cols
}

// ColumnName renders a key as a report header, e.g. "Growth_5Y".
func ColumnName(key MetricKey) string {
	names := map[MetricKind]string{
		KindGrowth:     "Growth",
		KindROCE:       "ROCE",
		KindCostMargin: "CostMargin",
		KindDebtEquity: "DebtEquity",
		KindBeta:       "Beta",
	}
	return names[key.Kind] + "_" + key.Window.Label()
}
