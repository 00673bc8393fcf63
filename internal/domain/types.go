package domain

import "time"

// Security identifies one listed equity by its ticker symbol.
type Security string

// PriceBar is one daily bar of a security's price history.
// Sequences of bars are always ordered ascending by date.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// LineItem is a fundamental-statement field that may be absent for a
// fiscal period. The zero value is "missing".
type LineItem struct {
	Val     float64 `json:"value"`
	Present bool    `json:"present"`
}

// Item returns a present line item.
func Item(v float64) LineItem {
	return LineItem{Val: v, Present: true}
}

// FundamentalSnapshot is one fiscal period of statement line items.
// Sequences of snapshots are ordered most-recent first.
type FundamentalSnapshot struct {
	PeriodEnd          time.Time `json:"period_end"`
	OperatingIncome    LineItem  `json:"operating_income"`
	TotalAssets        LineItem  `json:"total_assets"`
	CurrentLiabilities LineItem  `json:"current_liabilities"`
	TotalRevenue       LineItem  `json:"total_revenue"`
	CostOfRevenue      LineItem  `json:"cost_of_revenue"`
	TotalDebt          LineItem  `json:"total_debt"`
	StockholdersEquity LineItem  `json:"stockholders_equity"`
}
