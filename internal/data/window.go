package data

import (
	"time"

	"github.com/wp4032/stocks/internal/domain"
)

const daysPerYear = 365.25

// WindowStart returns the calendar start of a lookback window ending at
// now. The extra day per four years keeps multi-year windows from
// drifting short across leap years.
func WindowStart(years int, now time.Time) time.Time {
	days := years*365 + years/4
	return now.AddDate(0, 0, -days)
}

// ElapsedYears converts a calendar span to fractional years using
// 365.25-day years, the denominator all rate calculations share.
func ElapsedYears(from, to time.Time) float64 {
	return to.Sub(from).Hours() / (24 * daysPerYear)
}

// Window slices ascending bars down to those inside the lookback window
// ending at now. Empty input yields an empty slice, never an error.
func Window(bars []domain.PriceBar, years int, now time.Time) []domain.PriceBar {
	if len(bars) == 0 {
		return nil
	}
	start := WindowStart(years, now)
	lo := 0
	for lo < len(bars) && bars[lo].Date.Before(start) {
		lo++
	}
	hi := len(bars)
	for hi > lo && bars[hi-1].Date.After(now) {
		hi--
	}
	return bars[lo:hi]
}
