package pipeline

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/wp4032/stocks/internal/domain"
	"github.com/wp4032/stocks/internal/metrics"
)

// VPCRow is one result of the volume-price-confirmation screen.
type VPCRow struct {
	Security  domain.Security
	Close     float64
	Volume    float64
	VPC       float64
	Breakout  bool
	Breakdown bool
}

// VPCScreen flags securities whose latest close clears the recent
// range on elevated volume: VPC is the latest volume relative to the
// average over the lookback, and a breakout (breakdown) needs the
// close above (below) the lookback high (low) with VPC over the
// threshold.
type VPCScreen struct {
	Prices    metrics.PriceSource
	Lookback  int     // bars preceding the latest, default 20
	Threshold float64 // minimum VPC for confirmation, default 1.5
}

func NewVPCScreen(prices metrics.PriceSource) *VPCScreen {
	return &VPCScreen{Prices: prices, Lookback: 20, Threshold: 1.5}
}

// Run screens each security in input order. Securities without enough
// history are logged and skipped, matching the screen's advisory
// nature; they carry no row.
func (s *VPCScreen) Run(ctx context.Context, securities []domain.Security) []VPCRow {
	rows := make([]VPCRow, 0, len(securities))
	for _, sec := range securities {
		row, ok := s.screenOne(ctx, sec)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *VPCScreen) screenOne(ctx context.Context, sec domain.Security) (VPCRow, bool) {
	bars, err := s.Prices.PriceHistory(ctx, string(sec), 1)
	if err != nil {
		log.Warn().Err(err).Str("symbol", string(sec)).Msg("VPC: price history unavailable")
		return VPCRow{}, false
	}
	if len(bars) < s.Lookback+1 {
		log.Debug().Str("symbol", string(sec)).Int("bars", len(bars)).Msg("VPC: not enough history")
		return VPCRow{}, false
	}

	latest := bars[len(bars)-1]
	window := bars[len(bars)-1-s.Lookback : len(bars)-1]

	var volumeSum, high, low float64
	high = window[0].Close
	low = window[0].Close
	for _, bar := range window {
		volumeSum += bar.Volume
		if bar.Close > high {
			high = bar.Close
		}
		if bar.Close < low {
			low = bar.Close
		}
	}
	avgVolume := volumeSum / float64(s.Lookback)
	if avgVolume <= 0 {
		return VPCRow{}, false
	}
	vpc := latest.Volume / avgVolume

	return VPCRow{
		Security:  sec,
		Close:     latest.Close,
		Volume:    latest.Volume,
		VPC:       vpc,
		Breakout:  latest.Close > high && vpc > s.Threshold,
		Breakdown: latest.Close < low && vpc > s.Threshold,
	}, true
}
