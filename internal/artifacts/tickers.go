// Package artifacts handles the tabular boundary of the screener: the
// ticker list going in and the ranked report coming out.
package artifacts

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/wp4032/stocks/internal/domain"
)

// DefaultTickerColumn is the header the ticker list is read from when
// no column is configured.
const DefaultTickerColumn = "Ticker"

// ReadTickers loads the security list from a CSV file, preserving file
// order. This is the one operation whose failure is fatal to a run:
// without an input list there is nothing to screen.
func ReadTickers(path, column string) ([]domain.Security, error) {
	if column == "" {
		column = DefaultTickerColumn
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ticker list: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse ticker list: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("ticker list %s is empty", path)
	}

	col := -1
	for i, name := range records[0] {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("ticker list %s has no %q column", path, column)
	}

	securities := make([]domain.Security, 0, len(records)-1)
	for _, row := range records[1:] {
		if col >= len(row) {
			continue
		}
		ticker := strings.TrimSpace(row[col])
		if ticker == "" {
			continue
		}
		securities = append(securities, domain.Security(ticker))
	}
	return securities, nil
}
