package artifacts

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/wp4032/stocks/internal/domain"
	"github.com/wp4032/stocks/internal/pipeline"
)

// NAMarker is how unavailable values render in reports.
const NAMarker = "N/A"

// FormatValue renders one cell: percentage kinds as "12.34%", the rest
// as plain two-decimal numbers, unavailable as the N/A marker.
func FormatValue(v domain.MetricValue) string {
	f, ok := v.Float()
	if !ok {
		return NAMarker
	}
	if v.Kind.Percentage() {
		return fmt.Sprintf("%.2f%%", f*100)
	}
	return fmt.Sprintf("%.2f", f)
}

// WriteReport writes the ranked table as a timestamped CSV under dir
// and returns the path.
func WriteReport(dir string, table domain.ResultTable, now time.Time) (string, error) {
	header := []string{"Ticker"}
	for _, key := range domain.ColumnOrder() {
		header = append(header, domain.ColumnName(key))
	}

	rows := make([][]string, 0, len(table)+1)
	rows = append(rows, header)
	for _, rec := range table {
		row := make([]string, 0, len(header))
		row = append(row, string(rec.Security))
		for _, key := range domain.ColumnOrder() {
			row = append(row, FormatValue(rec.Get(key.Kind, key.Window)))
		}
		rows = append(rows, row)
	}

	name := fmt.Sprintf("stock_analysis_%s.csv", now.Format("20060102-150405"))
	return writeCSV(dir, name, rows)
}

// WriteVPCReport writes the volume-price-confirmation screen results.
func WriteVPCReport(dir string, results []pipeline.VPCRow, now time.Time) (string, error) {
	rows := make([][]string, 0, len(results)+1)
	rows = append(rows, []string{"Ticker", "Close", "Volume", "VPC", "Breakout", "Breakdown"})
	for _, r := range results {
		rows = append(rows, []string{
			string(r.Security),
			fmt.Sprintf("%.2f", r.Close),
			fmt.Sprintf("%.0f", r.Volume),
			fmt.Sprintf("%.2f", r.VPC),
			strconv.FormatBool(r.Breakout),
			strconv.FormatBool(r.Breakdown),
		})
	}

	name := fmt.Sprintf("vpc_analysis_%s.csv", now.Format("20060102-150405"))
	return writeCSV(dir, name, rows)
}

func writeCSV(dir, name string, rows [][]string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("ensure output dir: %w", err)
	}
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("write report row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush report: %w", err)
	}
	return path, nil
}
