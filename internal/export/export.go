// Package export serializes a report set for download: a flat comma-separated
// table and a pretty-printed JSON document. Both formats operate on whatever
// report slice the caller hands in, which is normally the currently filtered
// subset rather than the full collection.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"watchdog-go/internal/domain"
)

// FormatCSV and FormatJSON are the accepted values of the export format
// parameter.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned when the requested export format is neither
// csv nor json.
var ErrUnknownFormat = fmt.Errorf("unknown export format")

// csvHeader is the fixed column set of the delimited export, one row per
// client report.
var csvHeader = []string{"Client", "Transactions", "Total Volume", "Alerts", "Risk Level"}

// formatAmount renders a float with the fewest digits that round-trip.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ReportsCSV renders the report set as comma-separated text: a header row
// followed by one row per report. Values are joined verbatim, not
// quote-escaped, so a client name containing a comma shifts columns. That
// matches the format consumers already accept.
func ReportsCSV(reports []*domain.ClientReport) string {
	lines := make([]string, 0, len(reports)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, r := range reports {
		row := []string{
			r.ClientName,
			strconv.Itoa(r.TotalTransactions),
			formatAmount(r.TotalVolume),
			strconv.Itoa(r.AlertCount),
			r.RiskLevel.Label(),
		}
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}

// ParseReportsCSV reads the delimited export back into report values. Only
// the exported columns are recovered; client IDs are not part of the format.
func ParseReportsCSV(data string) ([]*domain.ClientReport, error) {
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")
	if len(lines) == 0 || lines[0] != strings.Join(csvHeader, ",") {
		return nil, fmt.Errorf("missing or malformed header row")
	}

	reports := make([]*domain.ClientReport, 0, len(lines)-1)
	for i, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != len(csvHeader) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+1, len(csvHeader), len(fields))
		}
		txns, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid transaction count: %w", i+1, err)
		}
		volume, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid volume: %w", i+1, err)
		}
		alerts, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid alert count: %w", i+1, err)
		}
		risk, ok := domain.ParseRiskLevel(fields[4])
		if !ok {
			return nil, fmt.Errorf("row %d: invalid risk level %q", i+1, fields[4])
		}
		reports = append(reports, &domain.ClientReport{
			ClientName:        fields[0],
			TotalTransactions: txns,
			TotalVolume:       volume,
			AlertCount:        alerts,
			RiskLevel:         risk,
		})
	}
	return reports, nil
}

// ReportsJSON renders the report set as a pretty-printed JSON array, the
// report objects verbatim.
func ReportsJSON(reports []*domain.ClientReport) ([]byte, error) {
	out, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reports: %w", err)
	}
	return out, nil
}

// Filename builds the date-stamped download name for an export, for example
// client_reports_2026-08-28.csv.
func Filename(format string, now time.Time) string {
	return fmt.Sprintf("client_reports_%s.%s", now.UTC().Format("2006-01-02"), format)
}

// ContentType returns the MIME type for an export format.
func ContentType(format string) (string, error) {
	switch format {
	case FormatCSV:
		return "text/csv; charset=utf-8", nil
	case FormatJSON:
		return "application/json", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
