package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"watchdog-go/internal/domain"
)

func sampleReports() []*domain.ClientReport {
	return []*domain.ClientReport{
		{ClientID: "c3", ClientName: "Offshore Holdings SA", TotalTransactions: 4, TotalVolume: 528500, AlertCount: 2, RiskLevel: domain.RiskHigh},
		{ClientID: "c1", ClientName: "Empresa Alpha Ltda", TotalTransactions: 2, TotalVolume: 195000.5, AlertCount: 1, RiskLevel: domain.RiskLow},
		{ClientID: "c2", ClientName: "Global Trading Inc", TotalTransactions: 0, TotalVolume: 0, AlertCount: 0, RiskLevel: domain.RiskMedium},
	}
}

func TestReportsCSV(t *testing.T) {
	got := ReportsCSV(sampleReports())

	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want header + 3 rows", len(lines))
	}
	if lines[0] != "Client,Transactions,Total Volume,Alerts,Risk Level" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Offshore Holdings SA,4,528500,2,HIGH" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "Empresa Alpha Ltda,2,195000.5,1,LOW" {
		t.Errorf("row 2 = %q", lines[2])
	}
	if strings.Contains(got, `"`) {
		t.Error("values must not be quote-escaped")
	}
}

func TestReportsCSV_Empty(t *testing.T) {
	got := ReportsCSV(nil)
	if got != "Client,Transactions,Total Volume,Alerts,Risk Level" {
		t.Errorf("empty export = %q, want header only", got)
	}
}

func TestParseReportsCSV_RoundTrip(t *testing.T) {
	reports := sampleReports()

	parsed, err := ParseReportsCSV(ReportsCSV(reports))
	if err != nil {
		t.Fatalf("ParseReportsCSV() error = %v", err)
	}
	if len(parsed) != len(reports) {
		t.Fatalf("parsed %d reports, want %d", len(parsed), len(reports))
	}
	for i, want := range reports {
		got := parsed[i]
		if got.ClientName != want.ClientName {
			t.Errorf("report %d: ClientName = %q, want %q", i, got.ClientName, want.ClientName)
		}
		if got.TotalTransactions != want.TotalTransactions {
			t.Errorf("report %d: TotalTransactions = %d, want %d", i, got.TotalTransactions, want.TotalTransactions)
		}
		if got.TotalVolume != want.TotalVolume {
			t.Errorf("report %d: TotalVolume = %v, want %v", i, got.TotalVolume, want.TotalVolume)
		}
		if got.AlertCount != want.AlertCount {
			t.Errorf("report %d: AlertCount = %d, want %d", i, got.AlertCount, want.AlertCount)
		}
		if got.RiskLevel != want.RiskLevel {
			t.Errorf("report %d: RiskLevel = %v, want %v", i, got.RiskLevel, want.RiskLevel)
		}
	}
}

func TestParseReportsCSV_Malformed(t *testing.T) {
	if _, err := ParseReportsCSV("not,a,header\nfoo,1,2,3,LOW"); err == nil {
		t.Error("expected error for wrong header")
	}
	if _, err := ParseReportsCSV("Client,Transactions,Total Volume,Alerts,Risk Level\nfoo,1,2"); err == nil {
		t.Error("expected error for short row")
	}
	if _, err := ParseReportsCSV("Client,Transactions,Total Volume,Alerts,Risk Level\nfoo,1,2,3,SIDEWAYS"); err == nil {
		t.Error("expected error for unknown risk label")
	}
}

func TestReportsJSON(t *testing.T) {
	out, err := ReportsJSON(sampleReports())
	if err != nil {
		t.Fatalf("ReportsJSON() error = %v", err)
	}
	if !strings.HasPrefix(string(out), "[\n  {") {
		t.Error("output should be a pretty-printed array")
	}

	var decoded []*domain.ClientReport
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("decoded %d reports, want 3", len(decoded))
	}
	if decoded[0].ClientID != "c3" {
		t.Errorf("ClientID = %q, want c3 (objects exported verbatim)", decoded[0].ClientID)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)
	if got := Filename(FormatCSV, now); got != "client_reports_2026-08-28.csv" {
		t.Errorf("Filename(csv) = %q", got)
	}
	if got := Filename(FormatJSON, now); got != "client_reports_2026-08-28.json" {
		t.Errorf("Filename(json) = %q", got)
	}
}

func TestContentType(t *testing.T) {
	if _, err := ContentType("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
	ct, err := ContentType(FormatCSV)
	if err != nil || !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("ContentType(csv) = %q, %v", ct, err)
	}
}
