package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"watchdog-go/internal/api"
	"watchdog-go/internal/config"
	"watchdog-go/internal/domain"
	"watchdog-go/internal/ingest"
	"watchdog-go/internal/notification"
	memoryqueue "watchdog-go/internal/queue/memory"
	"watchdog-go/internal/report"
	"watchdog-go/internal/screening"
	memorystor "watchdog-go/internal/store/memory"
)

// stack runs the whole service in-process: memory storage, memory queue,
// the screening processor, and the HTTP server. Requests go through
// fiber's test transport, so no socket is opened.
type stack struct {
	server *api.Server
	repos  *memorystor.Repositories
	queue  *memoryqueue.Queue
	cancel context.CancelFunc
	done   chan struct{}
}

func startStack() *stack {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	repos := memorystor.NewRepositories()
	Expect(repos.SeedReferenceData(context.Background())).To(Succeed())

	stateStore := memorystor.NewStateStore()
	msgQueue := memoryqueue.NewQueue(1000)

	engine := screening.NewEngine(repos.Rules, repos.RiskCountries, stateStore, logger)
	notifier := notification.NewStubNotifier(logger)
	processor := screening.NewProcessor(msgQueue, engine, repos.Alerts, notifier, logger)

	ingestService := ingest.NewService(msgQueue, repos.Clients, repos.Transactions, logger)
	reportService := report.NewService(repos.Clients, repos.Transactions, repos.Alerts, logger)

	server := api.NewServer(api.ServerDeps{
		Config: &config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         0,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			IdleTimeout:  5 * time.Second,
		},
		Logger:             logger,
		ClientHandler:      api.NewClientHandler(repos.Clients, logger),
		TransactionHandler: api.NewTransactionHandler(ingestService, repos.Transactions, logger),
		AlertHandler:       api.NewAlertHandler(repos.Alerts, notifier, logger),
		ReportHandler:      api.NewReportHandler(reportService, logger),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = processor.Start(ctx)
	}()

	return &stack{
		server: server,
		repos:  repos,
		queue:  msgQueue,
		cancel: cancel,
		done:   done,
	}
}

func (s *stack) stop() {
	s.cancel()
	Eventually(s.done).WithTimeout(2 * time.Second).Should(BeClosed())
}

// do performs an HTTP request against the in-process server.
func (s *stack) do(method, path string, body interface{}) *http.Response {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.server.App().Test(req, -1)
	Expect(err).NotTo(HaveOccurred())
	return resp
}

// decode reads the response envelope and unmarshals the data field.
func decode(resp *http.Response, target interface{}) {
	defer resp.Body.Close()

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	Expect(json.NewDecoder(resp.Body).Decode(&env)).To(Succeed())
	Expect(env.Success).To(BeTrue())
	if target != nil {
		Expect(json.Unmarshal(env.Data, target)).To(Succeed())
	}
}

func (s *stack) createClient(name, country string) string {
	resp := s.do("POST", "/v1/clients", map[string]interface{}{
		"name":       name,
		"country":    country,
		"risk_level": domain.RiskLow.Code(),
		"kyc_status": domain.KYCVerified.Code(),
	})
	Expect(resp.StatusCode).To(Equal(http.StatusCreated))

	var client struct {
		ID string `json:"id"`
	}
	decode(resp, &client)
	return client.ID
}

func (s *stack) postTransaction(clientID string, amount float64, country string) {
	body := map[string]interface{}{
		"client_id":     clientID,
		"type":          domain.TypeTransfer.Code(),
		"amount":        amount,
		"currency_code": "USD",
		"counterparty":  "Counterparty Ltd",
	}
	if country != "" {
		body["counterparty_country"] = country
	}

	resp := s.do("POST", "/v1/transactions", body)
	Expect(resp.StatusCode).To(Equal(http.StatusCreated))
	resp.Body.Close()
}

type alertView struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	RuleCode int    `json:"rule_code"`
	Severity int    `json:"severity"`
	Status   int    `json:"status"`
}

func (s *stack) alertsFor(clientID string) []alertView {
	resp := s.do("GET", "/v1/alerts?client_id="+clientID, nil)
	Expect(resp.StatusCode).To(Equal(http.StatusOK))

	var alerts []alertView
	decode(resp, &alerts)
	return alerts
}

// drained reports whether the screening queue has caught up.
func (s *stack) drained() bool {
	return s.queue.Len() == 0
}

var _ = Describe("Screening Lifecycle", func() {
	var env *stack

	BeforeEach(func() {
		env = startStack()
	})

	AfterEach(func() {
		env.stop()
	})

	Context("when a routine transaction is recorded", func() {
		It("screens clean and raises no alerts", func() {
			clientID := env.createClient("Nordic Freight AS", "NO")
			env.postTransaction(clientID, 1200, "")

			Eventually(env.drained).WithTimeout(2 * time.Second).Should(BeTrue())
			Consistently(func() int {
				return len(env.alertsFor(clientID))
			}).WithTimeout(200 * time.Millisecond).Should(BeZero())
		})
	})

	Context("when a large transfer goes to a high-risk country", func() {
		It("raises alerts for both the amount and the destination", func() {
			clientID := env.createClient("Atlas Commodities SA", "CH")
			env.postTransaction(clientID, 75000, "KY")

			Eventually(func() []alertView {
				return env.alertsFor(clientID)
			}).WithTimeout(2 * time.Second).Should(HaveLen(2))

			byRule := map[int]alertView{}
			for _, a := range env.alertsFor(clientID) {
				byRule[a.RuleCode] = a
			}

			country, ok := byRule[domain.RuleSuspiciousCountry.Code()]
			Expect(ok).To(BeTrue())
			Expect(country.Severity).To(Equal(domain.SeverityHigh.Code()))
			Expect(country.Status).To(Equal(domain.StatusNew.Code()))

			amount, ok := byRule[domain.RuleLargeAmount.Code()]
			Expect(ok).To(BeTrue())
			Expect(amount.Severity).To(Equal(domain.SeverityLow.Code()))
		})
	})

	Context("when several deposits sit just under the reporting threshold", func() {
		It("raises a structuring alert on the third transaction", func() {
			clientID := env.createClient("Riverside Exchange", "US")
			for i := 0; i < 3; i++ {
				env.postTransaction(clientID, 9500, "")
			}

			Eventually(func() []alertView {
				return env.alertsFor(clientID)
			}).WithTimeout(2 * time.Second).Should(HaveLen(1))

			alert := env.alertsFor(clientID)[0]
			Expect(alert.RuleCode).To(Equal(domain.RuleHighFrequency.Code()))
			Expect(alert.Severity).To(Equal(domain.SeverityHigh.Code()))
		})
	})

	Context("when an analyst works an alert", func() {
		It("moves it through review to resolved and freezes it there", func() {
			clientID := env.createClient("Harbor Imports BV", "NL")
			env.postTransaction(clientID, 250000, "")

			// 250000 crosses both the large-amount and daily-limit rules.
			Eventually(func() []alertView {
				return env.alertsFor(clientID)
			}).WithTimeout(2 * time.Second).Should(HaveLen(2))

			alertID := env.alertsFor(clientID)[0].ID

			resp := env.do("PATCH", "/v1/alerts/"+alertID+"/status", map[string]interface{}{
				"status": domain.StatusReview.Code(),
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			resp.Body.Close()

			resp = env.do("PATCH", "/v1/alerts/"+alertID+"/status", map[string]interface{}{
				"status":      domain.StatusResolved.Code(),
				"notes":       "Trade finance documentation on file",
				"resolved_by": "analyst.jsmith",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var resolved struct {
				Status     int     `json:"status"`
				ResolvedBy string  `json:"resolved_by"`
				ResolvedAt *string `json:"resolved_at"`
			}
			decode(resp, &resolved)
			Expect(resolved.Status).To(Equal(domain.StatusResolved.Code()))
			Expect(resolved.ResolvedBy).To(Equal("analyst.jsmith"))
			Expect(resolved.ResolvedAt).NotTo(BeNil())

			// Terminal state rejects further transitions
			resp = env.do("PATCH", "/v1/alerts/"+alertID+"/status", map[string]interface{}{
				"status": domain.StatusReview.Code(),
			})
			Expect(resp.StatusCode).To(Equal(http.StatusConflict))
			resp.Body.Close()
		})
	})

	Context("when activity flows through the dashboard", func() {
		It("reflects new transactions and alerts in the stats and reports", func() {
			clientID := env.createClient("Meridian Capital", "GB")
			env.postTransaction(clientID, 120000, "")

			Eventually(func() []alertView {
				return env.alertsFor(clientID)
			}).WithTimeout(2 * time.Second).ShouldNot(BeEmpty())

			resp := env.do("GET", "/v1/dashboard/stats", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var stats struct {
				TotalClients      int     `json:"total_clients"`
				TransactionsToday int     `json:"transactions_today"`
				VolumeToday       float64 `json:"transaction_volume_today"`
				ActiveAlerts      int     `json:"active_alerts"`
			}
			decode(resp, &stats)
			Expect(stats.TotalClients).To(Equal(1))
			Expect(stats.TransactionsToday).To(Equal(1))
			Expect(stats.VolumeToday).To(Equal(120000.0))
			Expect(stats.ActiveAlerts).To(BeNumerically(">=", 1))

			resp = env.do("GET", "/v1/reports", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var reports []struct {
				ClientName  string  `json:"client_name"`
				TotalVolume float64 `json:"total_volume"`
			}
			decode(resp, &reports)
			Expect(reports).To(HaveLen(1))
			Expect(reports[0].ClientName).To(Equal("Meridian Capital"))
			Expect(reports[0].TotalVolume).To(Equal(120000.0))
		})
	})
})
