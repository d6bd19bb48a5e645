// Demo traffic generator. Creates a client against a running watchdog
// instance and posts a handful of transactions, some of which trip the
// screening rules. Run with: go run ./scripts/ingest
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const baseURL = "http://localhost:8080/v1"

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func post(path string, body map[string]interface{}) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	resp, err := http.Post(baseURL+path, "application/json", &buf)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("%s returned %s", path, resp.Status)
	}
	return env.Data, nil
}

func main() {
	data, err := post("/clients", map[string]interface{}{
		"name":       "Demo Trading LLC",
		"country":    "BR",
		"risk_level": 1,
		"kyc_status": 1,
	})
	if err != nil {
		log.Fatalf("Error creating client: %s", err)
	}

	var client struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &client); err != nil {
		log.Fatalf("Error decoding client: %s", err)
	}
	log.Printf("Created client %s", client.ID)

	transactions := []map[string]interface{}{
		// Routine payment, should screen clean
		{"type": 3, "amount": 1200, "currency_code": "USD", "counterparty": "Acme Supplies"},
		// Large transfer to a high-risk country
		{"type": 3, "amount": 75000, "currency_code": "USD", "counterparty": "Island Trust Ltd", "counterparty_country": "KY"},
		// Three deposits just under the reporting threshold
		{"type": 1, "amount": 9500, "currency_code": "USD", "counterparty": "Cash Desk 1"},
		{"type": 1, "amount": 9800, "currency_code": "USD", "counterparty": "Cash Desk 2"},
		{"type": 1, "amount": 9200, "currency_code": "USD", "counterparty": "Cash Desk 3"},
	}

	for i, txn := range transactions {
		txn["client_id"] = client.ID
		if _, err := post("/transactions", txn); err != nil {
			log.Fatalf("Error posting transaction %d: %s", i+1, err)
		}
		log.Printf("Posted transaction %d/%d", i+1, len(transactions))
		time.Sleep(100 * time.Millisecond)
	}

	log.Println("Done. Check /v1/alerts for screening results.")
}
