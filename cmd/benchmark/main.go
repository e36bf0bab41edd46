package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Config holds the benchmark settings
var (
	targetURL   string
	concurrency int
	duration    time.Duration
	workload    string
	numAccounts int
)

// Metrics
var (
	totalRequests uint64
	success201    uint64 // Created
	fail409       uint64 // Conflicts (insufficient funds)
	fail422       uint64 // Validation rejections
	failOther     uint64
)

func init() {
	flag.StringVar(&targetURL, "url", "http://localhost:8080", "API Base URL")
	flag.IntVar(&concurrency, "workers", 10, "Number of concurrent workers")
	flag.DurationVar(&duration, "duration", 30*time.Second, "Test duration")
	flag.StringVar(&workload, "workload", "mixed", "Workload type: deposit | transfer | mixed")
	flag.IntVar(&numAccounts, "accounts", 50, "Accounts to provision before the run")
}

func main() {
	flag.Parse()
	log.Printf("Starting Benchmark: %s | Workers: %d | Duration: %s", workload, concurrency, duration)

	accounts, err := provision()
	if err != nil {
		log.Fatalf("Provisioning failed: %v", err)
	}
	log.Printf("Provisioned %d funded accounts", len(accounts))

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		go worker(&wg, start, accounts)
	}

	wg.Wait()
	printResults(time.Since(start))
}

// provision creates one client and a set of funded accounts through the
// public API so the run starts from a known state.
func provision() ([]string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var owner struct {
		ID int `json:"id"`
	}
	err := post(client, "/clientes", map[string]interface{}{
		"nombre": "Benchmark",
		"email":  fmt.Sprintf("bench-%d@demo.bank", time.Now().UnixNano()),
	}, &owner)
	if err != nil {
		return nil, err
	}

	accounts := make([]string, 0, numAccounts)
	for i := 0; i < numAccounts; i++ {
		var acc struct {
			Number string `json:"numero"`
		}
		if err := post(client, "/cuentas", map[string]interface{}{
			"cliente_id": owner.ID,
			"tipo":       "CORRIENTE",
		}, &acc); err != nil {
			return nil, err
		}
		if err := post(client, "/transacciones/deposito", map[string]interface{}{
			"cuenta": acc.Number,
			"monto":  10000,
		}, nil); err != nil {
			return nil, err
		}
		accounts = append(accounts, acc.Number)
	}
	return accounts, nil
}

func worker(wg *sync.WaitGroup, start time.Time, accounts []string) {
	defer wg.Done()
	client := &http.Client{Timeout: 5 * time.Second}

	for time.Since(start) < duration {
		path, payload := nextRequest(accounts)
		body, _ := json.Marshal(payload)

		resp, err := client.Post(targetURL+path, "application/json", bytes.NewBuffer(body))
		if err != nil {
			atomic.AddUint64(&failOther, 1)
			continue
		}

		atomic.AddUint64(&totalRequests, 1)
		switch resp.StatusCode {
		case 201:
			atomic.AddUint64(&success201, 1)
		case 409:
			atomic.AddUint64(&fail409, 1)
		case 422:
			atomic.AddUint64(&fail422, 1)
		default:
			atomic.AddUint64(&failOther, 1)
		}
		resp.Body.Close()
	}
}

func nextRequest(accounts []string) (string, map[string]interface{}) {
	op := workload
	if op == "mixed" {
		if rand.Float32() < 0.5 {
			op = "deposit"
		} else {
			op = "transfer"
		}
	}

	// A transfer needs two distinct accounts; with fewer, fall back to
	// deposits so the pair-picking loop below cannot spin forever.
	if op == "deposit" || len(accounts) < 2 {
		return "/transacciones/deposito", map[string]interface{}{
			"cuenta": accounts[rand.Intn(len(accounts))],
			"monto":  100,
		}
	}

	from := accounts[rand.Intn(len(accounts))]
	to := accounts[rand.Intn(len(accounts))]
	for from == to {
		to = accounts[rand.Intn(len(accounts))]
	}
	return "/transacciones/transferencia", map[string]interface{}{
		"origen":  from,
		"destino": to,
		"monto":   100,
	}
}

func printResults(d time.Duration) {
	total := atomic.LoadUint64(&totalRequests)
	s201 := atomic.LoadUint64(&success201)
	f409 := atomic.LoadUint64(&fail409)
	f422 := atomic.LoadUint64(&fail422)
	fErr := atomic.LoadUint64(&failOther)

	tps := float64(total) / d.Seconds()
	var abortRate float64
	if total > 0 {
		abortRate = float64(f409) / float64(total) * 100
	}

	results := map[string]interface{}{
		"workload":        workload,
		"duration_sec":    d.Seconds(),
		"total_requests":  total,
		"throughput_tps":  tps,
		"success_created": s201,
		"aborts_conflict": f409,
		"rejects_422":     f422,
		"abort_rate_pct":  abortRate,
		"errors":          fErr,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(results)
}

func post(c *http.Client, path string, payload, out interface{}) error {
	body, _ := json.Marshal(payload)
	resp, err := c.Post(targetURL+path, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("POST %s: status %d", path, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
