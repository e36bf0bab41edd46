package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

var (
	baseURL string
	clients int
	deposit float64
)

func init() {
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "API base URL")
	flag.IntVar(&clients, "clients", 10, "Number of demo clients to create")
	flag.Float64Var(&deposit, "deposit", 100000, "Opening deposit per account")
}

func main() {
	flag.Parse()
	httpClient := &http.Client{Timeout: 5 * time.Second}

	log.Println("--- Seeding API ---")

	// Check existing
	var existing []json.RawMessage
	if err := getJSON(httpClient, baseURL+"/clientes", &existing); err != nil {
		log.Fatalf("Unable to reach API: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("API already has %d clients. Skipping.", len(existing))
		return
	}

	accountTypes := []string{"AHORROS", "CORRIENTE", "CREDITO"}

	log.Printf("Generating %d clients with funded accounts...", clients)
	for i := 1; i <= clients; i++ {
		var c struct {
			ID int `json:"id"`
		}
		err := postJSON(httpClient, baseURL+"/clientes", map[string]interface{}{
			"nombre": fmt.Sprintf("Cliente Demo %02d", i),
			"email":  fmt.Sprintf("cliente%02d@demo.bank", i),
		}, &c)
		if err != nil {
			log.Fatalf("Client %d failed: %v", i, err)
		}

		var a struct {
			Number string `json:"numero"`
		}
		err = postJSON(httpClient, baseURL+"/cuentas", map[string]interface{}{
			"cliente_id": c.ID,
			"tipo":       accountTypes[i%len(accountTypes)],
		}, &a)
		if err != nil {
			log.Fatalf("Account for client %d failed: %v", c.ID, err)
		}

		err = postJSON(httpClient, baseURL+"/transacciones/deposito", map[string]interface{}{
			"cuenta": a.Number,
			"monto":  deposit,
		}, nil)
		if err != nil {
			log.Fatalf("Opening deposit for %s failed: %v", a.Number, err)
		}
	}

	log.Printf("Successfully seeded %d clients.", clients)
}

func getJSON(c *http.Client, url string, out interface{}) error {
	resp, err := c.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func postJSON(c *http.Client, url string, payload, out interface{}) error {
	body, _ := json.Marshal(payload)
	resp, err := c.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("POST %s: status %d", url, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
