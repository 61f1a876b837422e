// Package main implements a mock commerce backend for local development:
// the catalog feed plus the WooCommerce order-creation endpoint.
package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lucia/tienda-terminal-go/internal/store"
)

//go:embed testdata/*
var testdataFS embed.FS

var catalog []store.Product

var orderSeq atomic.Int64

func init() {
	data, err := testdataFS.ReadFile("testdata/catalog.json")
	if err != nil {
		log.Fatal("Failed to load catalog.json", "err", err)
	}
	if err := json.Unmarshal(data, &catalog); err != nil {
		log.Fatal("Failed to parse catalog.json", "err", err)
	}
	orderSeq.Store(1000)
}

func main() {
	addr := getEnv("MOCKSTORE_ADDR", ":18081")

	http.HandleFunc("/api/catalog", handleCatalog)
	http.HandleFunc("/wp-json/wc/v3/orders", handleCreateOrder)

	log.Info("Mock store listening", "addr", addr, "products", len(catalog))
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal("Server error", "err", err)
	}
}

func handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog)
}

func handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req store.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	// Address tags steer the outcome so every checkout path can be
	// exercised by hand: "+soft" yields a response without an order id,
	// "+fail" a server error.
	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.Contains(req.Billing.Email, "+fail"):
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	case strings.Contains(req.Billing.Email, "+soft"):
		json.NewEncoder(w).Encode(map[string]any{})
		return
	}

	if len(req.LineItems) == 0 {
		http.Error(w, "Order has no line items", http.StatusBadRequest)
		return
	}
	for _, line := range req.LineItems {
		if line.ProductID <= 0 || line.Quantity <= 0 {
			http.Error(w, "Malformed line item", http.StatusBadRequest)
			return
		}
	}

	id := orderSeq.Add(1)
	resp := store.OrderResponse{
		ID:       int(id),
		Status:   "pending",
		OrderKey: fmt.Sprintf("wc_order_mock%d", id),
	}

	log.Info("Order created", "id", resp.ID, "lines", len(req.LineItems), "email", req.Billing.Email)
	json.NewEncoder(w).Encode(resp)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
