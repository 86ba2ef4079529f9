package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	apiconfig "implied_growth/pkg/api/config"
	apigrowth "implied_growth/pkg/api/growth"
	apiquote "implied_growth/pkg/api/quote"
	"implied_growth/pkg/core/quote"
	"implied_growth/pkg/core/store"
	"implied_growth/pkg/core/validate"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Load validation limits; missing file falls back to defaults
	limits := validate.DefaultLimits()
	if data, err := os.ReadFile("config/calculator.yaml"); err == nil {
		var fileLimits validate.Limits
		if err := yaml.Unmarshal(data, &fileLimits); err != nil {
			fmt.Printf("[CONFIG] Warning: failed to parse config/calculator.yaml: %v\n", err)
		} else {
			fileLimits.ApplyDefaults()
			limits = fileLimits
		}
	}
	fmt.Printf("[CONFIG] Limits: price %.0f-%.0f, dividends 0-%.0f, return 0-%.0f%%\n",
		limits.MarketPriceMin, limits.MarketPriceMax, limits.DividendMax, limits.RequiredReturnMax)

	// History storage is optional: no DATABASE_URL means no history
	var history *store.HistoryRepo
	if repo, err := store.OpenHistoryRepo(context.Background()); err != nil {
		fmt.Printf("[STORE] History disabled: %v\n", err)
	} else {
		history = repo
		defer history.Close()
		fmt.Println("[STORE] Computation history enabled")
	}

	// Calculator endpoints
	growthHandler := apigrowth.NewHandler(limits, history)
	http.HandleFunc("/api/growth/compute", growthHandler.HandleCompute)
	http.HandleFunc("/api/growth/scenarios", growthHandler.HandleScenarios)
	http.HandleFunc("/api/growth/history", growthHandler.HandleHistory)

	// Config endpoints
	configHandler := apiconfig.NewHandler(limits)
	http.HandleFunc("/api/config/limits", configHandler.HandleLimits)

	// Quote prefill endpoint
	quoteHandler := apiquote.NewHandler(quote.NewFetcher())
	http.HandleFunc("/api/quote", quoteHandler.HandleQuote)

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	fmt.Printf("API server starting on %s...\n", addr)
	fmt.Println("  - POST /api/growth/compute")
	fmt.Println("  - POST /api/growth/scenarios")
	fmt.Println("  - GET  /api/growth/history")
	fmt.Println("  - GET  /api/config/limits")
	fmt.Println("  - GET  /api/quote?symbol=XYZ")

	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
