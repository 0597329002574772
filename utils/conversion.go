package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"itinera/config"
	"itinera/models"
)

type ExchangeRateAPIResponse struct {
	Result string             `json:"result"`
	Base   string             `json:"base_code"`
	Rates  map[string]float64 `json:"conversion_rates"`
}

// fetchExchangeRate fetches exchange rate from base to target using ExchangeRate-API.
func fetchExchangeRate(from, to string) (float64, error) {
	url := fmt.Sprintf("https://v6.exchangerate-api.com/v6/%s/latest/%s", config.AppConfig.ExchangeRateAPIKey, from)

	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	var rateResp ExchangeRateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&rateResp); err != nil {
		return 0, fmt.Errorf("decoding response failed: %w", err)
	}

	if rateResp.Result != "success" {
		return 0, fmt.Errorf("exchange API returned failure result")
	}

	rate, ok := rateResp.Rates[to]
	if !ok {
		return 0, fmt.Errorf("exchange rate for %s not found", to)
	}
	return rate, nil
}

// ConvertCurrency converts amount between currencies using live rates.
func ConvertCurrency(amount float64, fromCurrency, toCurrency string) (float64, error) {
	if fromCurrency == toCurrency {
		return math.Round(amount*100) / 100, nil
	}
	rate, err := fetchExchangeRate(fromCurrency, toCurrency)
	if err != nil {
		return 0, err
	}
	converted := amount * rate
	return math.Round(converted*100) / 100, nil
}

// ConvertSummaryForDisplay returns a copy of the summary with every amount
// converted to the display currency. Display-only: the aggregation itself
// always runs in the trip's billing currency. Any conversion failure returns
// the summary unchanged with a warning appended, never an error upstream.
func ConvertSummaryForDisplay(summary models.CostSummary, displayCurrency string) models.CostSummary {
	if displayCurrency == "" || displayCurrency == summary.Currency {
		return summary
	}
	rate, err := fetchExchangeRate(summary.Currency, displayCurrency)
	if err != nil {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("display conversion to %s unavailable: %v", displayCurrency, err))
		return summary
	}

	out := summary
	out.Currency = displayCurrency
	out.GrandTotal = math.Round(summary.GrandTotal*rate*100) / 100
	out.PerPersonTotals = make(map[string]float64, len(summary.PerPersonTotals))
	for id, total := range summary.PerPersonTotals {
		out.PerPersonTotals[id] = math.Round(total*rate*100) / 100
	}
	out.DetailedItems = make([]models.DetailedSummaryItem, len(summary.DetailedItems))
	copy(out.DetailedItems, summary.DetailedItems)
	for i := range out.DetailedItems {
		item := &out.DetailedItems[i]
		item.AdultCost = math.Round(item.AdultCost*rate*100) / 100
		item.ChildCost = math.Round(item.ChildCost*rate*100) / 100
		item.TotalCost = math.Round(item.TotalCost*rate*100) / 100
	}
	return out
}
