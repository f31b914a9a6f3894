//go:build ignore

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

type optimizeRequest struct {
	StartLocation string `json:"start_location"`
	EndLocation   string `json:"end_location"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base URL")
	start := flag.String("start", "New York, NY", "start location")
	end := flag.String("end", "Chicago, IL", "end location")
	flag.Parse()

	body, err := json.Marshal(optimizeRequest{
		StartLocation: *start,
		EndLocation:   *end,
	})
	if err != nil {
		log.Fatalf("Failed to marshal request: %v", err)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Post(*baseURL+"/api/v1/routes/optimize", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Fatalf("Failed to decode response: %v", err)
	}

	fmt.Printf("Status: %s\n", resp.Status)
	for _, key := range []string{"total_distance_miles", "total_fuel_cost_usd", "estimated_total_trip_duration_minutes", "error", "code"} {
		if v, ok := payload[key]; ok {
			fmt.Printf("%s: %v\n", key, v)
		}
	}
	if stops, ok := payload["optimal_fuel_stops"].([]interface{}); ok {
		fmt.Printf("fuel stops: %d\n", len(stops))
		for _, s := range stops {
			stop, ok := s.(map[string]interface{})
			if !ok {
				continue
			}
			fmt.Printf("  - %v @ mile %v: %v gal ($%v)\n",
				stop["location"], stop["distance_from_start_miles"],
				stop["fuel_added_gallons"], stop["cost_at_this_stop"])
		}
	}
}
