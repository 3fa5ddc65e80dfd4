package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harishd2007/CivicFlow-v11/models"
	"github.com/harishd2007/CivicFlow-v11/services"
)

// statsdump recomputes city statistics from a JSON report dump (the payload
// of GET /api/reports saved to a file). Handy for checking dashboards against
// exported data without a running server.
func main() {
	path := flag.String("reports", "reports.json", "path to a JSON array of reports")
	flag.Parse()

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *path, err)
	}

	var reports []models.Report
	if err := json.Unmarshal(data, &reports); err != nil {
		log.Fatalf("failed to parse reports: %v", err)
	}

	stats := services.ComputeCityStats(reports)

	fmt.Printf("total reports:      %d\n", stats.TotalReports)
	fmt.Printf("resolved:           %d (%d%%)\n", stats.ResolvedCount, services.ResolvedPercent(stats))
	fmt.Printf("median resolution:  %.1f days\n", stats.MedianResolutionTime)
	fmt.Println("by category:")
	for _, cc := range stats.CategoryDistribution {
		fmt.Printf("  %-16s %d\n", cc.Name, cc.Value)
	}
}
