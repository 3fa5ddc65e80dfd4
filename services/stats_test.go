package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harishd2007/CivicFlow-v11/models"
)

func reportWith(category models.IssueCategory, status models.IssueStatus, resolutionDays *float64) models.Report {
	now := time.Now()
	return models.Report{
		ID:                 string(category) + "-" + string(status),
		Category:           category,
		Description:        "x",
		Location:           models.Location{Lat: 1, Lng: 2},
		Status:             status,
		CreatedAt:          now,
		UpdatedAt:          now,
		ResolutionTimeDays: resolutionDays,
	}
}

func days(d float64) *float64 { return &d }

func TestComputeCityStatsEmpty(t *testing.T) {
	stats := ComputeCityStats(nil)

	assert.Equal(t, 0, stats.TotalReports)
	assert.Equal(t, 0, stats.ResolvedCount)
	assert.Equal(t, defaultMedianResolutionDays, stats.MedianResolutionTime)
	assert.Equal(t, 0, ResolvedPercent(stats), "empty city must not divide by zero")

	require.Len(t, stats.CategoryDistribution, 5, "zero-count categories still appear")
	for _, cc := range stats.CategoryDistribution {
		assert.Equal(t, 0, cc.Value)
	}
}

func TestComputeCityStatsCategoryOrderAndSum(t *testing.T) {
	reports := []models.Report{
		reportWith(models.CategoryOther, models.StatusReported, nil),
		reportWith(models.CategoryPothole, models.StatusReported, nil),
		reportWith(models.CategoryWaterLeak, models.StatusInProgress, nil),
		reportWith(models.CategoryPothole, models.StatusResolved, days(3)),
		reportWith(models.CategoryStreetlight, models.StatusClosed, days(6)),
		reportWith(models.CategoryIllegalDumping, models.StatusReported, nil),
	}

	stats := ComputeCityStats(reports)
	assert.Equal(t, 6, stats.TotalReports)
	assert.Equal(t, 2, stats.ResolvedCount)

	require.Len(t, stats.CategoryDistribution, 5)
	names := make([]string, 0, 5)
	sum := 0
	for _, cc := range stats.CategoryDistribution {
		names = append(names, cc.Name)
		sum += cc.Value
	}
	assert.Equal(t, []string{"Pothole", "Streetlight", "Illegal Dumping", "Water Leak", "Other"}, names)
	assert.Equal(t, stats.TotalReports, sum)
}

func TestMedianExcludesUnresolvedReports(t *testing.T) {
	reports := []models.Report{
		reportWith(models.CategoryPothole, models.StatusResolved, days(3)),
		reportWith(models.CategoryPothole, models.StatusResolved, days(5)),
		reportWith(models.CategoryPothole, models.StatusClosed, days(7)),
		reportWith(models.CategoryStreetlight, models.StatusReported, nil),
		reportWith(models.CategoryWaterLeak, models.StatusInProgress, nil),
	}

	stats := ComputeCityStats(reports)
	assert.Equal(t, 5.0, stats.MedianResolutionTime)
}

func TestMedianEvenCountAveragesMiddlePair(t *testing.T) {
	reports := []models.Report{
		reportWith(models.CategoryPothole, models.StatusResolved, days(2)),
		reportWith(models.CategoryPothole, models.StatusResolved, days(8)),
		reportWith(models.CategoryPothole, models.StatusResolved, days(4)),
		reportWith(models.CategoryPothole, models.StatusResolved, days(6)),
	}

	stats := ComputeCityStats(reports)
	assert.Equal(t, 5.0, stats.MedianResolutionTime)
}

func TestMedianFallsBackWhenNoQualifyingReports(t *testing.T) {
	reports := []models.Report{
		reportWith(models.CategoryPothole, models.StatusReported, nil),
		// Resolved but with no recorded duration: excluded, not zero.
		reportWith(models.CategoryPothole, models.StatusResolved, nil),
	}

	stats := ComputeCityStats(reports)
	assert.Equal(t, defaultMedianResolutionDays, stats.MedianResolutionTime)
}

func TestComputeCityStatsDoesNotMutateInput(t *testing.T) {
	reports := []models.Report{
		reportWith(models.CategoryPothole, models.StatusResolved, days(9)),
		reportWith(models.CategoryPothole, models.StatusResolved, days(1)),
	}

	_ = ComputeCityStats(reports)
	assert.Equal(t, 9.0, *reports[0].ResolutionTimeDays, "fold must not reorder or mutate its input")
}

func TestResolvedPercent(t *testing.T) {
	stats := models.CityStats{TotalReports: 4, ResolvedCount: 3}
	assert.Equal(t, 75, ResolvedPercent(stats))
}
