package models

// CategoryCount is one slice of the category distribution chart.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CityStats is derived from the report collection on demand; it is never
// stored or updated incrementally.
type CityStats struct {
	TotalReports         int             `json:"totalReports"`
	ResolvedCount        int             `json:"resolvedCount"`
	MedianResolutionTime float64         `json:"medianResolutionTime"` // days
	CategoryDistribution []CategoryCount `json:"categoryDistribution"`
}
