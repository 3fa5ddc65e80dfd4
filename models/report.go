package models

import "time"

// IssueCategory is the closed set of issue types a citizen can report.
type IssueCategory string

const (
	CategoryPothole        IssueCategory = "Pothole"
	CategoryStreetlight    IssueCategory = "Streetlight"
	CategoryIllegalDumping IssueCategory = "Illegal Dumping"
	CategoryWaterLeak      IssueCategory = "Water Leak"
	CategoryOther          IssueCategory = "Other"
)

// Categories returns every category in chart order. Consumers rely on this
// order for stable rendering, so it must not change.
func Categories() []IssueCategory {
	return []IssueCategory{
		CategoryPothole,
		CategoryStreetlight,
		CategoryIllegalDumping,
		CategoryWaterLeak,
		CategoryOther,
	}
}

func (c IssueCategory) Valid() bool {
	switch c {
	case CategoryPothole, CategoryStreetlight, CategoryIllegalDumping, CategoryWaterLeak, CategoryOther:
		return true
	}
	return false
}

// IssueStatus is the lifecycle state of a report. Reports are created as
// Reported; no transition ordering is enforced.
type IssueStatus string

const (
	StatusReported   IssueStatus = "Reported"
	StatusInProgress IssueStatus = "In Progress"
	StatusResolved   IssueStatus = "Resolved"
	StatusClosed     IssueStatus = "Closed"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case StatusReported, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Terminal reports count as resolved for city statistics.
func (s IssueStatus) Terminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// Location is where the issue was observed. Address may be empty when the
// report came straight from device GPS.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// Report is a single citizen-submitted municipal issue record.
type Report struct {
	ID                 string        `json:"id"`
	Category           IssueCategory `json:"category"`
	Description        string        `json:"description"`
	Location           Location      `json:"location"`
	Status             IssueStatus   `json:"status"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
	ResolutionTimeDays *float64      `json:"resolutionTimeDays,omitempty"`
	ImageURL           string        `json:"imageUrl,omitempty"`
}

// CreateReportRequest is the request body for submitting a new report.
type CreateReportRequest struct {
	Category    IssueCategory `json:"category"`
	Description string        `json:"description"`
	Location    *Location     `json:"location"`
	ImageURL    string        `json:"imageUrl,omitempty"`
}

// UpdateReportStatusRequest is the request body for moving a report through
// its lifecycle.
type UpdateReportStatusRequest struct {
	Status IssueStatus `json:"status" binding:"required"`
}
