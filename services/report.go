package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harishd2007/CivicFlow-v11/models"
)

// ReportStore owns the canonical in-memory report and alert collections for
// the lifetime of the process. Both sequences are kept most-recent-first;
// consumers may rely on index 0 being the newest entry. All mutation goes
// through the store's lock.
type ReportStore struct {
	mu      sync.RWMutex
	reports []models.Report
	alerts  []models.UserAlert
	now     func() time.Time
}

// NewReportStore returns a store pre-populated with the demo dataset.
func NewReportStore() *ReportStore {
	now := time.Now()
	return &ReportStore{
		reports: models.SeedReports(now),
		alerts:  models.SeedAlerts(),
		now:     time.Now,
	}
}

// NewEmptyReportStore returns a store with no seed data.
func NewEmptyReportStore() *ReportStore {
	return &ReportStore{now: time.Now}
}

func validateCreateReport(req *models.CreateReportRequest) error {
	if !req.Category.Valid() {
		return &ValidationError{Field: "category", Reason: "must be one of the supported issue categories"}
	}
	if strings.TrimSpace(req.Description) == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if req.Location == nil {
		return &ValidationError{Field: "location", Reason: "coordinates or a manual address are required"}
	}
	if req.Location.Lat == 0 && req.Location.Lng == 0 && strings.TrimSpace(req.Location.Address) == "" {
		return &ValidationError{Field: "location", Reason: "coordinates or a manual address are required"}
	}
	return nil
}

// CreateReport validates the input, then admits a new report plus its status
// alert as one atomic step. Validation happens before any mutation, so a
// rejected request leaves both collections untouched. The created alert is
// returned so callers can push exactly that alert instead of re-reading the
// collection, which may have moved on under concurrent creations.
func (s *ReportStore) CreateReport(req *models.CreateReportRequest) (models.Report, models.UserAlert, error) {
	if err := validateCreateReport(req); err != nil {
		return models.Report{}, models.UserAlert{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	report := models.Report{
		ID:          uuid.New().String(),
		Category:    req.Category,
		Description: strings.TrimSpace(req.Description),
		Location:    *req.Location,
		Status:      models.StatusReported,
		CreatedAt:   now,
		UpdatedAt:   now,
		ImageURL:    req.ImageURL,
	}
	s.reports = append([]models.Report{report}, s.reports...)

	alert := models.UserAlert{
		ID:      uuid.New().String(),
		Title:   "Report Received",
		Message: "Your " + string(report.Category) + " report has been successfully logged.",
		Time:    "Just now",
		Read:    false,
		Type:    models.AlertStatus,
	}
	s.alerts = append([]models.UserAlert{alert}, s.alerts...)

	return report, alert, nil
}

// GetReport returns the report with the given id.
func (s *ReportStore) GetReport(id string) (models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Report{}, ErrReportNotFound
}

// UpdateReportStatus moves a report to the given lifecycle state, refreshing
// UpdatedAt. The first transition into Resolved or Closed records the elapsed
// resolution time in days. Transition ordering is not enforced.
func (s *ReportStore) UpdateReportStatus(id string, status models.IssueStatus) (models.Report, error) {
	if !status.Valid() {
		return models.Report{}, &ValidationError{Field: "status", Reason: "must be one of the report lifecycle states"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID != id {
			continue
		}
		now := s.now()
		s.reports[i].Status = status
		s.reports[i].UpdatedAt = now
		if status.Terminal() && s.reports[i].ResolutionTimeDays == nil {
			days := now.Sub(s.reports[i].CreatedAt).Hours() / 24
			s.reports[i].ResolutionTimeDays = &days
		}
		return s.reports[i], nil
	}
	return models.Report{}, ErrReportNotFound
}

// SetReportImage attaches an image reference to a report that does not have
// one yet. It reports whether the image was stored, so a late-arriving
// synthesis result is discarded instead of clobbering a user upload.
func (s *ReportStore) SetReportImage(id, imageURL string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID != id {
			continue
		}
		if s.reports[i].ImageURL != "" {
			return false, nil
		}
		s.reports[i].ImageURL = imageURL
		return true, nil
	}
	return false, ErrReportNotFound
}

// ListReports returns a most-recent-first snapshot of the report collection.
func (s *ReportStore) ListReports() []models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// ListAlerts returns a most-recent-first snapshot of the alert collection.
func (s *ReportStore) ListAlerts() []models.UserAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.UserAlert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// MarkAlertRead flips an alert to read. Unknown ids are a silent no-op so the
// operation is idempotent.
func (s *ReportStore) MarkAlertRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Read = true
			return
		}
	}
}

// UnreadAlertCount backs the notification badge.
func (s *ReportStore) UnreadAlertCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, a := range s.alerts {
		if !a.Read {
			n++
		}
	}
	return n
}
