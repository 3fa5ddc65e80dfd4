package models

import "time"

// SeedReports returns the demo report set the store starts with. Timestamps
// are relative to now so resolution ages stay plausible across restarts.
func SeedReports(now time.Time) []Report {
	fiveDays := 5.0
	return []Report{
		{
			ID:          "1",
			Category:    CategoryPothole,
			Description: "Large pothole on Main St. causing traffic slow down.",
			Location:    Location{Lat: 40.7128, Lng: -74.0060, Address: "123 Main St, Tech City"},
			Status:      StatusResolved,
			CreatedAt:   now.AddDate(0, 0, -10),
			UpdatedAt:   now.AddDate(0, 0, -5),

			ResolutionTimeDays: &fiveDays,
			ImageURL:           "https://picsum.photos/seed/pothole/400/300",
		},
		{
			ID:          "2",
			Category:    CategoryStreetlight,
			Description: "Light flickering near the park entrance.",
			Location:    Location{Lat: 40.7200, Lng: -74.0100, Address: "Park Avenue, Tech City"},
			Status:      StatusInProgress,
			CreatedAt:   now.AddDate(0, 0, -3),
			UpdatedAt:   now.AddDate(0, 0, -1),
			ImageURL:    "https://picsum.photos/seed/light/400/300",
		},
	}
}

// SeedAlerts returns the demo notification set the store starts with.
func SeedAlerts() []UserAlert {
	return []UserAlert{
		{
			ID:      "a1",
			Title:   "Report Resolved!",
			Message: "Your report #1245 (Pothole on Main St) has been fixed. Thank you!",
			Time:    "2 hours ago",
			Read:    false,
			Type:    AlertStatus,
		},
		{
			ID:      "a2",
			Title:   "Civic Hero Badge",
			Message: "You just earned the \"Eagle Eye\" badge for your 5th report!",
			Time:    "Yesterday",
			Read:    true,
			Type:    AlertAward,
		},
		{
			ID:      "a3",
			Title:   "Maintenance Alert",
			Message: "Scheduled street cleaning in your area tomorrow from 8 AM.",
			Time:    "2 days ago",
			Read:    true,
			Type:    AlertSystem,
		},
	}
}
