package services

import (
	"strings"

	"github.com/harishd2007/CivicFlow-v11/models"
)

func containsAny(s string, list []string) bool {
	for _, substr := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

// SuggestCategory routes a free-text description to the most likely issue
// category by keyword. It backs the manual-entry fallback when image
// classification fails, so it must always land on some category.
func SuggestCategory(description string) models.IssueCategory {
	text := strings.ToLower(description)

	if containsAny(text, []string{"pothole", "pot hole", "road surface", "crater", "asphalt", "pavement crack"}) {
		return models.CategoryPothole
	}
	if containsAny(text, []string{"streetlight", "street light", "lamp", "light out", "flickering", "dark street"}) {
		return models.CategoryStreetlight
	}
	if containsAny(text, []string{"dump", "garbage", "trash", "litter", "waste", "debris"}) {
		return models.CategoryIllegalDumping
	}
	if containsAny(text, []string{"water", "leak", "pipe", "burst", "flooding", "sewage"}) {
		return models.CategoryWaterLeak
	}
	return models.CategoryOther
}
