package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harishd2007/CivicFlow-v11/models"
)

func TestSuggestCategory(t *testing.T) {
	cases := map[string]models.IssueCategory{
		"There is a huge pothole near the school":  models.CategoryPothole,
		"The street light keeps flickering":        models.CategoryStreetlight,
		"Someone dumped garbage behind the market": models.CategoryIllegalDumping,
		"Water leaking from a burst pipe":          models.CategoryWaterLeak,
		"Strange noise coming from a manhole":      models.CategoryOther,
		"": models.CategoryOther,
	}

	for description, want := range cases {
		assert.Equal(t, want, SuggestCategory(description), "description: %q", description)
	}
}
