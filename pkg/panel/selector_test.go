package panel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agora-ai/agora/internal/catalog"
	"github.com/agora-ai/agora/internal/models"
	"github.com/agora-ai/agora/pkg/panel"
)

func detectionWith(suggested ...string) models.ThemeDetection {
	return models.ThemeDetection{
		Themes: []models.DetectedTheme{
			{Name: "ethics", Score: 0.6},
		},
		SuggestedPhilosophers: suggested,
	}
}

func TestSelect_BoundsAlwaysHold(t *testing.T) {
	s := panel.New()

	detections := []models.ThemeDetection{
		{},
		detectionWith("socrates"),
		detectionWith("socrates", "aristotle", "confucius", "marcus-aurelius", "plato", "epicurus"),
	}
	regions := []string{"all", "ancient_greece", "east_asian", "german_idealists", "nowhere"}
	eras := []string{"all", "ancient", "medieval", "enlightenment", "modern"}

	for _, detection := range detections {
		for _, region := range regions {
			for _, era := range eras {
				selection := s.Select(detection, region, era)
				assert.GreaterOrEqual(t, len(selection.PhilosopherIDs), 2,
					"region=%s era=%s", region, era)
				assert.LessOrEqual(t, len(selection.PhilosopherIDs), 6,
					"region=%s era=%s", region, era)
			}
		}
	}
}

func TestSelect_AllAllUsesFullCatalog(t *testing.T) {
	s := panel.New()

	// With no theme suggestions the panel falls back to the head of the
	// eligible set, which for all/all is the full catalog.
	selection := s.Select(models.ThemeDetection{}, "all", "all")

	ids := catalog.PhilosopherIDs()
	assert.Equal(t, ids[:3], selection.PhilosopherIDs)
	assert.False(t, selection.FiltersExpanded)
}

func TestSelect_SuggestedFilteredByEligibility(t *testing.T) {
	s := panel.New()

	// nietzsche is not in ancient_greece; the eligible suggestions
	// survive in order.
	detection := detectionWith("nietzsche", "socrates", "plato")
	selection := s.Select(detection, "ancient_greece", "all")

	assert.Equal(t, []string{"socrates", "plato"}, selection.PhilosopherIDs)
}

func TestSelect_SingleSuggestionToppedUp(t *testing.T) {
	s := panel.New()

	detection := detectionWith("socrates")
	selection := s.Select(detection, "ancient_greece", "all")

	assert.GreaterOrEqual(t, len(selection.PhilosopherIDs), 2)
	assert.LessOrEqual(t, len(selection.PhilosopherIDs), 3)
	assert.Equal(t, "socrates", selection.PhilosopherIDs[0])
}

func TestSelect_SingleEligibleExpandsWithNeighbors(t *testing.T) {
	// A reduced catalog where east_asian/ancient matches exactly one
	// philosopher.
	philosophers := []catalog.Philosopher{
		{ID: "socrates", Century: -5},
		{ID: "confucius", Century: -6},
		{ID: "nietzsche", Century: 19},
	}
	regionLookup := func(region string) []string {
		switch region {
		case "all", "":
			return []string{"socrates", "confucius", "nietzsche"}
		case "east_asian":
			return []string{"confucius"}
		}
		return nil
	}

	s := panel.NewWithCatalog(philosophers, regionLookup)
	selection := s.Select(models.ThemeDetection{}, "east_asian", "ancient")

	assert.True(t, selection.FiltersExpanded)
	assert.GreaterOrEqual(t, len(selection.PhilosopherIDs), 2)
	assert.Contains(t, selection.PhilosopherIDs, "confucius")
	// Neighbors come from catalog adjacency.
	assert.Contains(t, selection.PhilosopherIDs, "socrates")
}

func TestSelect_EmptyEligibleFallsBackToCatalogHead(t *testing.T) {
	s := panel.New()

	// No philosopher in the catalog is east_asian and modern.
	selection := s.Select(models.ThemeDetection{}, "east_asian", "modern")

	assert.True(t, selection.FiltersExpanded)
	ids := catalog.PhilosopherIDs()
	assert.Equal(t, ids[:3], selection.PhilosopherIDs)
}

func TestSelect_Recommendations(t *testing.T) {
	s := panel.New()

	detection := detectionWith("nietzsche", "lao-tzu")
	selection := s.Select(detection, "all", "all")

	assert.LessOrEqual(t, len(selection.Recommendations), 5)
	// Panel members lead the recommendations; catalog authors fill the
	// remainder in catalog order.
	assert.Equal(t, "nietzsche", selection.Recommendations[0])
	assert.Equal(t, "lao-tzu", selection.Recommendations[1])
	assert.Equal(t, "socrates", selection.Recommendations[2])
}

func TestSelect_MatchedThemesRecorded(t *testing.T) {
	s := panel.New()

	selection := s.Select(detectionWith("socrates", "aristotle"), "all", "all")
	assert.Equal(t, []string{"ethics"}, selection.MatchedThemes)
}
