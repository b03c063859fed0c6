package themes

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agora-ai/agora/internal/catalog"
	"github.com/agora-ai/agora/internal/models"
)

const (
	wholeWordWeight = 0.3
	substringWeight = 0.1

	maxThemes                = 3
	maxSuggestedPhilosophers = 6
)

// Detect scores a question against the theme catalog using keyword
// matching. Each whole-word keyword occurrence contributes 0.3 to the
// theme's score; a keyword present only as a substring contributes a flat
// 0.1. The top three themes are reported with scores clamped to [0, 1] for
// display, while ranking uses the raw scores.
func Detect(question string) models.ThemeDetection {
	normalized := strings.ToLower(question)

	type rankedTheme struct {
		theme catalog.Theme
		score float64
	}

	var ranked []rankedTheme
	for _, theme := range catalog.Themes() {
		var score float64
		for _, keyword := range theme.Keywords {
			kw := strings.ToLower(keyword)
			if !strings.Contains(normalized, kw) {
				continue
			}
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			if matches := re.FindAllString(normalized, -1); len(matches) > 0 {
				score += float64(len(matches)) * wholeWordWeight
			} else {
				score += substringWeight
			}
		}
		if score > 0 {
			ranked = append(ranked, rankedTheme{theme: theme, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > maxThemes {
		ranked = ranked[:maxThemes]
	}

	var detection models.ThemeDetection
	seen := make(map[string]bool)

	for _, r := range ranked {
		displayScore := r.score
		if displayScore > 1 {
			displayScore = 1
		}
		detection.Themes = append(detection.Themes, models.DetectedTheme{
			Name:        r.theme.Name,
			Score:       displayScore,
			Description: r.theme.Description,
		})

		for _, id := range catalog.PhilosophersForTheme(r.theme.Name) {
			if seen[id] {
				continue
			}
			seen[id] = true
			detection.SuggestedPhilosophers = append(detection.SuggestedPhilosophers, id)
		}
	}

	if len(detection.SuggestedPhilosophers) > maxSuggestedPhilosophers {
		detection.SuggestedPhilosophers = detection.SuggestedPhilosophers[:maxSuggestedPhilosophers]
	}

	return detection
}
