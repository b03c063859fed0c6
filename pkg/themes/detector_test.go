package themes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agora-ai/agora/internal/models"
	"github.com/agora-ai/agora/pkg/themes"
)

func scoreFor(detection models.ThemeDetection, name string) float64 {
	for _, th := range detection.Themes {
		if th.Name == name {
			return th.Score
		}
	}
	return 0
}

func TestDetect_NoMatches(t *testing.T) {
	detection := themes.Detect("xylophone quantum chromodynamics")

	assert.Empty(t, detection.Themes)
	assert.Empty(t, detection.SuggestedPhilosophers)
}

func TestDetect_EthicsQuestion(t *testing.T) {
	detection := themes.Detect("What is virtue and how should one live?")

	assert.NotEmpty(t, detection.Themes)

	var names []string
	for _, th := range detection.Themes {
		names = append(names, th.Name)
	}
	assert.Contains(t, names, "ethics")
	assert.NotEmpty(t, detection.SuggestedPhilosophers)
}

func TestDetect_RepeatedKeywordScoresHigher(t *testing.T) {
	once := themes.Detect("Is justice possible?")
	twice := themes.Detect("Is justice really justice?")

	assert.Greater(t, scoreFor(twice, "justice"), scoreFor(once, "justice"))
}

func TestDetect_TopThreeOnly(t *testing.T) {
	detection := themes.Detect(
		"Does virtue bring happiness, justice, knowledge, beauty, power and freedom from suffering?")

	assert.LessOrEqual(t, len(detection.Themes), 3)
	assert.LessOrEqual(t, len(detection.SuggestedPhilosophers), 6)
}

func TestDetect_ScoreClampedForDisplay(t *testing.T) {
	// Many whole-word hits push the raw score past 1; the reported score
	// is clamped while ranking still reflects the raw values.
	detection := themes.Detect(
		"justice justice justice justice virtue")

	assert.Equal(t, "justice", detection.Themes[0].Name)
	for _, th := range detection.Themes {
		assert.LessOrEqual(t, th.Score, 1.0)
		assert.Greater(t, th.Score, 0.0)
	}
}

func TestDetect_SubstringScoresLowerThanWholeWord(t *testing.T) {
	// "friendships" only hits "friendship" as a substring.
	substring := themes.Detect("what are friendships")
	whole := themes.Detect("what is friendship")

	assert.Greater(t, scoreFor(whole, "friendship"), scoreFor(substring, "friendship"))
}

func TestDetect_SuggestedPhilosophersFollowThemeRank(t *testing.T) {
	detection := themes.Detect("What is justice?")

	assert.Equal(t, "justice", detection.Themes[0].Name)
	// The top theme's first mapped philosopher leads the suggestions.
	assert.Equal(t, "plato", detection.SuggestedPhilosophers[0])
}
