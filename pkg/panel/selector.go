package panel

import (
	"github.com/agora-ai/agora/internal/catalog"
	"github.com/agora-ai/agora/internal/models"
)

const (
	minPanelSize   = 2
	maxPrimary     = 4
	fallbackSize   = 3
	maxRecommended = 5
)

// eraMatchers bucket philosophers by the century they worked in.
var eraMatchers = map[string]func(century int) bool{
	"all":           func(int) bool { return true },
	"ancient":       func(c int) bool { return c <= 5 && c >= -10 },
	"medieval":      func(c int) bool { return c > 5 && c <= 15 },
	"enlightenment": func(c int) bool { return c > 15 && c <= 18 },
	"modern":        func(c int) bool { return c > 18 },
}

// Selector chooses a bounded panel of philosophers for a question. The
// catalog and region membership are injectable so selection over a reduced
// catalog can be exercised directly.
type Selector struct {
	philosophers []catalog.Philosopher
	regionLookup func(region string) []string
}

func New() *Selector {
	return &Selector{
		philosophers: catalog.Philosophers(),
		regionLookup: catalog.RegionPhilosophers,
	}
}

func NewWithCatalog(philosophers []catalog.Philosopher, regionLookup func(string) []string) *Selector {
	return &Selector{
		philosophers: philosophers,
		regionLookup: regionLookup,
	}
}

// Select builds a panel of 2-6 philosophers from the detected themes and
// the region/era filters. The panel is never empty: an empty eligible set
// falls back to the head of the catalog, and a single eligible philosopher
// is joined by its catalog neighbors.
func (s *Selector) Select(detection models.ThemeDetection, region, era string) models.PanelSelection {
	eligible := s.eligibleIDs(region, era)

	expanded := false
	if len(eligible) == 0 {
		eligible = s.catalogHead(fallbackSize)
		expanded = true
	} else if len(eligible) == 1 {
		eligible = s.addNeighbors(eligible)
		expanded = true
	}

	inEligible := make(map[string]bool, len(eligible))
	for _, id := range eligible {
		inEligible[id] = true
	}

	var selected []string
	for _, id := range detection.SuggestedPhilosophers {
		if inEligible[id] {
			selected = append(selected, id)
		}
		if len(selected) == maxPrimary {
			break
		}
	}

	if len(selected) == 0 {
		selected = append(selected, eligible[:min(fallbackSize, len(eligible))]...)
	} else if len(selected) < minPanelSize {
		chosen := map[string]bool{selected[0]: true}
		for _, id := range eligible {
			if chosen[id] {
				continue
			}
			selected = append(selected, id)
			if len(selected) >= minPanelSize+1 {
				break
			}
		}
	}

	var matched []string
	for _, t := range detection.Themes {
		matched = append(matched, t.Name)
	}

	return models.PanelSelection{
		PhilosopherIDs:  selected,
		MatchedThemes:   matched,
		Recommendations: s.recommendations(selected),
		FiltersExpanded: expanded,
	}
}

func (s *Selector) eligibleIDs(region, era string) []string {
	matchEra, ok := eraMatchers[era]
	if !ok {
		matchEra = eraMatchers["all"]
	}

	regionIDs := s.regionLookup(region)

	var eligible []string
	for _, id := range regionIDs {
		p, ok := s.byID(id)
		if !ok {
			continue
		}
		if matchEra(p.Century) {
			eligible = append(eligible, id)
		}
	}
	return eligible
}

// addNeighbors pads a single-member eligible set with the philosophers
// adjacent to it in catalog order, when they exist.
func (s *Selector) addNeighbors(eligible []string) []string {
	idx := -1
	for i, p := range s.philosophers {
		if p.ID == eligible[0] {
			idx = i
			break
		}
	}
	if idx < 0 {
		return eligible
	}
	if idx > 0 {
		eligible = append(eligible, s.philosophers[idx-1].ID)
	}
	if idx < len(s.philosophers)-1 {
		eligible = append(eligible, s.philosophers[idx+1].ID)
	}
	return eligible
}

// recommendations lists the first three panel members plus up to two other
// catalog philosophers, in catalog order. Display-only "explore more"
// suggestions; not used for generation.
func (s *Selector) recommendations(selected []string) []string {
	primary := selected
	if len(primary) > fallbackSize {
		primary = primary[:fallbackSize]
	}

	recs := append([]string{}, primary...)
	inPanel := make(map[string]bool, len(primary))
	for _, id := range primary {
		inPanel[id] = true
	}
	for _, p := range s.philosophers {
		if len(recs) >= maxRecommended {
			break
		}
		if !inPanel[p.ID] {
			recs = append(recs, p.ID)
		}
	}
	return recs
}

func (s *Selector) byID(id string) (catalog.Philosopher, bool) {
	for _, p := range s.philosophers {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Philosopher{}, false
}

func (s *Selector) catalogHead(n int) []string {
	if n > len(s.philosophers) {
		n = len(s.philosophers)
	}
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = s.philosophers[i].ID
	}
	return ids
}
