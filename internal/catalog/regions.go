package catalog

// Region groups philosophers by tradition for panel filtering.
type Region struct {
	Name         string
	Philosophers []string
}

var regions = map[string]Region{
	"ancient_greece": {
		Name:         "Ancient Greece",
		Philosophers: []string{"socrates", "plato", "aristotle", "epicurus"},
	},
	"roman_latin": {
		Name:         "Roman & Latin",
		Philosophers: []string{"marcus-aurelius"},
	},
	"german_idealists": {
		Name:         "German Tradition",
		Philosophers: []string{"nietzsche"},
	},
	"east_asian": {
		Name:         "East Asian",
		Philosophers: []string{"confucius", "lao-tzu"},
	},
}

// RegionPhilosophers returns the ids belonging to a region. "all" (or an
// empty string) yields every catalog id; an unknown region yields nil.
func RegionPhilosophers(region string) []string {
	if region == "all" || region == "" {
		return PhilosopherIDs()
	}
	r, ok := regions[region]
	if !ok {
		return nil
	}
	return r.Philosophers
}

// RegionName returns the display name for a region key.
func RegionName(region string) string {
	if r, ok := regions[region]; ok {
		return r.Name
	}
	return region
}
