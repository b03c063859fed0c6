package catalog

// Theme is a named topical category defined by a keyword set. The detector
// scores questions against these keywords to infer relevance.
type Theme struct {
	Name        string
	Keywords    []string
	Description string
}

var themes = []Theme{
	{
		Name:        "ethics",
		Keywords:    []string{"virtue", "moral", "morality", "good", "evil", "right", "wrong", "ought", "duty", "ethics", "ethical"},
		Description: "Questions of right conduct, virtue, and how one ought to live.",
	},
	{
		Name:        "justice",
		Keywords:    []string{"justice", "just", "fair", "fairness", "society", "law", "rights", "equality", "injustice"},
		Description: "Fairness, law, and the ordering of society.",
	},
	{
		Name:        "knowledge",
		Keywords:    []string{"knowledge", "truth", "know", "knowing", "certainty", "belief", "doubt", "wisdom", "learn"},
		Description: "What can be known, and how belief becomes knowledge.",
	},
	{
		Name:        "reality",
		Keywords:    []string{"reality", "existence", "being", "nature", "universe", "real", "world", "metaphysics"},
		Description: "The nature of existence and what is ultimately real.",
	},
	{
		Name:        "meaning",
		Keywords:    []string{"meaning", "purpose", "life", "live", "living", "significance", "meaningful", "why"},
		Description: "The purpose and significance of a human life.",
	},
	{
		Name:        "free_will",
		Keywords:    []string{"free will", "choice", "choose", "freedom", "determinism", "fate", "destiny", "responsibility"},
		Description: "Choice, freedom, and whether our actions are our own.",
	},
	{
		Name:        "happiness",
		Keywords:    []string{"happiness", "happy", "joy", "pleasure", "contentment", "flourishing", "fulfillment", "well-being"},
		Description: "What it means to live well and flourish.",
	},
	{
		Name:        "self",
		Keywords:    []string{"self", "identity", "soul", "consciousness", "mind", "who am i", "ego", "character"},
		Description: "Personal identity, the soul, and self-knowledge.",
	},
	{
		Name:        "emotion",
		Keywords:    []string{"emotion", "emotions", "feeling", "feelings", "love", "anger", "fear", "grief", "desire", "passion"},
		Description: "The passions and their place in a good life.",
	},
	{
		Name:        "reason",
		Keywords:    []string{"reason", "logic", "logical", "rational", "rationality", "argument", "thinking", "thought"},
		Description: "Rational thought, logic, and sound argument.",
	},
	{
		Name:        "death",
		Keywords:    []string{"death", "mortality", "dying", "die", "mortal", "afterlife", "grief", "loss"},
		Description: "Mortality and how to face it.",
	},
	{
		Name:        "power",
		Keywords:    []string{"power", "authority", "control", "politics", "political", "ruler", "state", "government", "leadership"},
		Description: "Authority, rulership, and the uses of power.",
	},
	{
		Name:        "beauty",
		Keywords:    []string{"beauty", "beautiful", "art", "aesthetic", "aesthetics", "sublime", "taste"},
		Description: "Art, the beautiful, and aesthetic judgment.",
	},
	{
		Name:        "suffering",
		Keywords:    []string{"suffering", "suffer", "pain", "hardship", "adversity", "struggle", "misfortune", "endure"},
		Description: "Hardship, pain, and how to bear them.",
	},
	{
		Name:        "friendship",
		Keywords:    []string{"friendship", "friend", "friends", "relationship", "relationships", "companionship", "community", "belonging"},
		Description: "Friendship, love, and our bonds with others.",
	},
}

// themeToPhilosophers maps each theme to the philosophers most associated
// with it, in relevance order.
var themeToPhilosophers = map[string][]string{
	"ethics":     {"socrates", "aristotle", "confucius", "marcus-aurelius"},
	"justice":    {"plato", "socrates", "confucius"},
	"knowledge":  {"socrates", "plato", "aristotle"},
	"reality":    {"plato", "lao-tzu", "aristotle"},
	"meaning":    {"nietzsche", "epicurus", "marcus-aurelius", "lao-tzu"},
	"free_will":  {"nietzsche", "marcus-aurelius", "epicurus"},
	"happiness":  {"epicurus", "aristotle", "confucius"},
	"self":       {"socrates", "nietzsche", "lao-tzu"},
	"emotion":    {"epicurus", "marcus-aurelius", "nietzsche"},
	"reason":     {"aristotle", "socrates", "marcus-aurelius"},
	"death":      {"epicurus", "marcus-aurelius", "socrates"},
	"power":      {"nietzsche", "plato", "confucius"},
	"beauty":     {"plato", "nietzsche", "aristotle"},
	"suffering":  {"marcus-aurelius", "nietzsche", "epicurus"},
	"friendship": {"epicurus", "aristotle", "confucius"},
}

var themeDisplayNames = map[string]string{
	"ethics":     "Ethics & Morality",
	"justice":    "Justice & Society",
	"knowledge":  "Knowledge & Truth",
	"reality":    "Reality & Existence",
	"meaning":    "Meaning & Purpose",
	"free_will":  "Free Will & Choice",
	"happiness":  "Happiness & Well-being",
	"self":       "Self & Identity",
	"emotion":    "Emotions & Feelings",
	"reason":     "Reason & Logic",
	"death":      "Death & Mortality",
	"power":      "Power & Authority",
	"beauty":     "Beauty & Aesthetics",
	"suffering":  "Suffering & Hardship",
	"friendship": "Friendship & Relationships",
}

// Themes returns the full theme catalog.
func Themes() []Theme {
	return themes
}

// PhilosophersForTheme returns the philosophers associated with a theme, in
// relevance order. Unknown themes return nil.
func PhilosophersForTheme(name string) []string {
	return themeToPhilosophers[name]
}

// ThemeDisplayName returns the human-readable name of a theme, falling back
// to the raw name.
func ThemeDisplayName(name string) string {
	if display, ok := themeDisplayNames[name]; ok {
		return display
	}
	return name
}
