package models

// Chunk is a bounded excerpt of a source work, the unit of embedding
// and retrieval. Chunks are created at ingestion time and never mutated.
type Chunk struct {
	Content       string
	Source        string
	ChunkIndex    int
	PhilosopherID string
}

// EmbeddingRecord is a stored chunk together with its vector.
type EmbeddingRecord struct {
	Chunk
	Embedding []float32
}

// RetrievalResult is the grounding material assembled for one question
// against one philosopher. It lives for the duration of a single request.
type RetrievalResult struct {
	Context    string
	Sources    []string
	HasContext bool
}

// DetectedTheme is a theme surfaced in a question, with its display score
// clamped to [0, 1].
type DetectedTheme struct {
	Name        string
	Score       float64
	Description string
}

// ThemeDetection holds the top themes found in a question and the
// philosophers the theme catalog associates with them.
type ThemeDetection struct {
	Themes                []DetectedTheme
	SuggestedPhilosophers []string
}

// PanelSelection is the bounded set of philosophers chosen to answer a
// question from multiple perspectives.
type PanelSelection struct {
	PhilosopherIDs  []string
	MatchedThemes   []string
	Recommendations []string
	FiltersExpanded bool
}

// Perspective is one philosopher's generated answer within a panel.
type Perspective struct {
	PhilosopherID string
	Name          string
	Bio           string
	Response      string
	Sources       []string
}

// PanelAnswer is the full multi-perspective response: an overview
// synthesized across the surviving perspectives plus the perspectives
// themselves.
type PanelAnswer struct {
	Overview        string
	Perspectives    []Perspective
	Themes          []string
	Recommendations []string
	FiltersExpanded bool
}
