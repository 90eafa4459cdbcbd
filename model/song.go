package model

// Song is one playable tune. Jianpu holds one Element per bar; bar-level
// scalars set the running key offset for everything after them.
type Song struct {
	Name        string
	BPM         int
	Description string
	Offset      float64
	Jianpu      []Element
}
