package model

type SongInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	BPM         int    `json:"bpm"`
	Bars        int    `json:"bars"`
}

// SongDetail is the single-song response; bars are rendered back to
// their token-string form.
type SongDetail struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BPM         int      `json:"bpm"`
	Offset      float64  `json:"offset"`
	Jianpu      []string `json:"jianpu"`
}

type ConvertRequestBody struct {
	Song         string   `json:"song"`
	Strategy     string   `json:"strategy"`
	ManualOffset *float64 `json:"manual_offset"`
	Preference   string   `json:"preference"`
}

type ConvertResponse struct {
	Strategy string           `json:"strategy"`
	Bars     [][]PhysicalNote `json:"bars"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
