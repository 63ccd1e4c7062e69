package entities

// Fragment is a timed piece of transcribed speech produced by a transcriber
type Fragment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}
