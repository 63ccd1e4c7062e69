package entities

// Chunk is a fixed-duration grouping of fragments and the unit of question generation.
//
// Duration always carries the nominal chunk duration, including for the trailing
// chunk where it may disagree with EndTime-StartTime. Callers rely on the nominal value.
type Chunk struct {
	ID        string  `json:"id"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Text      string  `json:"text"`
	Duration  float64 `json:"duration"`
}

// TranscriptionJob is the result of the chunking stage
type TranscriptionJob struct {
	ID       string  `json:"job_id"`
	Chunks   []Chunk `json:"segments"`
	FullText string  `json:"full_text"`
}
