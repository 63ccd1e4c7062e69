package quiz

import (
	"errors"
	"strings"
	"testing"

	"github.com/johnquangdev/lecture-quiz/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/lecture-quiz/internal/usecase/errors"
)

func TestAssembleChunks_CrossingFragmentOpensNewChunk(t *testing.T) {
	fragments := []entities.Fragment{
		{Start: 0, End: 290, Text: strings.Repeat("word ", 50)},
		{Start: 290, End: 310, Text: "closing remarks"},
	}

	chunks, err := AssembleChunks(fragments, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].StartTime != 0 || chunks[0].EndTime > 300 || chunks[0].EndTime != 290 {
		t.Fatalf("unexpected first chunk %+v", chunks[0])
	}
	if chunks[1].StartTime != 300 || chunks[1].EndTime != 600 {
		t.Fatalf("unexpected second chunk %+v", chunks[1])
	}
	if chunks[0].ID != "1" || chunks[1].ID != "2" {
		t.Fatalf("unexpected ids %q %q", chunks[0].ID, chunks[1].ID)
	}
	if chunks[1].Text != "closing remarks" {
		t.Fatalf("unexpected text %q", chunks[1].Text)
	}
}

func TestAssembleChunks_TrailingDurationIsNominal(t *testing.T) {
	chunks, err := AssembleChunks([]entities.Fragment{{Start: 0, End: 10, Text: "short"}}, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Duration != 300 || chunks[0].EndTime != 300 {
		t.Fatalf("unexpected trailing chunk %+v", chunks[0])
	}
}

func TestAssembleChunks_LongFragmentNotSplit(t *testing.T) {
	chunks, err := AssembleChunks([]entities.Fragment{{Start: 0, End: 1000, Text: "one long monologue"}}, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected a single chunk, got %d", len(chunks))
	}
	if chunks[0].Text != "one long monologue" {
		t.Fatalf("unexpected text %q", chunks[0].Text)
	}
}

func TestAssembleChunks_EmptyInput(t *testing.T) {
	chunks, err := AssembleChunks(nil, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chunks == nil || len(chunks) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", chunks)
	}
}

func TestAssembleChunks_InvalidDuration(t *testing.T) {
	for _, d := range []float64{0, -300} {
		_, err := AssembleChunks([]entities.Fragment{{Start: 0, End: 1, Text: "x"}}, d)
		if !errors.Is(err, usecaseErrors.ErrInvalidChunkDuration) {
			t.Fatalf("duration %v: expected ErrInvalidChunkDuration, got %v", d, err)
		}
	}
}

func TestAssembleChunks_JoinsAndTrims(t *testing.T) {
	fragments := []entities.Fragment{
		{Start: 0, End: 2, Text: " Hello"},
		{Start: 2, End: 4, Text: " world. "},
	}
	chunks, err := AssembleChunks(fragments, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chunks[0].Text != "Hello  world." {
		t.Fatalf("unexpected text %q", chunks[0].Text)
	}
}

func TestAssembleChunks_Properties(t *testing.T) {
	fragments := make([]entities.Fragment, 0)
	for start := 0.0; start < 1800; start += 7 {
		fragments = append(fragments, entities.Fragment{Start: start, End: start + 7, Text: "lecture"})
	}
	last := fragments[len(fragments)-1].End

	chunks, err := AssembleChunks(fragments, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) == 0 {
		t.Fatalf("expected chunks")
	}

	if chunks[0].StartTime != 0 {
		t.Fatalf("first chunk must start at 0, got %v", chunks[0].StartTime)
	}
	for i, c := range chunks {
		if c.Text == "" {
			t.Fatalf("chunk %d has empty text", i)
		}
		if i > 0 && c.StartTime < chunks[i-1].StartTime {
			t.Fatalf("chunk %d starts before its predecessor", i)
		}
	}
	if end := chunks[len(chunks)-1].EndTime; end < last {
		t.Fatalf("chunks end at %v, before last fragment end %v", end, last)
	}
}

func TestAssembleChunks_SkipsWhitespaceOnlyBuffer(t *testing.T) {
	fragments := []entities.Fragment{
		{Start: 0, End: 100, Text: "  "},
		{Start: 290, End: 320, Text: "spoken"},
	}
	chunks, err := AssembleChunks(fragments, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 || chunks[0].ID != "1" || chunks[0].StartTime != 300 {
		t.Fatalf("unexpected chunks %+v", chunks)
	}
}
