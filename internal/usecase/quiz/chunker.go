package quiz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/johnquangdev/lecture-quiz/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/lecture-quiz/internal/usecase/errors"
)

// AssembleChunks groups ordered fragments into fixed-duration chunks.
//
// A chunk is closed when a fragment ends past the current boundary. The closed
// chunk ends at the boundary or at that fragment's start, whichever is earlier,
// and the boundary moves forward by exactly one chunkDuration per crossing
// fragment. A fragment longer than chunkDuration is never split. Chunk IDs are
// 1-based sequence numbers.
func AssembleChunks(fragments []entities.Fragment, chunkDuration float64) ([]entities.Chunk, error) {
	if chunkDuration <= 0 || math.IsNaN(chunkDuration) || math.IsInf(chunkDuration, 0) {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidChunkDuration, chunkDuration)
	}

	chunks := make([]entities.Chunk, 0)
	currentStart := 0.0
	buffer := make([]string, 0)

	// whitespace-only buffers count as empty so no chunk is emitted without text
	flush := func(endTime float64) {
		text := strings.TrimSpace(strings.Join(buffer, " "))
		if text == "" {
			return
		}
		chunks = append(chunks, entities.Chunk{
			ID:        strconv.Itoa(len(chunks) + 1),
			StartTime: currentStart,
			EndTime:   endTime,
			Text:      text,
			Duration:  chunkDuration,
		})
	}

	for _, frag := range fragments {
		boundary := currentStart + chunkDuration
		if frag.End > boundary {
			flush(math.Min(boundary, frag.Start))
			currentStart = boundary
			buffer = buffer[:0]
		}
		buffer = append(buffer, frag.Text)
	}

	flush(currentStart + chunkDuration)

	return chunks, nil
}

// FullText joins fragment texts the way chunks join them
func FullText(fragments []entities.Fragment) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		parts = append(parts, f.Text)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
