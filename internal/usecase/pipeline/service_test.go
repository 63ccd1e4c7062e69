package pipeline

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johnquangdev/lecture-quiz/internal/domain/entities"
	"github.com/johnquangdev/lecture-quiz/internal/infrastructure/cache"
	"github.com/johnquangdev/lecture-quiz/internal/infrastructure/storage"
	usecaseErrors "github.com/johnquangdev/lecture-quiz/internal/usecase/errors"
)

type fakeQuiz struct {
	transcribeErrs []error // returned in order, then success
	calls          int
	mu             sync.Mutex
}

func (f *fakeQuiz) Transcribe(_ context.Context, filePath, jobID string) (*entities.TranscriptionJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.transcribeErrs) > 0 {
		err := f.transcribeErrs[0]
		f.transcribeErrs = f.transcribeErrs[1:]
		return nil, err
	}
	return &entities.TranscriptionJob{
		ID:       jobID,
		Chunks:   []entities.Chunk{{ID: "1", StartTime: 0, EndTime: 300, Text: "Thermodynamics lecture", Duration: 300}},
		FullText: "Thermodynamics lecture",
	}, nil
}

func (f *fakeQuiz) GenerateQuestions(_ context.Context, jobID string, chunks []entities.Chunk, count int) (*entities.GenerationJob, error) {
	sets := make([]entities.QuestionSet, len(chunks))
	for i, c := range chunks {
		sets[i] = entities.QuestionSet{SegmentID: c.ID, StartTime: c.StartTime, EndTime: c.EndTime}
	}
	return &entities.GenerationJob{ID: jobID, QuestionSets: sets}, nil
}

type fakeArchive struct {
	mu      sync.Mutex
	objects map[string]string
}

func (a *fakeArchive) UploadFile(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.objects[objectName] = string(data)
	return nil
}

func (a *fakeArchive) UploadJSON(_ context.Context, objectName string, _ interface{}) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.objects[objectName] = "json"
	return nil
}

func newTestService(t *testing.T, q *fakeQuiz, archive Archive) Service {
	t.Helper()
	return newTestServiceWithLogger(t, q, archive, nil)
}

func newTestServiceWithLogger(t *testing.T, q *fakeQuiz, archive Archive, logger *zap.Logger) Service {
	t.Helper()

	uploads, err := storage.NewLocalStore(t.TempDir(), 1<<20)
	if err != nil {
		t.Fatalf("uploads: %v", err)
	}
	mem := cache.NewMemoryStore(time.Minute)
	t.Cleanup(func() { mem.Close() })

	svc := NewService(q, NewJobStore(mem, time.Hour), uploads, archive, Config{
		QuestionCount: 2,
		MaxAttempts:   3,
		RetryDelay:    time.Millisecond,
	}, logger)
	t.Cleanup(func() { _ = svc.Shutdown(context.Background()) })
	return svc
}

func waitForTerminal(t *testing.T, svc Service, id string) *entities.ProcessingJob {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, err := svc.Status(context.Background(), id)
		if err != nil {
			t.Fatalf("status: %v", err)
		}
		if job.IsTerminal() {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %s did not finish", id)
	return nil
}

func TestSubmit_CompletesJob(t *testing.T) {
	archive := &fakeArchive{objects: map[string]string{}}
	svc := newTestService(t, &fakeQuiz{}, archive)

	job, err := svc.Submit(context.Background(), "lecture.mp4", "video/mp4", strings.NewReader("video"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if job.Status != entities.ProcessingStatusTranscribing || job.Progress != 0 {
		t.Fatalf("unexpected initial state %+v", job)
	}

	done := waitForTerminal(t, svc, job.ID)
	if done.Status != entities.ProcessingStatusCompleted || done.Progress != 100 {
		t.Fatalf("unexpected final state %+v", done)
	}
	if len(done.Transcript) != 1 || len(done.Questions) != 1 || done.FullText != "Thermodynamics lecture" {
		t.Fatalf("unexpected results %+v", done)
	}
	if done.ObjectName != "recordings/"+job.ID+".mp4" {
		t.Fatalf("unexpected object name %q", done.ObjectName)
	}

	archive.mu.Lock()
	defer archive.mu.Unlock()
	if archive.objects["recordings/"+job.ID+".mp4"] != "video" {
		t.Fatalf("recording not archived: %v", archive.objects)
	}
	if _, ok := archive.objects["quizzes/"+job.ID+".json"]; !ok {
		t.Fatalf("quiz not archived: %v", archive.objects)
	}
}

func TestSubmit_RetriesTransientTranscriptionErrors(t *testing.T) {
	q := &fakeQuiz{transcribeErrs: []error{errors.New("assemblyai returned status 503")}}
	svc := newTestService(t, q, nil)

	job, err := svc.Submit(context.Background(), "lecture.mp4", "", strings.NewReader("video"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	done := waitForTerminal(t, svc, job.ID)
	if done.Status != entities.ProcessingStatusCompleted {
		t.Fatalf("expected completion after retry, got %+v", done)
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.calls != 2 {
		t.Fatalf("expected 2 transcription attempts, got %d", q.calls)
	}
}

func TestSubmit_FailureMarksJob(t *testing.T) {
	q := &fakeQuiz{transcribeErrs: []error{errors.New("unsupported codec")}}
	core, logs := observer.New(zapcore.InfoLevel)
	svc := newTestServiceWithLogger(t, q, nil, zap.New(core))

	job, err := svc.Submit(context.Background(), "lecture.mp4", "", strings.NewReader("video"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	done := waitForTerminal(t, svc, job.ID)
	if done.Status != entities.ProcessingStatusError || done.Error != "Processing failed" {
		t.Fatalf("unexpected failed state %+v", done)
	}

	entries := logs.FilterMessage("❌ Processing failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one failure log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["job_id"] != job.ID || fields["stage"] != "transcribe" || fields["app_code"] != "PROCESSING_FAILED" {
		t.Fatalf("unexpected failure log fields %v", fields)
	}
	if elapsed, ok := fields["elapsed"].(time.Duration); !ok || elapsed < 0 {
		t.Fatalf("expected elapsed duration, got %v", fields["elapsed"])
	}
}

func TestSubmit_NoFile(t *testing.T) {
	svc := newTestService(t, &fakeQuiz{}, nil)
	if _, err := svc.Submit(context.Background(), "", "", nil); !errors.Is(err, usecaseErrors.ErrNoFileUploaded) {
		t.Fatalf("expected ErrNoFileUploaded, got %v", err)
	}
}

func TestSubmit_TooLarge(t *testing.T) {
	uploads, err := storage.NewLocalStore(t.TempDir(), 2)
	if err != nil {
		t.Fatalf("uploads: %v", err)
	}
	mem := cache.NewMemoryStore(time.Minute)
	defer mem.Close()
	svc := NewService(&fakeQuiz{}, NewJobStore(mem, time.Hour), uploads, nil, Config{}, nil)

	if _, err := svc.Submit(context.Background(), "big.mp4", "", strings.NewReader("video")); !errors.Is(err, usecaseErrors.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestStatus_NotFound(t *testing.T) {
	svc := newTestService(t, &fakeQuiz{}, nil)
	if _, err := svc.Status(context.Background(), "missing"); !errors.Is(err, usecaseErrors.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
