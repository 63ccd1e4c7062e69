package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/johnquangdev/lecture-quiz/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/lecture-quiz/internal/usecase/errors"
)

// KeyValue is the storage the job store is built on
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
}

// JobStore keeps processing jobs as JSON snapshots that expire after ttl.
// Readers always get a copy, never the job the worker is mutating.
type JobStore struct {
	kv  KeyValue
	ttl time.Duration
}

// NewJobStore creates a job store on top of kv
func NewJobStore(kv KeyValue, ttl time.Duration) *JobStore {
	return &JobStore{kv: kv, ttl: ttl}
}

func jobKey(id string) string {
	return "job:" + id
}

// Save stores a snapshot of job
func (s *JobStore) Save(ctx context.Context, job *entities.ProcessingJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode job %s: %w", job.ID, err)
	}
	return s.kv.Set(ctx, jobKey(job.ID), data, s.ttl)
}

// Get loads the latest snapshot of a job
func (s *JobStore) Get(ctx context.Context, id string) (*entities.ProcessingJob, error) {
	data, ok, err := s.kv.Get(ctx, jobKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to load job %s: %w", id, err)
	}
	if !ok {
		return nil, usecaseErrors.ErrJobNotFound
	}

	var job entities.ProcessingJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to decode job %s: %w", id, err)
	}
	return &job, nil
}
