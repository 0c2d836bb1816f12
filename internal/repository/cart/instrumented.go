package cart

import (
	"context"
	"errors"
	"time"

	"gearstore/internal/domain"
)

type storageRecorder interface {
	ObserveStorage(backend, call string, duration time.Duration, failed bool)
}

type instrumentedRepo struct {
	next     Repository
	backend  string
	recorder storageRecorder
}

// Instrument times every Load and Save on next. A missing cart is not
// counted as a failure.
func Instrument(next Repository, backend string, recorder storageRecorder) Repository {
	if recorder == nil {
		return next
	}
	return &instrumentedRepo{next: next, backend: backend, recorder: recorder}
}

func (r *instrumentedRepo) Load(ctx context.Context, sessionID string) ([]byte, error) {
	start := time.Now()
	payload, err := r.next.Load(ctx, sessionID)
	r.recorder.ObserveStorage(r.backend, "load", time.Since(start), err != nil && !errors.Is(err, domain.ErrNotFound))
	return payload, err
}

func (r *instrumentedRepo) Save(ctx context.Context, sessionID string, payload []byte) error {
	start := time.Now()
	err := r.next.Save(ctx, sessionID, payload)
	r.recorder.ObserveStorage(r.backend, "save", time.Since(start), err != nil)
	return err
}

func (r *instrumentedRepo) Ping(ctx context.Context) error {
	return r.next.Ping(ctx)
}
