package cart

import (
	"context"
	"sync"

	"gearstore/internal/domain"
)

type memoryRepo struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

// NewMemory keeps carts in process memory; they are lost on restart.
func NewMemory() Repository {
	return &memoryRepo{carts: make(map[string][]byte)}
}

func (r *memoryRepo) Load(_ context.Context, sessionID string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payload, ok := r.carts[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), payload...), nil
}

func (r *memoryRepo) Save(_ context.Context, sessionID string, payload []byte) error {
	r.mu.Lock()
	r.carts[sessionID] = append([]byte(nil), payload...)
	r.mu.Unlock()
	return nil
}

func (r *memoryRepo) Ping(context.Context) error {
	return nil
}
