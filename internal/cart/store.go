package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gearstore/internal/domain"
	"gearstore/internal/logger"
	"gearstore/internal/notify"
)

const (
	noticeAdded   = "Added to cart!"
	noticeRemoved = "Removed from cart"
)

// Storage persists one serialized cart per session. Load returns
// domain.ErrNotFound when nothing has been saved for the session.
type Storage interface {
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Save(ctx context.Context, sessionID string, payload []byte) error
}

// Store owns one visitor's cart. It is not safe for concurrent use; callers
// serialize access per session.
type Store struct {
	sessionID string
	storage   Storage
	notifier  notify.Notifier
	logger    *logger.Logger
	lines     []domain.CartLine
}

// Open rehydrates the cart saved for sessionID. Missing or unreadable
// payloads yield an empty cart.
func Open(ctx context.Context, sessionID string, storage Storage, notifier notify.Notifier, log *logger.Logger) (*Store, error) {
	if storage == nil {
		return nil, errors.New("cart storage required")
	}
	if notifier == nil {
		return nil, errors.New("cart notifier required")
	}
	if sessionID == "" {
		return nil, errors.New("session id required")
	}
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{
		sessionID: sessionID,
		storage:   storage,
		notifier:  notifier,
		logger:    log,
	}

	payload, err := storage.Load(ctx, sessionID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("load cart: %w", err)
	}

	lines, err := Decode(payload)
	if err != nil {
		log.Warn(ctx, "discarding unreadable cart payload", err)
		return s, nil
	}
	s.lines = lines
	return s, nil
}

// AddItem adds one unit of the product with the chosen variant.
func (s *Store) AddItem(ctx context.Context, p domain.Product, opts domain.VariantOptions) error {
	s.lines = Add(s.lines, p, opts)
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.Success(noticeAdded))
	return nil
}

// RemoveItem deletes the line identified by key.
func (s *Store) RemoveItem(ctx context.Context, key domain.LineKey) error {
	s.lines = Remove(s.lines, key)
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.Success(noticeRemoved))
	return nil
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (s *Store) SetQuantity(ctx context.Context, key domain.LineKey, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, key)
	}
	s.lines = SetQuantity(s.lines, key, quantity)
	return s.persist(ctx)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.lines = Clear(s.lines)
	return s.persist(ctx)
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) TotalItemCount() int {
	return TotalItems(s.lines)
}

// TotalPrice is in cents.
func (s *Store) TotalPrice() int64 {
	return TotalPrice(s.lines)
}

func (s *Store) persist(ctx context.Context) error {
	payload, err := Encode(s.lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.storage.Save(ctx, s.sessionID, payload); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Encode serializes lines as a JSON array. An empty cart encodes as [].
func Encode(lines []domain.CartLine) ([]byte, error) {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return json.Marshal(lines)
}

// Decode parses a stored payload and restores the line invariants.
func Decode(payload []byte) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	if err := json.Unmarshal(payload, &lines); err != nil {
		return nil, err
	}
	return normalize(lines), nil
}
