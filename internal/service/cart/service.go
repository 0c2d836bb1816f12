package cart

import (
	"context"
	"errors"

	"gearstore/internal/cart"
	"gearstore/internal/domain"
	"gearstore/internal/logger"
	"gearstore/internal/metrics"
	"gearstore/internal/notify"
)

type productLookup interface {
	Get(id int) (domain.Product, error)
}

type operationRecorder interface {
	IncOperation(operation, outcome string)
}

// Service runs cart operations for visitor sessions. Each call rehydrates the
// session's cart, applies one transition and saves it while holding the
// session's lock.
type Service struct {
	products productLookup
	storage  cart.Storage
	recorder operationRecorder
	logger   *logger.Logger
	locks    *sessionLocks
}

// Snapshot is the cart state returned after every operation.
type Snapshot struct {
	Lines      []domain.CartLine `json:"lines"`
	TotalItems int               `json:"totalItems"`
	TotalCents int64             `json:"totalCents"`
}

func New(products productLookup, storage cart.Storage, recorder operationRecorder, log *logger.Logger) (*Service, error) {
	if products == nil {
		return nil, errors.New("product catalog required")
	}
	if storage == nil {
		return nil, errors.New("cart storage required")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		products: products,
		storage:  storage,
		recorder: recorder,
		logger:   log,
		locks:    newSessionLocks(),
	}, nil
}

func (s *Service) Get(ctx context.Context, sessionID string) (Snapshot, error) {
	store, err := cart.Open(ctx, sessionID, s.storage, notify.Discard{}, s.logger)
	if err != nil {
		return Snapshot{}, err
	}
	return snapshotOf(store), nil
}

// AddItem adds one unit of the product. The color and size must be options the
// product offers, or empty when it offers none.
func (s *Service) AddItem(ctx context.Context, sessionID string, productID int, opts domain.VariantOptions, notifier notify.Notifier) (Snapshot, error) {
	product, err := s.products.Get(productID)
	if err != nil {
		s.record("add", err)
		return Snapshot{}, err
	}
	if !product.HasColor(opts.Color) || !product.HasSize(opts.Size) {
		s.record("add", domain.ErrInvalidVariant)
		return Snapshot{}, domain.ErrInvalidVariant
	}
	return s.mutate(ctx, "add", sessionID, notifier, func(store *cart.Store) error {
		return store.AddItem(ctx, product, opts)
	})
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, key domain.LineKey, quantity int, notifier notify.Notifier) (Snapshot, error) {
	return s.mutate(ctx, "set_quantity", sessionID, notifier, func(store *cart.Store) error {
		return store.SetQuantity(ctx, key, quantity)
	})
}

func (s *Service) RemoveItem(ctx context.Context, sessionID string, key domain.LineKey, notifier notify.Notifier) (Snapshot, error) {
	return s.mutate(ctx, "remove", sessionID, notifier, func(store *cart.Store) error {
		return store.RemoveItem(ctx, key)
	})
}

func (s *Service) Clear(ctx context.Context, sessionID string, notifier notify.Notifier) (Snapshot, error) {
	return s.mutate(ctx, "clear", sessionID, notifier, func(store *cart.Store) error {
		return store.Clear(ctx)
	})
}

func (s *Service) mutate(ctx context.Context, operation, sessionID string, notifier notify.Notifier, apply func(*cart.Store) error) (Snapshot, error) {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	unlock := s.locks.lock(sessionID)
	defer unlock()

	store, err := cart.Open(ctx, sessionID, s.storage, notifier, s.logger)
	if err != nil {
		s.record(operation, err)
		return Snapshot{}, err
	}
	if err := apply(store); err != nil {
		s.record(operation, err)
		s.logger.Error(ctx, "cart "+operation+" failed", err)
		return Snapshot{}, err
	}
	s.record(operation, nil)
	return snapshotOf(store), nil
}

func (s *Service) record(operation string, err error) {
	if s.recorder == nil {
		return
	}
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
	}
	s.recorder.IncOperation(operation, outcome)
}

func snapshotOf(store *cart.Store) Snapshot {
	return Snapshot{
		Lines:      store.Lines(),
		TotalItems: store.TotalItemCount(),
		TotalCents: store.TotalPrice(),
	}
}
