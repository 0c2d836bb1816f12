package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gearstore/internal/domain"
	"gearstore/internal/notify"
	cartrepo "gearstore/internal/repository/cart"
)

type stubCatalog struct {
	products map[int]domain.Product
}

func (s stubCatalog) Get(id int) (domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

type stubRecorder struct {
	mu    sync.Mutex
	calls map[string]int
}

func (s *stubRecorder) IncOperation(operation, outcome string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[operation+":"+outcome]++
}

type failingStorage struct{}

func (failingStorage) Load(context.Context, string) ([]byte, error) {
	return nil, domain.ErrNotFound
}

func (failingStorage) Save(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func testCatalog() stubCatalog {
	return stubCatalog{products: map[int]domain.Product{
		1: {ID: 1, Name: "Bag", PriceCents: 1000, Image: "bag.jpg", Colors: []string{"Blue", "Red"}, Sizes: []string{"M"}},
		2: {ID: 2, Name: "Mat", PriceCents: 2000, Image: "mat.jpg"},
	}}
}

func newTestService(t *testing.T) (*Service, *stubRecorder) {
	t.Helper()
	rec := &stubRecorder{}
	svc, err := New(testCatalog(), cartrepo.NewMemory(), rec, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc, rec
}

func TestNewRequiresDependencies(t *testing.T) {
	if _, err := New(nil, cartrepo.NewMemory(), nil, nil); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
	if _, err := New(testCatalog(), nil, nil, nil); err == nil {
		t.Fatalf("expected error for missing storage")
	}
}

func TestAddItemMergesAndNotifies(t *testing.T) {
	ctx := context.Background()
	svc, rec := newTestService(t)
	notices := &notify.Collector{}

	opts := domain.VariantOptions{Color: "Blue", Size: "M"}
	if _, err := svc.AddItem(ctx, "s1", 1, opts, notices); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	snap, err := svc.AddItem(ctx, "s1", 1, opts, notices)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(snap.Lines) != 1 || snap.Lines[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", snap.Lines)
	}
	if snap.TotalItems != 2 || snap.TotalCents != 2000 {
		t.Fatalf("unexpected totals %+v", snap)
	}
	if got := len(notices.Notices()); got != 2 {
		t.Fatalf("expected 2 notices, got %d", got)
	}
	if rec.calls["add:success"] != 2 {
		t.Fatalf("expected 2 recorded adds, got %+v", rec.calls)
	}

	other, err := svc.Get(ctx, "s2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(other.Lines) != 0 {
		t.Fatalf("sessions must not share carts: %+v", other.Lines)
	}
}

func TestAddItemValidation(t *testing.T) {
	ctx := context.Background()
	svc, rec := newTestService(t)

	if _, err := svc.AddItem(ctx, "s1", 99, domain.VariantOptions{}, nil); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.AddItem(ctx, "s1", 1, domain.VariantOptions{Color: "Green", Size: "M"}, nil); !errors.Is(err, domain.ErrInvalidVariant) {
		t.Fatalf("expected invalid variant for unknown color, got %v", err)
	}
	if _, err := svc.AddItem(ctx, "s1", 1, domain.VariantOptions{Color: "Blue"}, nil); !errors.Is(err, domain.ErrInvalidVariant) {
		t.Fatalf("expected invalid variant for missing size, got %v", err)
	}
	if _, err := svc.AddItem(ctx, "s1", 2, domain.VariantOptions{Color: "Blue"}, nil); !errors.Is(err, domain.ErrInvalidVariant) {
		t.Fatalf("expected invalid variant for product without colors, got %v", err)
	}
	if _, err := svc.AddItem(ctx, "s1", 2, domain.VariantOptions{}, nil); err != nil {
		t.Fatalf("product without options accepts empty variant: %v", err)
	}
	if rec.calls["add:failure"] != 4 {
		t.Fatalf("expected 4 failed adds, got %+v", rec.calls)
	}
}

func TestSetQuantityRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	blue := domain.VariantOptions{Color: "Blue", Size: "M"}
	red := domain.VariantOptions{Color: "Red", Size: "M"}

	if _, err := svc.AddItem(ctx, "s1", 1, blue, nil); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := svc.AddItem(ctx, "s1", 1, red, nil); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	blueKey := domain.LineKey{ProductID: 1, Color: "Blue", Size: "M"}
	snap, err := svc.SetQuantity(ctx, "s1", blueKey, 3, nil)
	if err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if snap.TotalItems != 4 || snap.TotalCents != 4000 {
		t.Fatalf("unexpected totals after set quantity %+v", snap)
	}

	notices := &notify.Collector{}
	snap, err = svc.SetQuantity(ctx, "s1", blueKey, 0, notices)
	if err != nil {
		t.Fatalf("SetQuantity(0): %v", err)
	}
	if len(snap.Lines) != 1 || snap.Lines[0].SelectedColor != "Red" {
		t.Fatalf("expected only red line left, got %+v", snap.Lines)
	}
	if got := notices.Notices(); len(got) != 1 || got[0].Message != "Removed from cart" {
		t.Fatalf("unexpected notices %+v", got)
	}

	snap, err = svc.RemoveItem(ctx, "s1", domain.LineKey{ProductID: 1, Color: "Red", Size: "M"}, nil)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(snap.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", snap.Lines)
	}

	if _, err := svc.AddItem(ctx, "s1", 2, domain.VariantOptions{}, nil); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	snap, err = svc.Clear(ctx, "s1", nil)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(snap.Lines) != 0 || snap.TotalItems != 0 || snap.TotalCents != 0 {
		t.Fatalf("expected cleared cart, got %+v", snap)
	}
}

func TestMutationSaveFailure(t *testing.T) {
	rec := &stubRecorder{}
	svc, err := New(testCatalog(), failingStorage{}, rec, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	notices := &notify.Collector{}
	if _, err := svc.AddItem(context.Background(), "s1", 2, domain.VariantOptions{}, notices); err == nil {
		t.Fatalf("expected save error")
	}
	if len(notices.Notices()) != 0 {
		t.Fatalf("no notice expected when save fails, got %+v", notices.Notices())
	}
	if rec.calls["add:failure"] != 1 {
		t.Fatalf("expected failure to be recorded, got %+v", rec.calls)
	}
}

func TestConcurrentAddsSameSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	const workers = 25
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.AddItem(ctx, "s1", 2, domain.VariantOptions{}, nil); err != nil {
				t.Errorf("AddItem: %v", err)
			}
		}()
	}
	wg.Wait()

	snap, err := svc.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snap.TotalItems != workers {
		t.Fatalf("expected %d items, got %d", workers, snap.TotalItems)
	}
	if svc.locks.size() != 0 {
		t.Fatalf("expected session locks to be released, %d left", svc.locks.size())
	}
}
