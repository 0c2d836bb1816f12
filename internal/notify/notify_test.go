package notify

import (
	"context"
	"sync"
	"testing"
)

func TestCollectorKeepsOrder(t *testing.T) {
	c := &Collector{}
	c.Notify(context.Background(), Success("Added to cart!"))
	c.Notify(context.Background(), Failure("Product not found"))

	got := c.Notices()
	if len(got) != 2 {
		t.Fatalf("expected 2 notices, got %d", len(got))
	}
	if got[0].Level != LevelSuccess || got[0].Message != "Added to cart!" {
		t.Fatalf("unexpected first notice %+v", got[0])
	}
	if got[1].Level != LevelError {
		t.Fatalf("unexpected second notice %+v", got[1])
	}

	got[0].Message = "changed"
	if c.Notices()[0].Message != "Added to cart!" {
		t.Fatalf("Notices must return a copy")
	}
}

func TestCollectorConcurrentNotify(t *testing.T) {
	c := &Collector{}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Notify(context.Background(), Success("ok"))
		}()
	}
	wg.Wait()
	if len(c.Notices()) != 20 {
		t.Fatalf("expected 20 notices, got %d", len(c.Notices()))
	}
}
