package db

import (
	"context"
	"testing"
)

func TestConnectRejectsBadDSN(t *testing.T) {
	if _, err := Connect(context.Background(), "postgres://%zz"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestConnectRedisRejectsBadURL(t *testing.T) {
	if _, err := ConnectRedis(context.Background(), "http://localhost:6379"); err == nil {
		t.Fatalf("expected error for non-redis scheme")
	}
}
