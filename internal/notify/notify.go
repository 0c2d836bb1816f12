package notify

import (
	"context"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a short user-facing message produced by an operation.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Notifier receives notices as operations complete.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// Success builds a success notice.
func Success(msg string) Notice {
	return Notice{Level: LevelSuccess, Message: msg}
}

// Failure builds an error notice.
func Failure(msg string) Notice {
	return Notice{Level: LevelError, Message: msg}
}

// Collector buffers notices for the duration of one request.
type Collector struct {
	mu      sync.Mutex
	notices []Notice
}

func (c *Collector) Notify(_ context.Context, n Notice) {
	c.mu.Lock()
	c.notices = append(c.notices, n)
	c.mu.Unlock()
}

// Notices returns the buffered notices in arrival order.
func (c *Collector) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

// Discard drops every notice.
type Discard struct{}

func (Discard) Notify(context.Context, Notice) {}
