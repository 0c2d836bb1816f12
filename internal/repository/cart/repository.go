package cart

import "context"

// Repository stores one serialized cart per visitor session. Load returns
// domain.ErrNotFound when the session has nothing saved.
type Repository interface {
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Save(ctx context.Context, sessionID string, payload []byte) error
	Ping(ctx context.Context) error
}
