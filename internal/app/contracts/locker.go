package contracts

import (
	"context"
	"time"
)

// LockerService is a short-lived mutual-exclusion gate keyed by arbitrary
// strings, used to serialize check-then-write sequences per key.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
