// Package lock provides the in-flight guard that keeps two deliveries of the
// same payment from fulfilling one order at the same time.
package lock

import (
	"context"
	"sync"
)

// Locker acquires a named lock without waiting. ok is false when someone else
// holds it; release must be called exactly once when ok is true.
type Locker interface {
	TryLock(ctx context.Context, key string) (release func(), ok bool, err error)
}

// Local guards keys within a single process.
type Local struct {
	held sync.Map
}

func NewLocal() *Local {
	return &Local{}
}

func (l *Local) TryLock(_ context.Context, key string) (func(), bool, error) {
	if _, loaded := l.held.LoadOrStore(key, struct{}{}); loaded {
		return nil, false, nil
	}
	return func() { l.held.Delete(key) }, true, nil
}
