package slotlock

import (
	"context"
	"hash/fnv"
	"time"
)

const defaultStripes = 64

// LocalLocker is an in-process Locker built on a fixed set of channel
// mutexes. Unrelated keys may share a stripe.
type LocalLocker struct {
	stripes []chan struct{}
	wait    time.Duration
}

func NewLocalLocker(wait time.Duration) *LocalLocker {
	stripes := make([]chan struct{}, defaultStripes)
	for i := range stripes {
		stripes[i] = make(chan struct{}, 1)
	}
	return &LocalLocker{stripes: stripes, wait: wait}
}

func (l *LocalLocker) Acquire(ctx context.Context, key string) (func(), error) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	stripe := l.stripes[h.Sum32()%uint32(len(l.stripes))]

	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	select {
	case stripe <- struct{}{}:
		return func() { <-stripe }, nil
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrTimeout
		}
		return nil, ctx.Err()
	}
}

var _ Locker = (*LocalLocker)(nil)
