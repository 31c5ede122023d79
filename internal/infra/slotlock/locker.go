package slotlock

import (
	"context"
	"errors"
)

// ErrTimeout means the lock was still held when the wait bound ran out.
var ErrTimeout = errors.New("slotlock: wait timed out")

// Locker serialises work on one (date, timeSlot) key. Holding the lock is
// an optimisation only; callers must stay correct without it.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

func Key(date, timeSlot string) string {
	return "slot:" + date + "|" + timeSlot
}
