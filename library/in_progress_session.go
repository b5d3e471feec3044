package library

import (
	"context"
	"sync"
)

// InProgressSession hands out exclusive use of keys.
// A key is held from Require until its release function is called,
// and other callers of Require on the same key wait until then.
type InProgressSession[K comparable] struct {
	mu      sync.Mutex
	closed  bool
	holders map[K]context.Context
}

// NewInProgressSession returns a new InProgressSession that holds no key.
func NewInProgressSession[K comparable]() *InProgressSession[K] {
	return &InProgressSession[K]{holders: make(map[K]context.Context)}
}

// Require waits until key is free and then takes it.
// success is false if i was closed before key could be taken.
// releaseFunc gives key back, and calling it more than once is fine.
func (i *InProgressSession[K]) Require(key K) (releaseFunc func(), success bool) {
	i.mu.Lock()
	for {
		if i.closed {
			i.mu.Unlock()
			return nil, false
		}
		holder, held := i.holders[key]
		if !held {
			break
		}
		i.mu.Unlock()
		<-holder.Done()
		i.mu.Lock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	i.holders[key] = ctx
	i.mu.Unlock()

	return sync.OnceFunc(func() {
		i.mu.Lock()
		delete(i.holders, key)
		i.mu.Unlock()
		cancel()
	}), true
}

// Close stops i from handing out keys, and returns a context
// for each key that is still held. Such a context is done once
// its key is released.
func (i *InProgressSession[K]) Close() (pending []context.Context) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.closed = true
	for _, holder := range i.holders {
		pending = append(pending, holder)
	}
	return
}
