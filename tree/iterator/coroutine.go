package iterator

// Coroutine is returned from NewCoroutine and abstracts
// communication with the iterating goroutine.
type Coroutine[K, V any] struct {
	entries <-chan Entry[K, V]
	stop    chan<- struct{}
}

// Entries returns a channel on which the tree entries
// will be sent. It is closed when the iteration finishes
// or after Stop is called.
func (c Coroutine[K, V]) Entries() <-chan Entry[K, V] {
	return c.entries
}

// Stop stops the iteration. This must not be called more than once.
// If the Entries channel is closed, this doesn't need to be called.
//
// If you need to stop from multiple goroutines, use a sync.Once:
//
//	var once sync.Once
//	...
//	once.Do(co.Stop)
func (c Coroutine[K, V]) Stop() {
	close(c.stop)
}

// NewCoroutine starts coroutine-style iteration over i.
// The usage is as follows:
//
//	co := NewCoroutine[K, V](someTree.InOrderIterator())
//	for e := range co.Entries() {
//		... do stuff with e.Key and e.Value ...
//		if e meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: NewCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
//
// The tree must not be mutated until the goroutine has exited.
func NewCoroutine[K, V any](i EntryIterator[K, V]) Coroutine[K, V] {
	out := make(chan Entry[K, V])
	stop := make(chan struct{})
	co := Coroutine[K, V]{
		entries: out,
		stop:    stop,
	}

	if i == nil {
		close(out)
		return co
	}

	go func(out chan<- Entry[K, V], stop <-chan struct{}, i EntryIterator[K, V]) {
		defer close(out)
		for i.Next() {
			select {
			case out <- Entry[K, V]{Key: i.Item(), Value: i.Value()}:
			case <-stop:
				return
			}
		}
	}(out, stop, i)

	return co
}
