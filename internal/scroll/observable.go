package scroll

import "sync"

// Value is an observable cell: it holds a current value and notifies
// subscribers synchronously whenever the value changes. Closing the
// cell drops all subscribers; Set after Close is a no-op.
type Value[T comparable] struct {
	mu     sync.Mutex
	value  T
	subs   map[int]func(T)
	nextID int
	closed bool
}

// NewValue creates a cell holding initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{value: initial, subs: make(map[int]func(T))}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores next and notifies subscribers if it differs from the
// current value. Subscribers run synchronously, outside the cell's
// lock, in unspecified order.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	if v.closed || v.value == next {
		v.mu.Unlock()
		return
	}
	v.value = next
	fns := make([]func(T), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}

// Subscribe registers fn to run on every change. The returned function
// unsubscribes; calling it more than once is harmless.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return func() {}
	}
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subs, id)
	}
}

// Close drops all subscribers and freezes the cell. Idempotent.
func (v *Value[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.subs = make(map[int]func(T))
}
