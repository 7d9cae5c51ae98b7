package peek

// ring is a fixed-capacity double-ended queue over a preallocated slice.
// Elements are addressed by offset from head; the backing array never grows.
type ring[T any] struct {
	buf  []T
	head int
	size int
}

func newRing[T any](capacity int) ring[T] {
	return ring[T]{buf: make([]T, capacity)}
}

func (r *ring[T]) cap() int {
	return len(r.buf)
}

func (r *ring[T]) len() int {
	return r.size
}

func (r *ring[T]) full() bool {
	return r.size == len(r.buf)
}

func (r *ring[T]) increment(i int) int {
	return (i + 1) % len(r.buf)
}

func (r *ring[T]) decrement(i int) int {
	return (i - 1 + len(r.buf)) % len(r.buf)
}

// pushBack appends a value. Callers must check full() first.
func (r *ring[T]) pushBack(value T) {
	r.buf[(r.head+r.size)%len(r.buf)] = value
	r.size++
}

// pushFront prepends a value. Callers must check full() first.
func (r *ring[T]) pushFront(value T) {
	r.head = r.decrement(r.head)
	r.buf[r.head] = value
	r.size++
}

func (r *ring[T]) popFront() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	value := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = r.increment(r.head)
	r.size--
	return value, true
}

func (r *ring[T]) popBack() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	tail := (r.head + r.size - 1) % len(r.buf)
	value := r.buf[tail]
	r.buf[tail] = zero
	r.size--
	return value, true
}

func (r *ring[T]) get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= r.size {
		return zero, false
	}
	return r.buf[(r.head+i)%len(r.buf)], true
}

func (r *ring[T]) clear() {
	var zero T
	for i := 0; i < r.size; i++ {
		r.buf[(r.head+i)%len(r.buf)] = zero
	}
	r.head = 0
	r.size = 0
}

// drop removes the first n elements. n must not exceed len().
func (r *ring[T]) drop(n int) {
	var zero T
	for i := 0; i < n; i++ {
		r.buf[r.head] = zero
		r.head = r.increment(r.head)
	}
	r.size -= n
}
