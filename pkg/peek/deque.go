package peek

const minDequeCap = 8

// deque is a growable double-ended queue, the heap-backed counterpart of ring.
// It shares the ring's head+length discipline and reallocates on demand.
type deque[T any] struct {
	ring[T]
}

func (d *deque[T]) grow() {
	newCap := len(d.buf) * 2
	if newCap < minDequeCap {
		newCap = minDequeCap
	}
	buf := make([]T, newCap)
	for i := 0; i < d.size; i++ {
		item, _ := d.ring.get(i)
		buf[i] = item
	}
	d.buf = buf
	d.head = 0
}

func (d *deque[T]) pushBack(value T) {
	if d.full() {
		d.grow()
	}
	d.ring.pushBack(value)
}

func (d *deque[T]) pushFront(value T) {
	if d.full() {
		d.grow()
	}
	d.ring.pushFront(value)
}
