package Queues

// ArrayQueue is a Queue on a circular array that doubles when full.
// The zero value is an empty queue.
type ArrayQueue[T any] struct {
	sz, head uint
	content  []T
}

func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

// resize moves the items to a new array of length newLen, oldest first.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	n := copy(nc, u.content[u.head:min(u.head+u.sz, uint(len(u.content)))])
	copy(nc[n:u.sz], u.content)
	u.content, u.head = nc, 0
}

// Clear the queue, keeping the array.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

// Push
// Time: amortized O(1)
func (u *ArrayQueue[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(max(4, u.sz*2))
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

func (u *ArrayQueue[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

func (u *ArrayQueue[T]) Peek() T {
	if u.Empty() {
		return *new(T)
	}
	return u.content[u.head]
}

var _ Queue[int] = (*ArrayQueue[int])(nil)
