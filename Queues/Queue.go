package Queues

// Queue is a first in, first out queue.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns EmptyQueueError when there is none.
	Pop() (T, error)
	//Peek at the oldest item without removing it. The zero value when empty.
	Peek() T
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
