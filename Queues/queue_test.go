package Queues

import (
	"errors"
	"testing"
)

func TestArrayQueue_All(t *testing.T) {
	for _, initCap := range []uint{0, 1, 3, 16} {
		Q := MakeArrayQueue[int](initCap)
		next := 0
		for i := 0; i < 100; i++ {
			Q.Push(i)
			if i%3 == 0 {
				if v, err := Q.Pop(); err != nil || v != next {
					t.Fatalf("cap %d: wrong pop %d, want %d", initCap, v, next)
				}
				next++
			}
		}
		if Q.Size() != uint(100-next) {
			t.Errorf("cap %d: wrong size %d", initCap, Q.Size())
		}
		for !Q.Empty() {
			if Q.Peek() != next {
				t.Fatalf("cap %d: wrong peek %d, want %d", initCap, Q.Peek(), next)
			}
			if v, _ := Q.Pop(); v != next {
				t.Fatalf("cap %d: wrong pop %d, want %d", initCap, v, next)
			}
			next++
		}
		if next != 100 {
			t.Errorf("cap %d: popped %d items", initCap, next)
		}
		var e *EmptyQueueError
		if _, err := Q.Pop(); !errors.As(err, &e) {
			t.Errorf("cap %d: pop of empty queue gave %v", initCap, err)
		}
	}
}

func TestArrayQueue_Clear(t *testing.T) {
	var Q ArrayQueue[string]
	Q.Push("a")
	Q.Push("b")
	Q.Clear()
	if !Q.Empty() || Q.Peek() != "" {
		t.Error("queue not empty after clear")
	}
	Q.Push("c")
	if v, _ := Q.Pop(); v != "c" {
		t.Errorf("wrong pop %q", v)
	}
}
