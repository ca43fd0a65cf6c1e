package orderedbuffer

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
)

var ErrClosedBuffer = errors.New("buffer is closed")

// SeqFunc returns the sequence number of an item.
type SeqFunc[T any] func(T) int

// OrderedBuffer re-sequences items that arrive out of order.
// Items are kept sorted by sequence number and the contiguous head
// (next, next+1, ...) is released to Source as soon as it is complete.
//
// Insert and Close must be called from a single goroutine.
type OrderedBuffer[T any] struct {
	data  []T
	next  int
	seqOf SeqFunc[T]

	sink   chan T
	closed atomic.Bool
}

func NewOrderedBuffer[T any](capacity int, seqOf SeqFunc[T]) *OrderedBuffer[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &OrderedBuffer[T]{
		data:  make([]T, 0, capacity),
		seqOf: seqOf,
		sink:  make(chan T, capacity),
	}
}

// Insert places val by sequence number and releases every item that is now in order.
func (b *OrderedBuffer[T]) Insert(ctx context.Context, val T) error {
	if b.closed.Load() {
		return ErrClosedBuffer
	}

	seq := b.seqOf(val)
	idx := sort.Search(len(b.data), func(i int) bool {
		return seq < b.seqOf(b.data[i])
	})

	b.data = append(b.data, val)
	copy(b.data[idx+1:], b.data[idx:])
	b.data[idx] = val

	for len(b.data) > 0 && b.seqOf(b.data[0]) == b.next {
		head := b.data[0]
		b.data = b.data[1:]
		b.next++
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b.sink <- head:
		}
	}

	return nil
}

// Pending reports how many items are held back waiting for a predecessor.
func (b *OrderedBuffer[T]) Pending() int {
	return len(b.data)
}

func (b *OrderedBuffer[T]) Source() <-chan T {
	return b.sink
}

// Close flushes the held-back items in sequence order, gaps included, and closes Source.
func (b *OrderedBuffer[T]) Close(ctx context.Context) {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}

	done := make(chan struct{})

	go func() {
		defer close(done)
		for _, v := range b.data {
			select {
			case <-ctx.Done():
				return
			case b.sink <- v:
			}
		}
		b.data = nil
		close(b.sink)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}
