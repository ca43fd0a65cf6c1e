package orderedbuffer_test

import (
	"context"
	"slices"
	"testing"

	"github.com/on-the-ground/oneliners_go/shared/orderedbuffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	seq int
	val string
}

func seqOf(i item) int { return i.seq }

func TestOrderedBuffer_ReleasesContiguousHead(t *testing.T) {
	ctx := context.Background()
	buf := orderedbuffer.NewOrderedBuffer(8, seqOf)

	require.NoError(t, buf.Insert(ctx, item{2, "c"}))
	require.NoError(t, buf.Insert(ctx, item{1, "b"}))
	assert.Equal(t, 2, buf.Pending())
	assert.Len(t, buf.Source(), 0)

	require.NoError(t, buf.Insert(ctx, item{0, "a"}))
	assert.Equal(t, 0, buf.Pending())

	require.NoError(t, buf.Insert(ctx, item{4, "e"}))
	buf.Close(ctx)

	var got []string
	for v := range buf.Source() {
		got = append(got, v.val)
	}

	// 3 never arrived, so 4 is only released by Close
	want := []string{"a", "b", "c", "e"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestOrderedBuffer_InsertAfterClose(t *testing.T) {
	ctx := context.Background()

	buf := orderedbuffer.NewOrderedBuffer(2, seqOf)

	_ = buf.Insert(ctx, item{0, "a"})
	buf.Close(ctx)
	buf.Close(ctx)

	err := buf.Insert(ctx, item{1, "b"})
	assert.ErrorIs(t, err, orderedbuffer.ErrClosedBuffer)
}
