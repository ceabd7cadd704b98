package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferWrite(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = bb.Write([]byte(" world"))
	require.NoError(t, err)
	require.Equal(t, 6, n)

	require.Equal(t, []byte("hello world"), bb.Bytes())
	require.Equal(t, 11, bb.Len())
}

func TestByteBufferReset(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("data"))

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), 16, "reset must keep the allocation")
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns an empty buffer", func(t *testing.T) {
		p := NewByteBufferPool(32, 1024)

		bb := p.Get()
		require.NotNil(t, bb)
		require.Equal(t, 0, bb.Len())

		_, _ = bb.Write([]byte("payload"))
		p.Put(bb)

		again := p.Get()
		require.Equal(t, 0, again.Len(), "pooled buffer must come back reset")
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(8, 16)

		bb := &ByteBuffer{B: make([]byte, 0, 64)}
		p.Put(bb) // silently discarded; nothing to assert beyond no panic
	})

	t.Run("nil put is ignored", func(t *testing.T) {
		p := NewByteBufferPool(8, 16)
		p.Put(nil)
	})
}

func TestDefaultSnapshotPool(t *testing.T) {
	bb := GetSnapshotBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	_, _ = bb.Write(make([]byte, 100))
	PutSnapshotBuffer(bb)
}
