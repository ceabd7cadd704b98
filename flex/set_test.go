package flex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/podbuf/podbuf/errs"
	"github.com/podbuf/podbuf/pod"
)

func newTestSet(t *testing.T, span int) (*Set[pod.Uint64], []byte) {
	t.Helper()

	buf := make([]byte, span)
	s, err := InitSet[pod.Uint64](buf)
	require.NoError(t, err)

	return s, buf
}

func setValues(s *Set[pod.Uint64]) []uint64 {
	var out []uint64
	for v := range s.All() {
		out = append(out, v.Value())
	}

	return out
}

func TestSetAdd(t *testing.T) {
	s, _ := newTestSet(t, 4+8*8)

	for _, v := range []uint64{30, 10, 20} {
		added, err := s.Add(pod.NewUint64(v))
		require.NoError(t, err)
		require.True(t, added)
	}

	require.Equal(t, 3, s.Len())
	require.Equal(t, []uint64{10, 20, 30}, setValues(s))

	t.Run("duplicate is rejected without error", func(t *testing.T) {
		added, err := s.Add(pod.NewUint64(20))
		require.NoError(t, err)
		require.False(t, added)
		require.Equal(t, 3, s.Len())
	})
}

func TestSetContainsRemove(t *testing.T) {
	s, _ := newTestSet(t, 4+8*8)

	_, err := s.Add(pod.NewUint64(42))
	require.NoError(t, err)

	require.True(t, s.Contains(pod.NewUint64(42)))
	require.False(t, s.Contains(pod.NewUint64(43)))

	require.NoError(t, s.Remove(pod.NewUint64(42)))
	require.False(t, s.Contains(pod.NewUint64(42)))

	require.ErrorIs(t, s.Remove(pod.NewUint64(42)), errs.ErrKeyNotFound)
}

func TestSetCapacity(t *testing.T) {
	// Room for exactly two elements.
	s, buf := newTestSet(t, 4+8*2)

	for _, v := range []uint64{1, 2} {
		_, err := s.Add(pod.NewUint64(v))
		require.NoError(t, err)
	}

	before := append([]byte(nil), buf...)

	_, err := s.Add(pod.NewUint64(3))
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	require.Equal(t, before, buf)

	// A duplicate of an existing element is still a clean no-op.
	added, err := s.Add(pod.NewUint64(1))
	require.NoError(t, err)
	require.False(t, added)
}

func TestSetReattach(t *testing.T) {
	buf := make([]byte, 64)

	s, err := InitSetAt[pod.Uint64](buf, 0, 36)
	require.NoError(t, err)
	_, err = s.Add(pod.NewUint64(7))
	require.NoError(t, err)

	again, err := SetAt[pod.Uint64](buf, 0, 36)
	require.NoError(t, err)
	require.True(t, again.Contains(pod.NewUint64(7)))
	require.Equal(t, 1, again.Len())
}
