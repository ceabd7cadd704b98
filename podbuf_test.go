package podbuf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/podbuf/podbuf"
	"github.com/podbuf/podbuf/errs"
	"github.com/podbuf/podbuf/flex"
	"github.com/podbuf/podbuf/pod"
)

type account struct {
	Balance pod.Uint64
	Active  pod.Bool
	Name    pod.Str16
}

func TestAccountIsPod(t *testing.T) {
	require.NoError(t, pod.Check[account]())
	require.Equal(t, 25, pod.Size[account]())
}

func TestReadWrite(t *testing.T) {
	buf := make([]byte, 128)

	acct := account{
		Balance: pod.NewUint64(1_000_000),
		Active:  pod.NewBool(true),
		Name:    pod.NewStr16("alice"),
	}
	require.NoError(t, podbuf.Write(buf, 16, acct))

	view, err := podbuf.Read[account](buf, 16)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), view.Balance.Value())
	require.Equal(t, "alice", view.Name.String())

	// Mutations through the view land in the buffer.
	view.Balance.Set(2_000_000)
	again, err := podbuf.Read[account](buf, 16)
	require.NoError(t, err)
	require.Equal(t, uint64(2_000_000), again.Balance.Value())

	_, err = podbuf.Read[account](buf, 120)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}

// A fixed field, a sequence and a map coexisting in one buffer, with the
// sequence region grown by relocating the map region.
func TestMixedRegions(t *testing.T) {
	buf := make([]byte, 256)

	// Fixed field at [0, 8).
	require.NoError(t, podbuf.Write(buf, 0, pod.NewUint64(0xABCD)))

	// Sequence over [8, 20): capacity two uint32 elements.
	seq, err := flex.InitSequenceAt[pod.Uint32](buf, 8, 12)
	require.NoError(t, err)
	require.NoError(t, seq.Push(pod.NewUint32(1)))
	require.NoError(t, seq.Push(pod.NewUint32(2)))

	// Map over [20, 68).
	m, err := flex.InitMapAt[pod.Uint32, pod.Uint32](buf, 20, 48)
	require.NoError(t, err)
	_, _, err = m.Insert(pod.NewUint32(10), pod.NewUint32(100))
	require.NoError(t, err)

	// Sequence is full: grow its span, shifting the map region right.
	require.ErrorIs(t, seq.Push(pod.NewUint32(3)), errs.ErrCapacityExceeded)
	require.NoError(t, flex.ResizeRegion(buf, 8, 12, 16, 48))

	seq, err = flex.SequenceAt[pod.Uint32](buf, 8, 16)
	require.NoError(t, err)
	require.NoError(t, seq.Push(pod.NewUint32(3)))

	// Every region still reads back intact.
	fixed, err := podbuf.Read[pod.Uint64](buf, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(0xABCD), fixed.Value())

	m, err = flex.MapAt[pod.Uint32, pod.Uint32](buf, 24, 48)
	require.NoError(t, err)
	v, err := m.Get(pod.NewUint32(10))
	require.NoError(t, err)
	require.Equal(t, uint32(100), v.Value())
}

func TestSnapshotRoundTrip(t *testing.T) {
	buf := make([]byte, 128)
	require.NoError(t, podbuf.Write(buf, 0, pod.NewUint64(42)))

	envelope, err := podbuf.Capture(buf, podbuf.CompressionLZ4)
	require.NoError(t, err)

	restored := make([]byte, len(buf))
	n, err := podbuf.Restore(restored, envelope)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, buf, restored)
}

func TestChecksum(t *testing.T) {
	a := podbuf.Checksum([]byte("payload"))
	b := podbuf.Checksum([]byte("payload"))
	c := podbuf.Checksum([]byte("payloae"))

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}
