package snapshot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/podbuf/podbuf/errs"
	"github.com/podbuf/podbuf/flex"
	"github.com/podbuf/podbuf/format"
	"github.com/podbuf/podbuf/internal/hash"
	"github.com/podbuf/podbuf/pod"
)

func testBuffer(t *testing.T) []byte {
	t.Helper()

	// A realistic buffer: a sequence region followed by slack.
	buf := make([]byte, 256)
	seq, err := flex.InitSequenceAt[pod.Uint64](buf, 0, 100)
	require.NoError(t, err)
	for i := range 5 {
		require.NoError(t, seq.Push(pod.NewUint64(uint64(i*1000))))
	}

	return buf
}

func TestCaptureRestoreRoundTrip(t *testing.T) {
	original := testBuffer(t)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			envelope, err := Capture(original, ct)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(envelope), HeaderSize)

			dst := make([]byte, len(original))
			n, err := Restore(dst, envelope)
			require.NoError(t, err)
			require.Equal(t, len(original), n)
			require.Equal(t, original, dst)
		})
	}
}

func TestCaptureIncompressibleBuffer(t *testing.T) {
	// High-entropy bytes defeat LZ4 block compression entirely; the
	// envelope must fall back to a raw payload instead of an empty one.
	original := make([]byte, 512)
	state := uint64(0x9E3779B97F4A7C15)
	for i := range original {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		original[i] = byte(state)
	}

	envelope, err := Capture(original, format.CompressionLZ4)
	require.NoError(t, err)

	var header Header
	require.NoError(t, header.Parse(envelope))
	require.Equal(t, format.CompressionNone, header.Compression)

	dst := make([]byte, len(original))
	n, err := Restore(dst, envelope)
	require.NoError(t, err)
	require.Equal(t, len(original), n)
	require.Equal(t, original, dst)
}

func TestCaptureDoesNotModifySource(t *testing.T) {
	original := testBuffer(t)
	before := append([]byte(nil), original...)

	_, err := Capture(original, format.CompressionZstd)
	require.NoError(t, err)
	require.Equal(t, before, original)
}

func TestCaptureTo(t *testing.T) {
	original := testBuffer(t)

	var sink bytes.Buffer
	n, err := CaptureTo(&sink, original, format.CompressionS2)
	require.NoError(t, err)
	require.Equal(t, sink.Len(), n)

	dst := make([]byte, len(original))
	_, err = Restore(dst, sink.Bytes())
	require.NoError(t, err)
	require.Equal(t, original, dst)
}

func TestCaptureUnknownCompression(t *testing.T) {
	_, err := Capture(make([]byte, 8), format.CompressionType(0x7F))
	require.Error(t, err)
}

func TestRestoreErrors(t *testing.T) {
	original := testBuffer(t)
	envelope, err := Capture(original, format.CompressionLZ4)
	require.NoError(t, err)

	t.Run("truncated header", func(t *testing.T) {
		_, err := Restore(make([]byte, 256), envelope[:HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), envelope...)
		bad[0] ^= 0xFF
		_, err := Restore(make([]byte, 256), bad)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("corrupted payload digest", func(t *testing.T) {
		// Corrupt the recorded digest; the payload still decodes, so the
		// mismatch must be caught by the checksum.
		bad := append([]byte(nil), envelope...)
		bad[8] ^= 0xFF

		dst := make([]byte, 256)
		before := append([]byte(nil), dst...)

		_, err := Restore(dst, bad)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
		require.Equal(t, before, dst, "failed restore must not touch dst")
	})

	t.Run("destination too small", func(t *testing.T) {
		dst := make([]byte, 100)
		_, err := Restore(dst, envelope)
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	})
}

func TestHeaderParse(t *testing.T) {
	t.Run("round-trip", func(t *testing.T) {
		original := Header{
			Magic:       MagicNumber,
			Version:     Version,
			Compression: format.CompressionS2,
			RawLen:      4096,
			Digest:      hash.Sum64([]byte("payload")),
		}

		var parsed Header
		require.NoError(t, parsed.Parse(original.Bytes()))
		require.Equal(t, original, parsed)
	})

	t.Run("envelope starts with ascii pb", func(t *testing.T) {
		h := Header{Magic: MagicNumber, Version: Version, Compression: format.CompressionNone}
		b := h.Bytes()
		require.Equal(t, byte('p'), b[0])
		require.Equal(t, byte('b'), b[1])
	})

	t.Run("unknown version", func(t *testing.T) {
		h := Header{Magic: MagicNumber, Version: 99, Compression: format.CompressionNone}
		var parsed Header
		require.ErrorIs(t, parsed.Parse(h.Bytes()), errs.ErrInvalidSnapshot)
	})

	t.Run("unknown compression", func(t *testing.T) {
		h := Header{Magic: MagicNumber, Version: Version, Compression: 0x7F}
		var parsed Header
		require.ErrorIs(t, parsed.Parse(h.Bytes()), errs.ErrInvalidSnapshot)
	})
}

func TestRestoreEmptyBuffer(t *testing.T) {
	envelope, err := Capture(nil, format.CompressionNone)
	require.NoError(t, err)

	n, err := Restore(nil, envelope)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}
