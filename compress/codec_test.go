package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/podbuf/podbuf/format"
)

func testPayload() []byte {
	// Sparse layout typical of a pod buffer: small headers, zero-padded
	// tails, repeated element patterns.
	payload := make([]byte, 4096)
	copy(payload, []byte{0x05, 0, 0, 0})
	for i := 0; i < 40; i += 8 {
		payload[16+i] = byte(i)
	}
	copy(payload[1024:], bytes.Repeat([]byte("podbuf"), 32))

	return payload
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, "codec for %s", ct)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCodecRoundTrip(t *testing.T) {
	payload := testPayload()

	codecs := map[string]Codec{
		"noop": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodecCompressesSparseData(t *testing.T) {
	payload := testPayload()

	for name, codec := range map[string]Codec{
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	} {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestNoOpAliasesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte{1, 2, 3}

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, &data[0], &out[0])
}

func TestLZ4DecompressCorrupted(t *testing.T) {
	codec := NewLZ4Compressor()

	_, err := codec.Decompress([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	require.Error(t, err)
}

func TestZstdDecompressCorrupted(t *testing.T) {
	codec := NewZstdCompressor()

	_, err := codec.Decompress([]byte("definitely not a zstd frame"))
	require.Error(t, err)
}
