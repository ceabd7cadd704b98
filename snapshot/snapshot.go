package snapshot

import (
	"fmt"
	"io"
	"math"

	"github.com/podbuf/podbuf/compress"
	"github.com/podbuf/podbuf/errs"
	"github.com/podbuf/podbuf/format"
	"github.com/podbuf/podbuf/internal/hash"
	"github.com/podbuf/podbuf/internal/pool"
)

// Capture returns a snapshot envelope of buf encoded with the given
// compression type. buf itself is never modified.
func Capture(buf []byte, compression format.CompressionType) ([]byte, error) {
	header, payload, err := encode(buf, compression)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, header.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

// CaptureTo writes a snapshot envelope of buf to w in a single Write call,
// assembling it in a pooled buffer. It returns the number of envelope bytes
// written.
func CaptureTo(w io.Writer, buf []byte, compression format.CompressionType) (int, error) {
	header, payload, err := encode(buf, compression)
	if err != nil {
		return 0, err
	}

	bb := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(bb)

	_, _ = bb.Write(header.Bytes())
	_, _ = bb.Write(payload)

	return w.Write(bb.Bytes())
}

func encode(buf []byte, compression format.CompressionType) (Header, []byte, error) {
	if len(buf) > math.MaxUint32 {
		return Header{}, nil, fmt.Errorf("%w: buffer of %d bytes exceeds envelope range",
			errs.ErrCapacityExceeded, len(buf))
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return Header{}, nil, err
	}

	payload, err := codec.Compress(buf)
	if err != nil {
		return Header{}, nil, fmt.Errorf("snapshot compress: %w", err)
	}

	// LZ4 block compression signals incompressible input with an empty
	// result; store such buffers raw so the envelope stays decodable.
	if len(payload) == 0 && len(buf) > 0 {
		compression = format.CompressionNone
		payload = buf
	}

	header := Header{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: compression,
		RawLen:      uint32(len(buf)),
		Digest:      hash.Sum64(buf),
	}

	return header, payload, nil
}

// Restore decodes the envelope and copies the original buffer bytes into
// dst. It returns the number of bytes restored.
//
// Nothing is written to dst until the payload has been decompressed and its
// digest verified: a failed restore leaves dst byte-identical to before the
// call. Errors: errs.ErrInvalidSnapshot for a malformed envelope or a
// decompressed size that disagrees with the header, errs.ErrChecksumMismatch
// for a digest mismatch, and errs.ErrCapacityExceeded when dst is shorter
// than the recorded raw length.
func Restore(dst, envelope []byte) (int, error) {
	var header Header
	if err := header.Parse(envelope); err != nil {
		return 0, err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return 0, err
	}

	raw, err := codec.Decompress(envelope[HeaderSize:])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrInvalidSnapshot, err)
	}

	if len(raw) != int(header.RawLen) {
		return 0, fmt.Errorf("%w: payload decodes to %d bytes, header records %d",
			errs.ErrInvalidSnapshot, len(raw), header.RawLen)
	}
	if hash.Sum64(raw) != header.Digest {
		return 0, errs.ErrChecksumMismatch
	}
	if len(dst) < len(raw) {
		return 0, fmt.Errorf("%w: destination of %d bytes cannot hold %d restored bytes",
			errs.ErrCapacityExceeded, len(dst), len(raw))
	}

	return copy(dst, raw), nil
}
