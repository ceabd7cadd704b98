package snapshot

import (
	"github.com/podbuf/podbuf/endian"
	"github.com/podbuf/podbuf/errs"
	"github.com/podbuf/podbuf/format"
)

const (
	// HeaderSize is the fixed envelope header size in bytes.
	HeaderSize = 16

	// MagicNumber identifies a podbuf snapshot envelope. Written
	// little-endian it reads as ASCII "pb".
	MagicNumber uint16 = 0x6270

	// Version is the envelope version written by this package.
	Version uint8 = 1
)

var engine = endian.GetLittleEndianEngine()

// Header is the fixed-size header at the start of every snapshot envelope.
type Header struct {
	// Magic is the envelope magic number, always MagicNumber.
	Magic uint16
	// Version is the envelope version.
	Version uint8
	// Compression identifies the codec applied to the payload.
	Compression format.CompressionType
	// RawLen is the length of the original buffer in bytes.
	RawLen uint32
	// Digest is the xxHash64 of the original buffer bytes.
	Digest uint64
}

// Parse reads the header from data. It returns errs.ErrInvalidSnapshot when
// data is shorter than HeaderSize or carries an unknown magic number,
// version, or compression type.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidSnapshot
	}

	h.Magic = engine.Uint16(data[0:2])
	h.Version = data[2]
	h.Compression = format.CompressionType(data[3])
	h.RawLen = engine.Uint32(data[4:8])
	h.Digest = engine.Uint64(data[8:16])

	if h.Magic != MagicNumber || h.Version != Version || !h.Compression.IsValid() {
		return errs.ErrInvalidSnapshot
	}

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine.PutUint16(b[0:2], h.Magic)
	b[2] = h.Version
	b[3] = uint8(h.Compression)
	engine.PutUint32(b[4:8], h.RawLen)
	engine.PutUint64(b[8:16], h.Digest)

	return b
}
