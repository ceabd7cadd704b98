// Package compress provides the compression codecs used by podbuf snapshot
// envelopes.
//
// A snapshot captures the raw bytes of a caller buffer; those bytes are
// frequently sparse (unused reserved tails, zero-padded strings), so even a
// fast codec shrinks them substantially. The package defines a small Codec
// interface and four implementations selected by format.CompressionType:
//
//   - None: pass-through (data already dense, or CPU-bound callers)
//   - Zstd: best ratio; cgo implementation behind the cgo_zstd build tag,
//     pure-Go implementation otherwise
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// All codecs are stateless values, safe for concurrent use; internal
// encoder/decoder state is pooled.
package compress
