package compress

// ZstdCompressor compresses payloads with Zstandard, trading some speed for
// the best ratio of the built-in codecs. Two implementations exist behind
// build tags: the cgo binding (cgo_zstd tag) and a pure-Go fallback used by
// default, so cross-compiled callers need no C toolchain.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
