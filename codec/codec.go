// SPDX-License-Identifier: EPL-2.0

package codec

// Codec is a general purpose byte compressor applied to the residual stream
// after delta encoding.
type Codec interface {
	// ID is the single-byte identifier written into the payload framing.
	ID() byte
	// Name is the identifier used on the command line.
	Name() string
	Compress(src []byte) ([]byte, error)
	// Decompress fails with ErrSizeExceeded rather than produce more than
	// maxSize bytes.
	Decompress(src []byte, maxSize int) ([]byte, error)
}

// Factory builds a Codec for a compression level in [MinLevel, MaxLevel].
type Factory func(level int) (Codec, error)

// Wire identifiers. They are part of the payload format and must not change.
const (
	IDNone byte = 0x00
	IDZstd byte = 0x01
	IDS2   byte = 0x02
)

const (
	MinLevel = 0
	MaxLevel = 12
)

// Default is the back end used when none is named.
const Default = "zstd"
