// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// windowSlack covers the 1 KiB minimum window of a frame smaller than that.
const windowSlack = 64 << 10

type zstdCodec struct {
	level zstd.EncoderLevel
}

// NewZstd returns a Zstandard codec. level follows the reference zstd scale
// and is mapped to the nearest klauspost encoder level.
func NewZstd(level int) (Codec, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}

	return &zstdCodec{level: zstd.EncoderLevelFromZstd(level)}, nil
}

func (c *zstdCodec) ID() byte     { return IDZstd }
func (c *zstdCodec) Name() string { return "zstd" }

func (c *zstdCodec) Compress(src []byte) ([]byte, error) {
	// A single encoder goroutine keeps the output byte-for-byte reproducible;
	// zero frames makes an empty input still produce a decodable frame.
	// Single segment frames declare a window no larger than their content,
	// which the size limit on the decoder relies on.
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(c.level),
		zstd.WithEncoderConcurrency(1),
		zstd.WithZeroFrames(true),
		zstd.WithSingleSegment(true),
	)
	if err != nil {
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}
	defer enc.Close()

	return enc.EncodeAll(src, nil), nil
}

func (c *zstdCodec) Decompress(src []byte, maxSize int) ([]byte, error) {
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(uint64(max(maxSize, 0))+windowSlack),
	)
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer dec.Close()

	var h zstd.Header
	if err := h.Decode(src); err == nil && h.HasFCS && h.FrameContentSize > uint64(max(maxSize, 0)) {
		return nil, fmt.Errorf("%w: frame declares %d > %d bytes", ErrSizeExceeded, h.FrameContentSize, maxSize)
	}

	out, err := dec.DecodeAll(src, nil)
	switch {
	case errors.Is(err, zstd.ErrDecoderSizeExceeded), errors.Is(err, zstd.ErrWindowSizeExceeded):
		return nil, fmt.Errorf("%w: zstd: %v", ErrSizeExceeded, err)
	case err != nil:
		return nil, fmt.Errorf("%w: zstd: %v", ErrCorruptStream, err)
	case len(out) > maxSize:
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrSizeExceeded, len(out), maxSize)
	}

	return out, nil
}
