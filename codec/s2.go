// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

type s2Codec struct {
	level int
}

// NewS2 returns an S2 block codec. Levels below 4 use the fast encoder,
// below 8 the better encoder, the rest the best encoder.
func NewS2(level int) (Codec, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}

	return &s2Codec{level: level}, nil
}

func (c *s2Codec) ID() byte     { return IDS2 }
func (c *s2Codec) Name() string { return "s2" }

func (c *s2Codec) Compress(src []byte) ([]byte, error) {
	switch {
	case c.level < 4:
		return s2.Encode(nil, src), nil
	case c.level < 8:
		return s2.EncodeBetter(nil, src), nil
	default:
		return s2.EncodeBest(nil, src), nil
	}
}

func (c *s2Codec) Decompress(src []byte, maxSize int) ([]byte, error) {
	n, err := s2.DecodedLen(src)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %v", ErrCorruptStream, err)
	}
	if n > maxSize {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrSizeExceeded, n, maxSize)
	}

	out, err := s2.Decode(nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %v", ErrCorruptStream, err)
	}

	return out, nil
}
