// SPDX-License-Identifier: EPL-2.0

package codec

import "fmt"

type noneCodec struct{}

// NewNone returns a pass-through codec. The level is validated but unused.
func NewNone(level int) (Codec, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}

	return noneCodec{}, nil
}

func (noneCodec) ID() byte     { return IDNone }
func (noneCodec) Name() string { return "none" }

func (noneCodec) Compress(src []byte) ([]byte, error) {
	return append([]byte(nil), src...), nil
}

func (noneCodec) Decompress(src []byte, maxSize int) ([]byte, error) {
	if len(src) > maxSize {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrSizeExceeded, len(src), maxSize)
	}

	return append([]byte(nil), src...), nil
}
