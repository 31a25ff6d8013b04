// SPDX-License-Identifier: EPL-2.0

package delta

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Payload framing, all integers little endian:
//
//	0   4  magic "FLQD"
//	4   1  version
//	5   1  entropy codec id
//	6   1  delta order
//	7   1  compression level
//	8   8  xxhash64 of the residual stream
//	16  -  sample count, uvarint
//	..  -  entropy coded residual stream
const (
	magic         = "FLQD"
	formatVersion = 1
	fixedSize     = 16
)

type frameHeader struct {
	codecID  byte
	order    int
	level    int
	checksum uint64
	count    uint64
}

func (h frameHeader) appendTo(dst []byte) []byte {
	dst = append(dst, magic...)
	dst = append(dst, formatVersion, h.codecID, byte(h.order), byte(h.level))
	dst = binary.LittleEndian.AppendUint64(dst, h.checksum)

	return binary.AppendUvarint(dst, h.count)
}

// parseFrameHeader returns the header and the remaining entropy coded body.
func parseFrameHeader(src []byte) (frameHeader, []byte, error) {
	var h frameHeader

	if len(src) < len(magic) {
		return h, nil, ErrTruncated
	}
	if !bytes.Equal(src[:len(magic)], []byte(magic)) {
		return h, nil, ErrBadMagic
	}
	if len(src) < fixedSize {
		return h, nil, ErrTruncated
	}
	if v := src[4]; v != formatVersion {
		return h, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	h.codecID = src[5]
	h.order = int(src[6])
	h.level = int(src[7])
	h.checksum = binary.LittleEndian.Uint64(src[8:16])

	count, n := binary.Uvarint(src[fixedSize:])
	if n == 0 {
		return h, nil, ErrTruncated
	}
	if n < 0 {
		return h, nil, fmt.Errorf("%w: sample count overflows", ErrCorrupt)
	}
	h.count = count

	return h, src[fixedSize+n:], nil
}
