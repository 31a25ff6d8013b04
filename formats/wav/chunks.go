// SPDX-License-Identifier: EPL-2.0

package wav

import "encoding/binary"

// formatExtensible is the fmt tag that defers the encoding to a SubFormat GUID.
const formatExtensible = 0xFFFE

// subFormatOffset is where the SubFormat GUID starts inside an extensible fmt
// chunk body; its first two bytes repeat the plain format tag.
const subFormatOffset = 24

// findChunk returns the body of the first top-level RIFF chunk named id and
// the size its header declares. go-audio rounds sizes up to the pad byte and
// skips the fmt extension, so the raw bytes are consulted for both.
func findChunk(data []byte, id string) ([]byte, uint32, bool) {
	off := 12
	for off+8 <= len(data) {
		size := binary.LittleEndian.Uint32(data[off+4 : off+8])
		body := off + 8

		if string(data[off:off+4]) == id {
			end := min(uint64(body)+uint64(size), uint64(len(data)))
			return data[body:end], size, true
		}

		next := uint64(body) + uint64(size) + uint64(size&1)
		if next > uint64(len(data)) {
			break
		}
		off = int(next)
	}

	return nil, 0, false
}

// formatTag resolves the effective encoding tag of the fmt chunk, reading the
// SubFormat GUID when the file uses WAVE_FORMAT_EXTENSIBLE.
func formatTag(data []byte, tag uint16) uint16 {
	if tag != formatExtensible {
		return tag
	}

	body, _, ok := findChunk(data, "fmt ")
	if !ok || len(body) < subFormatOffset+2 {
		return tag
	}

	return binary.LittleEndian.Uint16(body[subFormatOffset:])
}
