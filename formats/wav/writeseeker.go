// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
)

// writeSeeker implements io.WriteSeeker for in-memory data.
// go-audio's encoder seeks back to patch chunk sizes, which standard
// output cannot do, so files are assembled here first.
type writeSeeker struct {
	data   []byte
	offset int64
}

func newWriteSeeker(capacity int) *writeSeeker {
	return &writeSeeker{data: make([]byte, 0, capacity)}
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	end := ws.offset + int64(len(p))
	if end > int64(len(ws.data)) {
		if end > int64(cap(ws.data)) {
			grown := make([]byte, len(ws.data), max(end, 2*int64(cap(ws.data))))
			copy(grown, ws.data)
			ws.data = grown
		}
		ws.data = ws.data[:end]
	}

	n := copy(ws.data[ws.offset:], p)
	ws.offset += int64(n)

	return n, nil
}

// Seek moves the write position; the encoder only seeks back to patch the
// RIFF and data sizes and then to the end.
func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var from int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		from = ws.offset
	case io.SeekEnd:
		from = int64(len(ws.data))
	default:
		return ws.offset, fmt.Errorf("wav: seek whence %d not supported", whence)
	}

	if from+offset < 0 {
		return ws.offset, fmt.Errorf("wav: seek to %d is before the start of the file", from+offset)
	}

	ws.offset = from + offset

	return ws.offset, nil
}

// Bytes returns the written data.
func (ws *writeSeeker) Bytes() []byte { return ws.data }
