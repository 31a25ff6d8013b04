// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/pdx-cs-sound/flacq/audio"
)

// HeaderSize is the size of the canonical header written by this package.
const HeaderSize = 44

// maxSamples keeps the RIFF size field within 32 bits.
const maxSamples = (math.MaxUint32 - HeaderSize) / 2

// encode builds a complete WAV file in memory with go-audio's encoder.
func encode(h audio.Header, samples []int16) ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	if uint64(len(samples)) > maxSamples {
		return nil, fmt.Errorf("%w: %d", ErrTooManySamples, len(samples))
	}

	ws := newWriteSeeker(HeaderSize + 2*len(samples))
	enc := gowav.NewEncoder(ws, h.SampleRate, h.BitsPerSample, h.Channels, formatPCM)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: h.Channels,
			SampleRate:  h.SampleRate,
		},
		Data:           data,
		SourceBitDepth: h.BitsPerSample,
	}

	// Writing a buffer, even an empty one, makes the encoder emit the data
	// chunk header; Close then patches both size fields.
	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("encoding WAV: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("finalizing WAV: %w", err)
	}

	return ws.Bytes(), nil
}

// WriteWAV16 writes a complete mono 16-bit PCM WAV file described by h.
// The file is assembled in memory and written with a single call.
func WriteWAV16(w io.Writer, h audio.Header, samples []int16) error {
	data, err := encode(h, samples)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	return nil
}

// HeaderBytes returns the header-only WAV file for h: a fmt chunk followed by
// an empty data chunk.
func HeaderBytes(h audio.Header) ([]byte, error) {
	return encode(h, nil)
}

// WriteCompressed writes the header-only WAV for h followed by payload.
// The result is not a playable WAV file; ReadCompressed reads it back.
func WriteCompressed(w io.Writer, h audio.Header, payload []byte) error {
	header, err := HeaderBytes(h)
	if err != nil {
		return err
	}

	out := make([]byte, 0, len(header)+len(payload))
	out = append(out, header...)
	out = append(out, payload...)

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	return nil
}
