// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/pdx-cs-sound/flacq/audio"
)

// readChunk is the number of samples pulled from the decoder per call.
const readChunk = 4096

// IsAiff reports whether data starts with an AIFF or AIFF-C form header.
func IsAiff(data []byte) bool {
	if len(data) < 12 || string(data[:4]) != "FORM" {
		return false
	}

	form := string(data[8:12])

	return form == "AIFF" || form == "AIFC"
}

// Decoder extracts mono 16-bit PCM samples from an AIFF stream.
type Decoder struct{}

// Decode reads a whole AIFF file from r, validates that it holds mono 16-bit
// PCM and returns its header and every sample frame. AIFF samples are always
// integers; the big-endian byte order is handled by go-audio.
func (Decoder) Decode(r io.Reader) (audio.Header, []int16, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return audio.Header{}, nil, fmt.Errorf("%w: reading input: %w", audio.ErrIO, err)
	}

	if !IsAiff(data) {
		return audio.Header{}, nil, ErrNotAiffFile
	}

	if string(data[8:12]) == "AIFC" {
		return audio.Header{}, nil, ErrCompressedAiff
	}

	// go-audio requires io.ReadSeeker
	dec := aiff.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return audio.Header{}, nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return audio.Header{}, nil, ErrUnsupportedAiffLayout
	}

	header := audio.Header{
		SampleRate:    format.SampleRate,
		Channels:      format.NumChannels,
		BitsPerSample: int(dec.BitDepth),
		Format:        audio.Integer,
	}

	if err := header.Validate(); err != nil {
		return header, nil, err
	}

	want := int(dec.NumSampleFrames)
	samples := make([]int16, 0, want)
	buf := &goaudio.IntBuffer{
		Data:           make([]int, readChunk),
		Format:         format,
		SourceBitDepth: audio.SupportedBitDepth,
	}

	for len(samples) < want {
		n, err := dec.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return header, nil, fmt.Errorf("%w: reading samples: %v", audio.ErrDecode, err)
		}

		for _, v := range buf.Data[:n] {
			samples = append(samples, int16(v))
		}

		if n == 0 || err != nil {
			break
		}
	}

	if len(samples) < want {
		return header, nil, fmt.Errorf("%w: %d of %d bytes present", ErrTruncatedData,
			len(samples)*header.BlockAlign(), want*header.BlockAlign())
	}

	return header, samples[:want], nil
}
