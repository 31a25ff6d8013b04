// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/pdx-cs-sound/flacq/audio"
)

// WAVE format tags of the fmt chunk.
const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// readChunk is the number of samples pulled from the decoder per call.
const readChunk = 4096

// container is a parsed WAV stream positioned at the start of its sample data.
type container struct {
	r        *bytes.Reader
	dec      *gowav.Decoder
	header   audio.Header
	// dataSize is the data chunk size as declared, before pad rounding.
	dataSize uint32
}

// open reads all of r and parses the RIFF headers up to the data chunk.
func open(r io.Reader) (*container, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading input: %w", audio.ErrIO, err)
	}

	br := bytes.NewReader(data)
	dec := gowav.NewDecoder(br)

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotWavFile, err)
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrNotWavFile
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPCMData, err)
	}

	if dec.PCMChunk == nil {
		return nil, ErrNoPCMData
	}

	dataSize := uint32(dec.PCMSize)
	if _, size, ok := findChunk(data, "data"); ok {
		dataSize = size
	}

	return &container{
		r:        br,
		dec:      dec,
		header:   headerOf(dec, formatTag(data, dec.WavAudioFormat)),
		dataSize: dataSize,
	}, nil
}

func headerOf(dec *gowav.Decoder, tag uint16) audio.Header {
	format := audio.Unknown
	switch tag {
	case formatPCM:
		format = audio.Integer
	case formatIEEEFloat:
		format = audio.Float
	}

	return audio.Header{
		SampleRate:    int(dec.SampleRate),
		Channels:      int(dec.NumChans),
		BitsPerSample: int(dec.BitDepth),
		Format:        format,
	}
}

// Decoder extracts mono 16-bit PCM samples from a WAV stream.
type Decoder struct{}

// Decode reads a whole WAV file from r, validates that it holds mono 16-bit
// integer PCM and returns its header and every sample of its data chunk.
func (Decoder) Decode(r io.Reader) (audio.Header, []int16, error) {
	c, err := open(r)
	if err != nil {
		return audio.Header{}, nil, err
	}

	if err := c.header.Validate(); err != nil {
		return c.header, nil, err
	}

	if align := c.header.BlockAlign(); c.dataSize%uint32(align) != 0 {
		return c.header, nil, fmt.Errorf("%w: %d bytes is not a whole number of %d-byte frames", ErrMisalignedData, c.dataSize, align)
	}

	pcmSize := c.dataSize
	if int64(c.r.Len()) < int64(pcmSize) {
		return c.header, nil, fmt.Errorf("%w: %d of %d bytes present", ErrTruncatedData, c.r.Len(), pcmSize)
	}

	samples := make([]int16, 0, pcmSize/2)
	buf := &goaudio.IntBuffer{
		Data:           make([]int, readChunk),
		Format:         c.dec.Format(),
		SourceBitDepth: audio.SupportedBitDepth,
	}

	for {
		n, err := c.dec.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return c.header, nil, fmt.Errorf("%w: reading samples: %v", audio.ErrDecode, err)
		}

		for _, v := range buf.Data[:n] {
			samples = append(samples, int16(v))
		}

		if n == 0 || err != nil {
			break
		}
	}

	return c.header, samples[:min(len(samples), int(pcmSize)/2)], nil
}

// ReadCompressed reads the flacq compressed layout: a header-only WAV file
// followed by an opaque payload. It returns the validated header and the
// payload bytes.
func ReadCompressed(r io.Reader) (audio.Header, []byte, error) {
	c, err := open(r)
	if err != nil {
		return audio.Header{}, nil, err
	}

	if err := c.header.Validate(); err != nil {
		return c.header, nil, err
	}

	if c.dataSize != 0 {
		return c.header, nil, ErrNotCompressed
	}

	payload, err := io.ReadAll(c.r)
	if err != nil {
		return c.header, nil, fmt.Errorf("%w: reading payload: %w", audio.ErrIO, err)
	}

	return c.header, payload, nil
}
