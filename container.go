// SPDX-License-Identifier: EPL-2.0

package flacq

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdx-cs-sound/flacq/audio"
	"github.com/pdx-cs-sound/flacq/formats/aiff"
	"github.com/pdx-cs-sound/flacq/formats/wav"
)

// sampleDecoder extracts the header and every sample of a mono 16-bit container.
type sampleDecoder interface {
	Decode(r io.Reader) (audio.Header, []int16, error)
}

// decoderFor picks the container decoder by the leading bytes of the input.
// Anything that is not AIFF goes to the WAV decoder, which reports it.
func decoderFor(data []byte) (sampleDecoder, string) {
	if aiff.IsAiff(data) {
		return aiff.Decoder{}, "aiff"
	}

	return wav.Decoder{}, "wav"
}

// readContainer reads all of r and decodes it with the matching container decoder.
func readContainer(r io.Reader) (audio.Header, []int16, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return audio.Header{}, nil, "", fmt.Errorf("%w: reading input: %w", audio.ErrIO, err)
	}

	dec, name := decoderFor(data)
	header, samples, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return header, nil, name, fmt.Errorf("reading %s: %w", name, err)
	}

	return header, samples, name, nil
}
