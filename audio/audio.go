// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// SampleFormat is the encoding of individual samples inside a container.
type SampleFormat int

const (
	// Unknown covers any container encoding tag other than PCM or IEEE float.
	Unknown SampleFormat = iota
	// Integer is signed (or, at 8 bits, unsigned) linear PCM.
	Integer
	// Float is IEEE 754 floating point.
	Float
)

func (f SampleFormat) String() string {
	switch f {
	case Integer:
		return "int"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

const (
	// SupportedChannels is the only channel count the pipeline accepts.
	SupportedChannels = 1
	// SupportedBitDepth is the only sample width the pipeline accepts.
	SupportedBitDepth = 16
)

// Header describes a PCM stream as read from its container.
// It is carried unchanged from input to output in both directions.
type Header struct {
	// SampleRate of the stream in Hz.
	SampleRate int
	// Channels count (1=mono, 2=stereo).
	Channels int
	// BitsPerSample is the width of one sample of one channel.
	BitsPerSample int
	// Format of each sample.
	Format SampleFormat
}

// Mono16 returns the header of a mono 16-bit integer stream at sampleRate.
func Mono16(sampleRate int) Header {
	return Header{
		SampleRate:    sampleRate,
		Channels:      SupportedChannels,
		BitsPerSample: SupportedBitDepth,
		Format:        Integer,
	}
}

// Validate reports whether the header describes mono 16-bit integer PCM.
// The returned error wraps ErrUnsupportedFormat.
func (h Header) Validate() error {
	if h.Format != Integer {
		return fmt.Errorf("%w: only int samples are handled, got %s", ErrUnsupportedFormat, h.Format)
	}

	if h.Channels != SupportedChannels {
		return fmt.Errorf("%w: only 1 channel is handled, got %d", ErrUnsupportedFormat, h.Channels)
	}

	if h.BitsPerSample != SupportedBitDepth {
		return fmt.Errorf("%w: only 16-bit samples are handled, got %d", ErrUnsupportedFormat, h.BitsPerSample)
	}

	return nil
}

// BlockAlign is the size in bytes of one frame.
func (h Header) BlockAlign() int {
	return h.Channels * (h.BitsPerSample / 8)
}

func (h Header) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d-bit %s", h.SampleRate, h.Channels, h.BitsPerSample, h.Format)
}
