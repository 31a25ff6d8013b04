// SPDX-License-Identifier: EPL-2.0

package flacq

import (
	"fmt"
	"io"

	"github.com/pdx-cs-sound/flacq/codec"
	"github.com/pdx-cs-sound/flacq/delta"
	"github.com/pdx-cs-sound/flacq/formats/wav"
	"github.com/rs/zerolog"
)

// Options configures the encode path. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	// DeltaOrder is the number of differencing passes, 0 to delta.MaxOrder.
	DeltaOrder int
	// Codec names the entropy back end registered in Registry.
	Codec string
	// Registry resolves codecs; codec.DefaultRegistry() when nil.
	Registry *codec.Registry
	// Logger receives diagnostics; nothing is logged when nil.
	Logger *zerolog.Logger
}

// DefaultOptions returns delta order 2 with the zstd back end.
func DefaultOptions() Options {
	return Options{
		DeltaOrder: delta.DefaultOrder,
		Codec:      codec.Default,
	}
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	nop := zerolog.Nop()

	return &nop
}

// Stats summarises one run of the pipeline.
type Stats struct {
	// Samples is the number of 16-bit samples read or recovered.
	Samples int
	// OriginalBytes is the size of the raw sample data, 2 per sample.
	OriginalBytes int
	// CompressedBytes is the size of the compressed payload.
	CompressedBytes int
	// OutputBytes is the number of bytes written to the output stream.
	OutputBytes int
}

// Ratio returns compressed size over original size, 0 when there were no samples.
func (s Stats) Ratio() float64 {
	if s.OriginalBytes == 0 {
		return 0
	}

	return float64(s.CompressedBytes) / float64(s.OriginalBytes)
}

// Summary formats the sizes the way the command line tool reports them.
func (s Stats) Summary() string {
	return fmt.Sprintf("%d/%d (%04.3f)", s.CompressedBytes, s.OriginalBytes, s.Ratio())
}

// Compress reads a mono 16-bit PCM WAV or AIFF file from r and writes the
// compressed layout to w: a header-only WAV file followed by the delta payload.
//
// The pipeline:
//  1. Reads and validates the WAV or AIFF container
//  2. Extracts every sample
//  3. Delta encodes and entropy codes the samples at compression level 12
//  4. Writes the original header followed by the payload
//
// Nothing is written to w when any step fails.
func Compress(r io.Reader, w io.Writer, opts Options) (Stats, error) {
	log := opts.logger()

	comp, err := delta.NewCompressor(delta.Config{
		CompressionLevel: delta.DefaultLevel,
		DeltaOrder:       opts.DeltaOrder,
		Codec:            opts.Codec,
	}, opts.Registry)
	if err != nil {
		return Stats{}, fmt.Errorf("configuring compressor: %w", err)
	}

	header, samples, container, err := readContainer(r)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Samples: len(samples), OriginalBytes: 2 * len(samples)}
	log.Info().
		Int("samples", stats.Samples).
		Str("container", container).
		Str("format", header.String()).
		Msg("samples read")

	payload, err := comp.Compress(samples)
	if err != nil {
		return stats, fmt.Errorf("compressing: %w", err)
	}

	stats.CompressedBytes = len(payload)
	log.Info().
		Int("compressed", stats.CompressedBytes).
		Int("original", stats.OriginalBytes).
		Float64("ratio", stats.Ratio()).
		Int("order", comp.Config().DeltaOrder).
		Str("codec", comp.Config().Codec).
		Msg(stats.Summary())

	if err := wav.WriteCompressed(w, header, payload); err != nil {
		return stats, fmt.Errorf("writing compressed output: %w", err)
	}

	stats.OutputBytes = wav.HeaderSize + len(payload)

	return stats, nil
}

// Decompress reads the compressed layout written by Compress from r and
// writes a standard mono 16-bit PCM WAV file to w. The delta order and
// entropy back end are read from the payload; only opts.Registry and
// opts.Logger are used.
func Decompress(r io.Reader, w io.Writer, opts Options) (Stats, error) {
	log := opts.logger()

	header, payload, err := wav.ReadCompressed(r)
	if err != nil {
		return Stats{}, fmt.Errorf("reading compressed input: %w", err)
	}

	samples, err := delta.NewDecompressor(opts.Registry).Decompress(payload)
	if err != nil {
		return Stats{}, fmt.Errorf("decompressing: %w", err)
	}

	stats := Stats{
		Samples:         len(samples),
		OriginalBytes:   2 * len(samples),
		CompressedBytes: len(payload),
	}
	log.Info().Int("samples", stats.Samples).Str("format", header.String()).Msg("samples recovered")

	if err := wav.WriteWAV16(w, header, samples); err != nil {
		return stats, fmt.Errorf("writing wav: %w", err)
	}

	stats.OutputBytes = wav.HeaderSize + stats.OriginalBytes
	log.Info().Int("bytes", stats.OutputBytes).Msg("wav written")

	return stats, nil
}
