// SPDX-License-Identifier: EPL-2.0

package delta

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/pdx-cs-sound/flacq/codec"
	"github.com/pdx-cs-sound/flacq/utils"
)

const (
	// DefaultOrder is the delta order used when none is given.
	DefaultOrder = 2
	// MaxOrder is the highest supported delta order.
	MaxOrder = 7
	// DefaultLevel is the fixed compression level handed to the entropy codec.
	DefaultLevel = codec.MaxLevel
	// MaxSamples is the most samples a payload may declare, the capacity of
	// a 16-bit mono WAV data chunk.
	MaxSamples = math.MaxUint32 / 2
)

// Config selects how a Compressor encodes samples.
type Config struct {
	CompressionLevel int
	DeltaOrder       int
	// Codec names the entropy back end, codec.Default when empty.
	Codec string
}

// DefaultConfig returns level 12, order 2, zstd.
func DefaultConfig() Config {
	return Config{
		CompressionLevel: DefaultLevel,
		DeltaOrder:       DefaultOrder,
		Codec:            codec.Default,
	}
}

// Compressor turns 16-bit samples into a self-describing payload.
type Compressor struct {
	cfg   Config
	codec codec.Codec
}

// NewCompressor validates cfg and resolves its codec in reg.
// A nil reg means codec.DefaultRegistry().
func NewCompressor(cfg Config, reg *codec.Registry) (*Compressor, error) {
	if cfg.DeltaOrder < 0 || cfg.DeltaOrder > MaxOrder {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidOrder, cfg.DeltaOrder, MaxOrder)
	}

	if cfg.Codec == "" {
		cfg.Codec = codec.Default
	}

	if reg == nil {
		reg = codec.DefaultRegistry()
	}

	c, err := reg.Get(cfg.Codec, cfg.CompressionLevel)
	if err != nil {
		return nil, err
	}

	return &Compressor{cfg: cfg, codec: c}, nil
}

// Config returns the effective configuration.
func (c *Compressor) Config() Config { return c.cfg }

// Compress encodes samples. The input slice is not modified and identical
// inputs always produce identical bytes.
func (c *Compressor) Compress(samples []int16) ([]byte, error) {
	residuals := make([]int16, len(samples))
	copy(residuals, samples)
	Encode(residuals, c.cfg.DeltaOrder)

	// Each zig-zag code takes at most 3 uvarint bytes; most take one.
	raw := make([]byte, 0, len(residuals)+len(residuals)/2)
	for _, r := range residuals {
		raw = binary.AppendUvarint(raw, uint64(utils.ZigZag16(r)))
	}

	body, err := c.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("entropy coding with %s: %w", c.codec.Name(), err)
	}

	fh := frameHeader{
		codecID:  c.codec.ID(),
		order:    c.cfg.DeltaOrder,
		level:    c.cfg.CompressionLevel,
		checksum: xxhash.Sum64(raw),
		count:    uint64(len(samples)),
	}

	out := make([]byte, 0, fixedSize+binary.MaxVarintLen64+len(body))
	out = fh.appendTo(out)

	return append(out, body...), nil
}

// Decompressor inverts Compressor. Everything it needs is read from the payload.
type Decompressor struct {
	reg *codec.Registry
}

// NewDecompressor returns a decompressor resolving codecs in reg.
// A nil reg means codec.DefaultRegistry().
func NewDecompressor(reg *codec.Registry) *Decompressor {
	if reg == nil {
		reg = codec.DefaultRegistry()
	}

	return &Decompressor{reg: reg}
}

// Decompress decodes a payload produced by Compressor.Compress.
// All failures wrap audio.ErrDecode.
func (d *Decompressor) Decompress(payload []byte) ([]int16, error) {
	fh, body, err := parseFrameHeader(payload)
	if err != nil {
		return nil, err
	}

	if fh.order > MaxOrder {
		return nil, fmt.Errorf("%w: %w: %d", ErrCorrupt, ErrInvalidOrder, fh.order)
	}

	if fh.level > codec.MaxLevel {
		return nil, fmt.Errorf("%w: compression level %d", ErrCorrupt, fh.level)
	}

	if fh.count > MaxSamples {
		return nil, fmt.Errorf("%w: %d samples declared", ErrCorrupt, fh.count)
	}

	c, err := d.reg.ByID(fh.codecID, fh.level)
	if err != nil {
		return nil, err
	}

	raw, err := c.Decompress(body, int(fh.count)*binary.MaxVarintLen16)
	if err != nil {
		return nil, fmt.Errorf("entropy decoding with %s: %w", c.Name(), err)
	}

	if xxhash.Sum64(raw) != fh.checksum {
		return nil, ErrChecksumMismatch
	}

	// Every residual takes at least one byte, which bounds the allocation.
	if fh.count > uint64(len(raw)) {
		return nil, fmt.Errorf("%w: %d samples declared, %d bytes of residuals", ErrCorrupt, fh.count, len(raw))
	}

	samples := make([]int16, fh.count)
	off := 0
	for i := range samples {
		v, n := binary.Uvarint(raw[off:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: residual %d is truncated", ErrCorrupt, i)
		}
		if v > math.MaxUint16 {
			return nil, fmt.Errorf("%w: residual %d out of range", ErrCorrupt, i)
		}
		samples[i] = utils.UnZigZag16(uint16(v))
		off += n
	}

	if off != len(raw) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(raw)-off)
	}

	Decode(samples, fh.order)

	return samples, nil
}
