// SPDX-License-Identifier: EPL-2.0

package delta

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/pdx-cs-sound/flacq/audio"
	"github.com/pdx-cs-sound/flacq/codec"
	"github.com/pdx-cs-sound/flacq/internal/audiotest"
)

func mustCompressor(t *testing.T, cfg Config) *Compressor {
	t.Helper()

	c, err := NewCompressor(cfg, nil)
	if err != nil {
		t.Fatalf("NewCompressor(%+v) error = %v", cfg, err)
	}

	return c
}

func compressDefault(t *testing.T, samples []int16) []byte {
	t.Helper()

	payload, err := mustCompressor(t, DefaultConfig()).Compress(samples)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	return payload
}

func TestCompressor_RoundTrip(t *testing.T) {
	t.Parallel()

	signals := map[string][]int16{
		"empty":    {},
		"single":   {1234},
		"silence":  audiotest.Silence(4096),
		"sine":     audiotest.Sine(8000, 8000, 440, 16000),
		"noise":    audiotest.Noise(4096, 42),
		"ramp":     audiotest.Ramp(3000, 311),
		"extremes": audiotest.Extremes(999),
	}

	dec := NewDecompressor(nil)

	for _, name := range codec.DefaultRegistry().Names() {
		for order := 0; order <= MaxOrder; order++ {
			cfg := Config{CompressionLevel: DefaultLevel, DeltaOrder: order, Codec: name}
			comp := mustCompressor(t, cfg)

			for signalName, signal := range signals {
				payload, err := comp.Compress(signal)
				if err != nil {
					t.Fatalf("%s/order %d/%s: Compress() error = %v", name, order, signalName, err)
				}

				got, err := dec.Decompress(payload)
				if err != nil {
					t.Fatalf("%s/order %d/%s: Decompress() error = %v", name, order, signalName, err)
				}

				if len(got) != len(signal) {
					t.Fatalf("%s/order %d/%s: got %d samples, want %d", name, order, signalName, len(got), len(signal))
				}
				if len(signal) > 0 && !reflect.DeepEqual(got, signal) {
					t.Errorf("%s/order %d/%s: samples differ after round trip", name, order, signalName)
				}
			}
		}
	}
}

func TestCompressor_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	signal := audiotest.Ramp(100, 5)
	orig := append([]int16{}, signal...)

	compressDefault(t, signal)

	if !reflect.DeepEqual(signal, orig) {
		t.Error("Compress() modified its input")
	}
}

func TestCompressor_Deterministic(t *testing.T) {
	t.Parallel()

	signal := audiotest.Sine(10000, 44100, 1000, 9000)

	first := compressDefault(t, signal)
	second := compressDefault(t, signal)

	if !bytes.Equal(first, second) {
		t.Error("Compress() produced different bytes for the same input")
	}
}

func TestCompressor_SilenceCompressesWell(t *testing.T) {
	t.Parallel()

	const n = 44100
	payload := compressDefault(t, audiotest.Silence(n))

	ratio := float64(len(payload)) / float64(2*n)
	if ratio >= 0.05 {
		t.Errorf("silence ratio = %.4f (%d bytes), want < 0.05", ratio, len(payload))
	}
}

func TestCompressor_SmoothBeatsNoise(t *testing.T) {
	t.Parallel()

	smooth := compressDefault(t, audiotest.Sine(8000, 44100, 220, 15000))
	noise := compressDefault(t, audiotest.Noise(8000, 3))

	if len(smooth) >= len(noise) {
		t.Errorf("sine payload = %d bytes, noise payload = %d bytes; want sine smaller", len(smooth), len(noise))
	}
}

func TestCompressor_HeaderRecordsConfig(t *testing.T) {
	t.Parallel()

	cfg := Config{CompressionLevel: 5, DeltaOrder: 4, Codec: "s2"}
	payload, err := mustCompressor(t, cfg).Compress(audiotest.Ramp(10, 1))
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	if string(payload[:4]) != "FLQD" {
		t.Errorf("magic = %q, want \"FLQD\"", payload[:4])
	}
	if payload[4] != formatVersion {
		t.Errorf("version = %d, want %d", payload[4], formatVersion)
	}
	if payload[5] != codec.IDS2 {
		t.Errorf("codec id = 0x%02x, want 0x%02x", payload[5], codec.IDS2)
	}
	if payload[6] != 4 {
		t.Errorf("order = %d, want 4", payload[6])
	}
	if payload[7] != 5 {
		t.Errorf("level = %d, want 5", payload[7])
	}
	if payload[16] != 10 {
		t.Errorf("sample count = %d, want 10", payload[16])
	}
}

func TestNewCompressor_Defaults(t *testing.T) {
	t.Parallel()

	c := mustCompressor(t, Config{CompressionLevel: DefaultLevel, DeltaOrder: DefaultOrder})

	if got := c.Config().Codec; got != codec.Default {
		t.Errorf("Config().Codec = %q, want %q", got, codec.Default)
	}

	want := Config{CompressionLevel: 12, DeltaOrder: 2, Codec: "zstd"}
	if DefaultConfig() != want {
		t.Errorf("DefaultConfig() = %+v, want %+v", DefaultConfig(), want)
	}
}

func TestNewCompressor_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"negative order", Config{CompressionLevel: 12, DeltaOrder: -1}, ErrInvalidOrder},
		{"order too high", Config{CompressionLevel: 12, DeltaOrder: MaxOrder + 1}, ErrInvalidOrder},
		{"unknown codec", Config{CompressionLevel: 12, DeltaOrder: 2, Codec: "brotli"}, codec.ErrUnknownCodec},
		{"level too high", Config{CompressionLevel: 13, DeltaOrder: 2}, codec.ErrInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewCompressor(tt.cfg, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewCompressor() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecompressor_CorruptPayloads(t *testing.T) {
	t.Parallel()

	valid := compressDefault(t, audiotest.Sine(2000, 8000, 300, 10000))

	mutate := func(f func(p []byte) []byte) []byte {
		return f(append([]byte{}, valid...))
	}

	tests := []struct {
		name    string
		payload []byte
		wantErr error
	}{
		{"empty", []byte{}, ErrTruncated},
		{"short magic", []byte("FL"), ErrTruncated},
		{"wrong magic", mutate(func(p []byte) []byte { p[0] = 'X'; return p }), ErrBadMagic},
		{"raw wav", audiotest.BuildMono16(8000, []int16{1, 2, 3}), ErrBadMagic},
		{"header only", valid[:10], ErrTruncated},
		{"missing count", valid[:fixedSize], ErrTruncated},
		{"future version", mutate(func(p []byte) []byte { p[4] = 9; return p }), ErrUnsupportedVersion},
		{"unknown codec", mutate(func(p []byte) []byte { p[5] = 0x7f; return p }), codec.ErrUnknownCodec},
		{"bad order", mutate(func(p []byte) []byte { p[6] = 200; return p }), ErrCorrupt},
		{"bad level", mutate(func(p []byte) []byte { p[7] = 99; return p }), ErrCorrupt},
		{"checksum flipped", mutate(func(p []byte) []byte { p[8] ^= 0xff; return p }), ErrChecksumMismatch},
		{"truncated body", valid[:len(valid)-5], codec.ErrCorruptStream},
	}

	dec := NewDecompressor(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := dec.Decompress(tt.payload)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decompress() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, audio.ErrDecode) {
				t.Errorf("Decompress() error = %v, want it to wrap audio.ErrDecode", err)
			}
		})
	}
}

func TestDecompressor_CountMismatch(t *testing.T) {
	t.Parallel()

	// The none codec stores residuals verbatim, so the framing can be
	// edited without breaking the entropy layer or the checksum.
	cfg := Config{CompressionLevel: 0, DeltaOrder: 1, Codec: "none"}
	payload, err := mustCompressor(t, cfg).Compress([]int16{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	dec := NewDecompressor(nil)

	fewer := append([]byte{}, payload...)
	fewer[fixedSize] = 3
	if _, err := dec.Decompress(fewer); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Decompress(count too small) error = %v, want ErrCorrupt", err)
	}

	more := append([]byte{}, payload...)
	more[fixedSize] = 100
	if _, err := dec.Decompress(more); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Decompress(count too large) error = %v, want ErrCorrupt", err)
	}
}

func TestDecompressor_BoundsDecodedSize(t *testing.T) {
	t.Parallel()

	dec := NewDecompressor(nil)

	for _, name := range codec.DefaultRegistry().Names() {
		cfg := Config{CompressionLevel: DefaultLevel, DeltaOrder: 0, Codec: name}
		payload, err := mustCompressor(t, cfg).Compress(audiotest.Silence(5000))
		if err != nil {
			t.Fatalf("%s: Compress() error = %v", name, err)
		}

		// Declaring one sample allows at most three residual bytes.
		fh, body, err := parseFrameHeader(payload)
		if err != nil {
			t.Fatalf("%s: parseFrameHeader() error = %v", name, err)
		}
		fh.count = 1
		forged := append(fh.appendTo(nil), body...)

		_, err = dec.Decompress(forged)
		if !errors.Is(err, codec.ErrSizeExceeded) {
			t.Errorf("%s: Decompress() error = %v, want ErrSizeExceeded", name, err)
		}
		if !errors.Is(err, audio.ErrDecode) {
			t.Errorf("%s: Decompress() error = %v, want audio.ErrDecode", name, err)
		}
	}
}

func TestDecompressor_RejectsHugeCount(t *testing.T) {
	t.Parallel()

	payload := compressDefault(t, []int16{1, 2, 3})

	fh, body, err := parseFrameHeader(payload)
	if err != nil {
		t.Fatalf("parseFrameHeader() error = %v", err)
	}
	fh.count = MaxSamples + 1

	_, err = NewDecompressor(nil).Decompress(append(fh.appendTo(nil), body...))
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Decompress() error = %v, want ErrCorrupt", err)
	}
}

func TestDecompressor_CustomRegistry(t *testing.T) {
	t.Parallel()

	reg := codec.NewRegistry()
	reg.Register("stored", codec.IDNone, codec.NewNone)

	comp, err := NewCompressor(Config{CompressionLevel: 0, DeltaOrder: 2, Codec: "stored"}, reg)
	if err != nil {
		t.Fatalf("NewCompressor() error = %v", err)
	}

	signal := audiotest.Sine(500, 8000, 100, 3000)
	payload, err := comp.Compress(signal)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	got, err := NewDecompressor(reg).Decompress(payload)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if !reflect.DeepEqual(got, signal) {
		t.Error("samples differ after round trip through a custom registry")
	}

	// zstd is not in the custom registry.
	zpayload := compressDefault(t, signal)
	if _, err := NewDecompressor(reg).Decompress(zpayload); !errors.Is(err, codec.ErrUnknownCodec) {
		t.Errorf("Decompress(zstd payload) error = %v, want ErrUnknownCodec", err)
	}
}

func BenchmarkCompressor_Compress(b *testing.B) {
	comp, err := NewCompressor(DefaultConfig(), nil)
	if err != nil {
		b.Fatal(err)
	}
	signal := audiotest.Sine(44100, 44100, 440, 16000)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = comp.Compress(signal)
	}
}

func BenchmarkDecompressor_Decompress(b *testing.B) {
	comp, err := NewCompressor(DefaultConfig(), nil)
	if err != nil {
		b.Fatal(err)
	}
	payload, _ := comp.Compress(audiotest.Sine(44100, 44100, 440, 16000))
	dec := NewDecompressor(nil)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = dec.Decompress(payload)
	}
}
