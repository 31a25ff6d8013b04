// SPDX-License-Identifier: EPL-2.0

// Package flacq compresses mono 16-bit PCM WAV files with delta encoding.
//
// A sample stream from a real recording changes slowly from one frame to the
// next. Replacing each sample with its difference from the previous one, and
// repeating that a few times, leaves residuals that are mostly close to zero.
// Those residuals are then packed with a general purpose entropy coder.
//
// # Quick Start
//
//	// Compress
//	stats, err := flacq.Compress(os.Stdin, os.Stdout, flacq.DefaultOptions())
//
//	// Decompress
//	stats, err := flacq.Decompress(os.Stdin, os.Stdout, flacq.DefaultOptions())
//
// Decompress needs no configuration: the delta order and entropy back end are
// recorded in the payload.
//
// # Supported Input
//
// Only mono, 16-bit, integer PCM is accepted, in a WAV or AIFF container.
// Anything else fails with an error wrapping audio.ErrUnsupportedFormat.
// Decompress always writes WAV, so AIFF input comes back as the equivalent
// WAV file.
//
// # Compressed Layout
//
// The compressed form is the header-only WAV file for the input's header
// (so the sample rate round-trips exactly) followed by the payload:
//
//	magic "FLQD", version, codec id, delta order, level,
//	xxhash64 checksum, sample count, entropy coded residuals
//
// It is not a playable WAV file.
//
// # Delta Order
//
// Options.DeltaOrder selects how many differencing passes run, from 0 to 7.
// Order 2 is the default and suits most recordings; higher orders help with
// very smooth signals and hurt on sharp transients.
//
// # Subpackages
//
//   - audio: Header, validation and error kinds
//   - formats/wav: WAV container reading and writing
//   - formats/aiff: AIFF container reading
//   - delta: the delta compressor and payload framing
//   - codec: entropy back ends (zstd, s2, none)
//   - utils: zig-zag mapping of residuals
//
// See the individual subpackages for more detailed documentation.
package flacq
