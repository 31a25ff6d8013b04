// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes the WAV containers used by flacq.
//
// It uses github.com/go-audio/wav for all RIFF parsing and encoding, so
// headers are framed exactly as the library frames them.
//
// # Supported Formats
//
// Only mono 16-bit integer PCM is accepted. Stereo, 8-bit, 24-bit and
// floating point files are rejected with an error wrapping
// audio.ErrUnsupportedFormat.
//
// # Decoding WAV Files
//
// Decoder reads a whole file and returns its header and samples:
//
//	hdr, samples, err := wav.Decoder{}.Decode(os.Stdin)
//	if err != nil {
//	    // Handle error
//	}
//
// # Writing WAV Files
//
// WriteWAV16 writes a complete, playable file for a header:
//
//	err := wav.WriteWAV16(os.Stdout, hdr, samples)
//
// go-audio's encoder needs to seek back and patch chunk sizes, so files are
// assembled in memory first. Nothing is written to w unless encoding
// succeeds.
//
// # Compressed Layout
//
// The compressed form produced by flacq is a header-only WAV file, with an
// empty data chunk, immediately followed by the compressed payload:
//
//	RIFF header (12 bytes)
//	fmt chunk (24 bytes)
//	data chunk header, size 0 (8 bytes)
//	payload (rest of file)
//
// WriteCompressed and ReadCompressed produce and consume this layout. It is
// not a standard WAV file; players see a file without samples.
//
// # Error Handling
//
// The package defines several errors, each wrapping an audio error kind:
//   - ErrNotWavFile: the input is not RIFF/WAVE (audio.ErrDecode)
//   - ErrNoPCMData: no data chunk was found (audio.ErrDecode)
//   - ErrTruncatedData: the data chunk is shorter than declared (audio.ErrDecode)
//   - ErrNotCompressed: ReadCompressed got a WAV with samples (audio.ErrDecode)
//   - ErrTooManySamples: the samples do not fit a WAV file (audio.ErrUnsupportedFormat)
package wav
