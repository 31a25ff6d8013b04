// SPDX-License-Identifier: EPL-2.0

// Package aiff reads mono 16-bit PCM samples from AIFF files.
//
// This package uses github.com/go-audio/aiff to parse the FORM, COMM and
// SSND chunks. It is an input-only container: flacq accepts AIFF on the
// compress path and always writes WAV.
//
// # Decoding AIFF Files
//
//	hdr, samples, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The returned header has Format set to audio.Integer; AIFF has no float
// encoding. Channel count and bit depth are validated with
// audio.Header.Validate, so stereo or 24-bit files fail with
// audio.ErrUnsupportedFormat.
//
// # Detecting AIFF
//
// IsAiff checks the form header so callers can pick a decoder without
// relying on file extensions:
//
//	if aiff.IsAiff(data) {
//	    hdr, samples, err = aiff.Decoder{}.Decode(bytes.NewReader(data))
//	}
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//
// # Limitations
//
//   - AIFF-C files are rejected with ErrCompressedAiff, even uncompressed ones
//   - Files with no sample frames are rejected by go-audio as not AIFF
package aiff
