// SPDX-License-Identifier: EPL-2.0

// Package audio holds the data model shared by the flacq pipeline stages.
//
// # Header
//
// A Header describes the stream read from a container:
//
//	type Header struct {
//	    SampleRate    int
//	    Channels      int
//	    BitsPerSample int
//	    Format        SampleFormat
//	}
//
// The header is read once and passed through unchanged, so a file that is
// compressed and then decompressed keeps its sample rate and layout.
//
// # Validation
//
// The pipeline only handles mono 16-bit integer PCM. Validate enforces that:
//
//	if err := hdr.Validate(); err != nil {
//	    // errors.Is(err, audio.ErrUnsupportedFormat) == true
//	}
//
// There is no degraded mode; anything else is rejected.
//
// # Error Kinds
//
// Three sentinel errors classify every failure in the module:
//   - ErrUnsupportedFormat: wrong channel count, bit depth or sample encoding
//   - ErrIO: reading or writing a stream failed
//   - ErrDecode: a container or compressed payload is malformed
//
// Errors from other packages wrap one of them:
//
//	if errors.Is(err, audio.ErrDecode) {
//	    fmt.Println("corrupt input")
//	}
package audio
