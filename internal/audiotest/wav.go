// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// WAV format tags.
const (
	FormatPCM        = 1
	FormatFloat      = 3
	FormatExtensible = 0xFFFE
)

// guidTail is the KSDATAFORMAT_SUBTYPE GUID after its two leading tag bytes.
var guidTail = []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// WAVSpec describes the fmt chunk of a hand-built WAV file.
type WAVSpec struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
}

// Mono16 is the spec of a mono 16-bit PCM file at sampleRate.
func Mono16(sampleRate uint32) WAVSpec {
	return WAVSpec{AudioFormat: FormatPCM, Channels: 1, SampleRate: sampleRate, BitsPerSample: 16}
}

// Chunk is an extra RIFF chunk placed before the fmt chunk.
type Chunk struct {
	ID   string
	Data []byte
}

// BuildWAV assembles a canonical WAV file byte by byte, without going through
// the code under test. data is written verbatim as the data chunk.
func BuildWAV(spec WAVSpec, data []byte, extra ...Chunk) []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")

	for _, c := range extra {
		writeChunk(body, c.ID, c.Data)
	}

	writeChunk(body, "fmt ", fmtBody(spec).Bytes())
	writeChunk(body, "data", data)

	return riff(body)
}

// BuildExtensibleWAV assembles a WAVE_FORMAT_EXTENSIBLE file whose SubFormat
// GUID carries subFormat (FormatPCM or FormatFloat). spec.AudioFormat is ignored.
func BuildExtensibleWAV(spec WAVSpec, subFormat uint16, data []byte) []byte {
	spec.AudioFormat = FormatExtensible

	fmtChunk := fmtBody(spec)
	binary.Write(fmtChunk, binary.LittleEndian, uint16(22))         // cbSize
	binary.Write(fmtChunk, binary.LittleEndian, spec.BitsPerSample) // valid bits
	binary.Write(fmtChunk, binary.LittleEndian, uint32(0x4))        // front center
	binary.Write(fmtChunk, binary.LittleEndian, subFormat)
	fmtChunk.Write(guidTail)

	body := new(bytes.Buffer)
	body.WriteString("WAVE")
	writeChunk(body, "fmt ", fmtChunk.Bytes())
	writeChunk(body, "data", data)

	return riff(body)
}

// BuildMono16 builds a mono 16-bit PCM WAV holding samples.
func BuildMono16(sampleRate uint32, samples []int16) []byte {
	return BuildWAV(Mono16(sampleRate), PCM16Bytes(samples))
}

// PCM16Bytes serializes samples as little endian 16-bit PCM.
func PCM16Bytes(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return out
}

// AppendChunk adds a chunk after the last one of a built WAV file and fixes
// the RIFF size.
func AppendChunk(wav []byte, id string, data []byte) []byte {
	body := bytes.NewBuffer(append([]byte{}, wav[8:]...))
	writeChunk(body, id, data)

	return riff(body)
}

func fmtBody(spec WAVSpec) *bytes.Buffer {
	bytesPerSample := uint32(spec.BitsPerSample / 8)
	byteRate := spec.SampleRate * uint32(spec.Channels) * bytesPerSample
	blockAlign := spec.Channels * uint16(bytesPerSample)

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, spec.AudioFormat)
	binary.Write(buf, binary.LittleEndian, spec.Channels)
	binary.Write(buf, binary.LittleEndian, spec.SampleRate)
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, spec.BitsPerSample)

	return buf
}

func riff(body *bytes.Buffer) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(body.Len()))
	buf.Write(body.Bytes())

	return buf.Bytes()
}

func writeChunk(buf *bytes.Buffer, id string, data []byte) {
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)
	if len(data)%2 == 1 {
		buf.WriteByte(0)
	}
}
