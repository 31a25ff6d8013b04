// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// AIFFSpec describes the COMM chunk of a hand-built AIFF file.
type AIFFSpec struct {
	Form          string // "AIFF" or "AIFC"
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
}

// AIFFMono16 is the spec of a mono 16-bit AIFF file at sampleRate.
func AIFFMono16(sampleRate uint32) AIFFSpec {
	return AIFFSpec{Form: "AIFF", Channels: 1, SampleRate: sampleRate, BitsPerSample: 16}
}

// BuildAIFF assembles an AIFF file with a COMM and an SSND chunk. frames is
// written to COMM as the declared frame count; data is the SSND payload
// written verbatim.
func BuildAIFF(spec AIFFSpec, frames uint32, data []byte) []byte {
	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, spec.Channels)
	binary.Write(comm, binary.BigEndian, frames)
	binary.Write(comm, binary.BigEndian, spec.BitsPerSample)
	comm.Write(extended(spec.SampleRate))

	ssnd := new(bytes.Buffer)
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
	ssnd.Write(data)

	body := new(bytes.Buffer)
	body.WriteString(spec.Form)
	writeChunkBE(body, "COMM", comm.Bytes())
	writeChunkBE(body, "SSND", ssnd.Bytes())

	buf := new(bytes.Buffer)
	buf.WriteString("FORM")
	binary.Write(buf, binary.BigEndian, uint32(body.Len()))
	buf.Write(body.Bytes())

	return buf.Bytes()
}

// BuildAIFFMono16 builds a mono 16-bit AIFF holding samples.
func BuildAIFFMono16(sampleRate uint32, samples []int16) []byte {
	data := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.BigEndian.PutUint16(data[2*i:], uint16(s))
	}

	return BuildAIFF(AIFFMono16(sampleRate), uint32(len(samples)), data)
}

// extended encodes a positive integer as an 80-bit IEEE 754 extended float.
func extended(v uint32) []byte {
	out := make([]byte, 10)
	if v == 0 {
		return out
	}

	e := bits.Len32(v) - 1
	binary.BigEndian.PutUint16(out, uint16(16383+e))
	binary.BigEndian.PutUint64(out[2:], uint64(v)<<(63-e))

	return out
}

func writeChunkBE(buf *bytes.Buffer, id string, data []byte) {
	buf.WriteString(id)
	binary.Write(buf, binary.BigEndian, uint32(len(data)))
	buf.Write(data)
	if len(data)%2 == 1 {
		buf.WriteByte(0)
	}
}
