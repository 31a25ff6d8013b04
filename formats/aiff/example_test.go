// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"fmt"

	"github.com/pdx-cs-sound/flacq/formats/aiff"
	"github.com/pdx-cs-sound/flacq/internal/audiotest"
)

// Example decodes a small hand-built AIFF file.
func Example() {
	data := audiotest.BuildAIFFMono16(22050, []int16{-300, 0, 300})

	if !aiff.IsAiff(data) {
		fmt.Println("not AIFF")
		return
	}

	hdr, samples, err := aiff.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Header: %s\n", hdr)
	fmt.Printf("Samples: %v\n", samples)
	// Output:
	// Header: 22050 Hz, 1 ch, 16-bit int
	// Samples: [-300 0 300]
}
