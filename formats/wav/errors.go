// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/pdx-cs-sound/flacq/audio"
)

var (
	ErrNotWavFile     = fmt.Errorf("%w: not a WAV file", audio.ErrDecode)
	ErrNoPCMData      = fmt.Errorf("%w: WAV data chunk not found", audio.ErrDecode)
	ErrTruncatedData  = fmt.Errorf("%w: WAV data chunk is truncated", audio.ErrDecode)
	ErrMisalignedData = fmt.Errorf("%w: WAV data chunk ends inside a frame", audio.ErrDecode)
	ErrNotCompressed  = fmt.Errorf("%w: WAV data chunk is not empty, input is not compressed", audio.ErrDecode)
	ErrTooManySamples = fmt.Errorf("%w: too many samples for a WAV file", audio.ErrUnsupportedFormat)
)
