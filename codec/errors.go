// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"fmt"

	"github.com/pdx-cs-sound/flacq/audio"
)

var (
	// ErrUnknownCodec indicates a back end name or wire id with no registration.
	ErrUnknownCodec = fmt.Errorf("%w: unknown entropy codec", audio.ErrDecode)

	// ErrInvalidLevel indicates a compression level outside [MinLevel, MaxLevel].
	ErrInvalidLevel = errors.New("compression level out of range")

	// ErrSizeExceeded indicates a stream that decodes to more bytes than allowed.
	ErrSizeExceeded = fmt.Errorf("%w: entropy stream exceeds its size limit", audio.ErrDecode)

	// ErrCorruptStream indicates the back end rejected its input.
	ErrCorruptStream = fmt.Errorf("%w: corrupt entropy stream", audio.ErrDecode)
)
