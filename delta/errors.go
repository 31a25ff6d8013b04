// SPDX-License-Identifier: EPL-2.0

package delta

import (
	"errors"
	"fmt"

	"github.com/pdx-cs-sound/flacq/audio"
)

var (
	// ErrInvalidOrder indicates a delta order outside [0, MaxOrder].
	ErrInvalidOrder = errors.New("delta order out of range")

	// ErrBadMagic indicates the payload does not start with the flacq magic.
	ErrBadMagic = fmt.Errorf("%w: not a flacq payload", audio.ErrDecode)

	// ErrUnsupportedVersion indicates a payload written by a newer format revision.
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported payload version", audio.ErrDecode)

	// ErrTruncated indicates the payload ends inside its framing.
	ErrTruncated = fmt.Errorf("%w: truncated payload", audio.ErrDecode)

	// ErrChecksumMismatch indicates the residual stream does not match its checksum.
	ErrChecksumMismatch = fmt.Errorf("%w: payload checksum mismatch", audio.ErrDecode)

	// ErrCorrupt indicates the residual stream is inconsistent with the framing.
	ErrCorrupt = fmt.Errorf("%w: corrupt residual stream", audio.ErrDecode)
)
