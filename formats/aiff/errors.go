// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/pdx-cs-sound/flacq/audio"
)

var (
	// ErrNotAiffFile indicates the input is not a valid AIFF file.
	ErrNotAiffFile = fmt.Errorf("%w: not an AIFF file", audio.ErrDecode)

	// ErrUnsupportedAiffLayout indicates go-audio could not describe the stream.
	ErrUnsupportedAiffLayout = fmt.Errorf("%w: unsupported AIFF layout", audio.ErrDecode)

	// ErrTruncatedData indicates the SSND chunk holds fewer frames than COMM declares.
	ErrTruncatedData = fmt.Errorf("%w: AIFF sound data is truncated", audio.ErrDecode)

	// ErrCompressedAiff indicates an AIFF-C file, whose sample encoding is not checked.
	ErrCompressedAiff = fmt.Errorf("%w: AIFF-C files are not handled", audio.ErrUnsupportedFormat)
)
