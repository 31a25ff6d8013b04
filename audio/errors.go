// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

// Error kinds of the pipeline. Package specific errors wrap one of these,
// so callers classify failures with errors.Is.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrIO                = errors.New("i/o error")
	ErrDecode            = errors.New("decode error")
)
