// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrUnsupportedFormat, "unsupported format"},
		{ErrIO, "i/o error"},
		{ErrDecode, "decode error"},
	}

	for _, tt := range tests {
		if tt.err == nil {
			t.Fatalf("error for %q is nil", tt.want)
		}
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrorKinds_AreDistinct(t *testing.T) {
	t.Parallel()

	kinds := []error{ErrUnsupportedFormat, ErrIO, ErrDecode}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestErrorKinds_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("reading header: %w", ErrDecode)
	if !errors.Is(wrapped, ErrDecode) {
		t.Error("errors.Is() failed for wrapped ErrDecode")
	}

	joined := errors.Join(ErrIO, errors.New("additional context"))
	if !errors.Is(joined, ErrIO) {
		t.Error("errors.Is() failed for joined ErrIO")
	}
}
