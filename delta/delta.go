// SPDX-License-Identifier: EPL-2.0

package delta

// Encode applies order passes of successive differencing to samples in place.
// Pass k leaves samples[k] as a seed and replaces every later element with its
// difference from the previous one. Arithmetic wraps at 16 bits, which keeps
// the transform exactly invertible for any input.
func Encode(samples []int16, order int) {
	for k := range order {
		for i := len(samples) - 1; i > k; i-- {
			samples[i] -= samples[i-1]
		}
	}
}

// Decode inverts Encode in place.
func Decode(residuals []int16, order int) {
	for k := order - 1; k >= 0; k-- {
		for i := k + 1; i < len(residuals); i++ {
			residuals[i] += residuals[i-1]
		}
	}
}
