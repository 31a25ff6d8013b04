// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"math/rand"
)

// NewSignal returns n samples produced by waveform.
func NewSignal(n int, waveform func(i int) int16) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = waveform(i)
	}

	return samples
}

// Silence returns n zero samples.
func Silence(n int) []int16 {
	return make([]int16, n)
}

// Sine returns n samples of a sine wave at frequency Hz and the given peak amplitude.
func Sine(n, sampleRate int, frequency float64, amplitude int16) []int16 {
	return NewSignal(n, func(i int) int16 {
		t := float64(i) / float64(sampleRate)
		return int16(float64(amplitude) * math.Sin(2*math.Pi*frequency*t))
	})
}

// Noise returns n uniformly distributed samples from a seeded generator.
func Noise(n int, seed int64) []int16 {
	rng := rand.New(rand.NewSource(seed))

	return NewSignal(n, func(int) int16 {
		return int16(rng.Intn(math.MaxUint16+1) + math.MinInt16)
	})
}

// Ramp returns n samples counting up by step, wrapping at the int16 limits.
func Ramp(n int, step int16) []int16 {
	return NewSignal(n, func(i int) int16 {
		return int16(i) * step
	})
}

// Extremes alternates between the smallest and largest int16, the worst case
// for delta encoding.
func Extremes(n int) []int16 {
	return NewSignal(n, func(i int) int16 {
		if i%2 == 0 {
			return math.MinInt16
		}
		return math.MaxInt16
	})
}
