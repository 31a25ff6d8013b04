// SPDX-License-Identifier: EPL-2.0

package utils

// ZigZag16 maps a signed residual to an unsigned one so that values of small
// magnitude stay small: 0, -1, 1, -2, 2 ... become 0, 1, 2, 3, 4 ...
func ZigZag16(v int16) uint16 {
	return uint16(v<<1) ^ uint16(v>>15)
}

// UnZigZag16 inverts ZigZag16.
func UnZigZag16(u uint16) int16 {
	return int16(u>>1) ^ -int16(u&1)
}
