// SPDX-License-Identifier: EPL-2.0

// Package codec provides the entropy coding back ends of the delta compressor.
//
// Delta encoding turns a sample stream into small residuals; a general purpose
// compressor then removes the remaining redundancy. Three back ends are built in:
//   - zstd: github.com/klauspost/compress/zstd, the default
//   - s2: github.com/klauspost/compress/s2, faster with a lower ratio
//   - none: stores the residual stream as is
//
// Each back end has a name, used on the command line, and a one-byte wire id
// written into the payload so a decoder can find the back end on its own:
//
//	reg := codec.DefaultRegistry()
//	c, err := reg.Get("zstd", 12)
//	packed, err := c.Compress(data)
//
//	// later, from the id stored in the payload
//	c, err = reg.ByID(codec.IDZstd, 12)
//	data, err = c.Decompress(packed, maxSize)
//
// Decompress takes an upper bound on the decoded size so a crafted payload
// cannot make a back end allocate without limit.
//
// Compression levels range from MinLevel to MaxLevel. For zstd the level is
// interpreted on the reference zstd scale.
package codec
