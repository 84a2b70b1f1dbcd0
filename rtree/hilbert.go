package rtree

// hilbertLevel is the grid resolution (bits per axis) used to quantize a
// region's midpoint before computing its Hilbert distance: 2^16 cells per
// axis, enough resolution to order real-world coordinate sets without the
// curve's locality breaking down from too few grid cells.
const hilbertLevel = 16

// hilbertDistance returns the index along a 2^hilbertLevel x 2^hilbertLevel
// Hilbert curve of the quantized point (x, y), x and y each already scaled
// into [0, 2^hilbertLevel).
//
// Classic rotate-and-reflect construction (Wikipedia's "Hilbert curve",
// xy2d): at each bit level, the current quadrant is identified, the curve
// index accumulates that quadrant's contribution, and the coordinates are
// rotated/reflected to descend into the next level.
func hilbertDistance(x, y uint32) uint64 {
	var d uint64
	for s := uint32(1) << (hilbertLevel - 1); s > 0; s >>= 1 {
		var rx, ry uint32
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += uint64(s) * uint64(s) * uint64((3*rx)^ry)
		x, y = hilbertRotate(s, x, y, rx, ry)
	}
	return d
}

// hilbertRotate rotates/reflects (x, y) within an s-sized quadrant
// according to (rx, ry), preparing the coordinates for the next
// finer-grained iteration of hilbertDistance.
func hilbertRotate(s, x, y, rx, ry uint32) (uint32, uint32) {
	if ry != 0 {
		return x, y
	}
	if rx == 1 {
		x = s - 1 - x
		y = s - 1 - y
	}
	return y, x
}

// quantize maps v from [lo, hi] onto [0, 2^hilbertLevel), clamping v to
// the range first. A degenerate range (hi<=lo) maps everything to 0.
func quantize(v, lo, hi float64) uint32 {
	if hi <= lo {
		return 0
	}
	const scale = float64(uint32(1) << hilbertLevel)
	frac := (v - lo) / (hi - lo)
	if frac < 0 {
		frac = 0
	}
	if frac >= 1 {
		frac = 1 - 1.0/scale
	}
	return uint32(frac * scale)
}
