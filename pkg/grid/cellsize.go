// Package grid partitions the collage canvas into cells, decides which cells
// fall inside the glyph silhouette, and fills them with photos.
package grid

// cellRatioTable maps photo-library size to the cell edge length as a
// fraction of min(canvas width, canvas height). Few photos get large cells so
// repetition reads as deliberate tiling; large libraries get fine cells that
// trace the glyph outline more closely.
var cellRatioTable = [][2]float64{
	{0, 0.04},
	{2, 0.04},
	{8, 0.02},
	{12, 0.02},
	{28, 0.02},
	{52, 0.02},
	{88, 0.02},
	{200, 0.01},
}

// CellFraction returns the cell-size fraction for a library of photoCount
// photos. Counts below the first table key clamp to its fraction, counts at
// or above the last key clamp to the last fraction, and counts in between
// interpolate linearly inside their bracketing interval.
func CellFraction(photoCount int) float64 {
	n := float64(photoCount)

	if n <= cellRatioTable[0][0] {
		return cellRatioTable[0][1]
	}
	last := cellRatioTable[len(cellRatioTable)-1]
	if n >= last[0] {
		return last[1]
	}

	for i := 0; i < len(cellRatioTable)-1; i++ {
		lo, hi := cellRatioTable[i], cellRatioTable[i+1]
		if lo[0] <= n && n < hi[0] {
			t := (n - lo[0]) / (hi[0] - lo[0])
			return lo[1] + t*(hi[1]-lo[1])
		}
	}

	return last[1]
}
