package generator

import (
	"math"
)

// cellularNoise assigns every point to the jittered feature point nearest it
// under Manhattan distance, giving blob-shaped regions about 1/frequency wide
type cellularNoise struct {
	seed      uint64
	frequency float64
}

// region returns the id of the feature cell owning (x, y)
func (n cellularNoise) region(x, y int) int64 {
	fx, fy := float64(x)*n.frequency, float64(y)*n.frequency
	cx, cy := int64(math.Floor(fx)), int64(math.Floor(fy))

	var best int64
	bestDist := math.MaxFloat64
	for oy := int64(-1); oy <= 1; oy++ {
		for ox := int64(-1); ox <= 1; ox++ {
			gx, gy := cx+ox, cy+oy
			h := n.hash(gx, gy)
			px := float64(gx) + float64(h&0xffff)/65535.0
			py := float64(gy) + float64((h>>16)&0xffff)/65535.0
			d := math.Abs(px-fx) + math.Abs(py-fy)
			if d < bestDist {
				bestDist = d
				best = gy<<32 | (gx & 0xffffffff)
			}
		}
	}
	return best
}

// hash mixes the seed and lattice coordinate with splitmix64
func (n cellularNoise) hash(x, y int64) uint64 {
	z := n.seed ^ uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
