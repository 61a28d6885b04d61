package forMiniTriGo

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SampleDegree estimates the mean and median vertex degree from nSamples
// vertices drawn with Random60.
func (G *Graph) SampleDegree(nSamples int, seed uint64) (sampleMean, sampleMedian float64) {
	if nSamples < 1 {
		nSamples = 1
	}
	G.PropertyRowDegree()
	n := G.RowDegree.Size()
	if n == 0 {
		return 0, 0
	}
	samples := make([]float64, nSamples)
	for k := 0; k < nSamples; k++ {
		i := int(Random60(&seed) % uint64(n))
		samples[k] = float64(G.RowDegree.Get(i))
	}
	sampleMean = stat.Mean(samples, nil)
	sampleMedian = upperMedian(samples)
	return
}

// upperMedian sorts samples and returns the element at position len/2.
func upperMedian(samples []float64) float64 {
	sort.Float64s(samples)
	return samples[len(samples)/2]
}
