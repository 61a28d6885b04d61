package forMiniTriGo

const (
	Random15Max = 32767
	Random60Max = (1 << 60) - 1
)

func Random15(seed *uint64) uint64 {
	*seed = *seed*1103515245 + 12345
	return (*seed / 65536) % (Random15Max + 1)
}

func Random60(seed *uint64) uint64 {
	i := Random15(seed)
	i = Random15(seed) + Random15Max*i
	i = Random15(seed) + Random15Max*i
	i = Random15(seed) + Random15Max*i
	i = i % (Random60Max + 1)
	return i
}

// RandomEdges draws m edges between n vertices (0-based) uniformly at
// random. The result may contain self edges and duplicates.
func RandomEdges(n, m int, seed uint64) []Edge {
	edges := make([]Edge, m)
	for i := range edges {
		edges[i] = Edge{
			U: int(Random60(&seed) % uint64(n)),
			V: int(Random60(&seed) % uint64(n)),
		}
	}
	return edges
}

// PlantedCliques returns the edges of k disjoint cliques of the given size,
// numbered consecutively from 0.
func PlantedCliques(k, size int) []Edge {
	var edges []Edge
	for c := 0; c < k; c++ {
		first := c * size
		for u := first; u < first+size; u++ {
			for v := u + 1; v < first+size; v++ {
				edges = append(edges, Edge{u, v})
			}
		}
	}
	return edges
}
