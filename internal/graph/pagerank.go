package graph

import "math"

// PageRankOptions sets the damped random-walk parameters. The iteration cap
// and tolerance are explicit here rather than hidden in a library default:
// a pathologically dense graph runs to convergence or the cap, nothing else
// bounds it.
type PageRankOptions struct {
	Damping       float64
	MaxIterations int
	Tolerance     float64
}

// DefaultPageRankOptions returns damping 0.85, a 100-iteration cap, and an
// L1 convergence tolerance of 1e-6.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		Damping:       0.85,
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// PageRank computes the stationary distribution of a damped random walk
// over the graph. Each node distributes its score uniformly across its
// distinct successors; dangling mass and the restart probability are spread
// uniformly over all nodes, so the scores sum to 1 (within tolerance) on a
// non-empty graph. An empty graph yields an empty map.
func (g *Graph) PageRank(opts PageRankOptions) map[string]float64 {
	n := len(g.order)
	if n == 0 {
		return map[string]float64{}
	}

	idx := make(map[string]int, n)
	for i, name := range g.order {
		idx[name] = i
	}

	succs := make([][]int, n)
	for i, name := range g.order {
		for _, to := range g.succs[name] {
			succs[i] = append(succs[i], idx[to])
		}
	}

	rank := make([]float64, n)
	initial := 1.0 / float64(n)
	for i := range rank {
		rank[i] = initial
	}

	teleport := (1.0 - opts.Damping) / float64(n)
	newRank := make([]float64, n)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		var danglingSum float64
		for i := range rank {
			if len(succs[i]) == 0 {
				danglingSum += rank[i]
			}
		}
		base := teleport + opts.Damping*danglingSum/float64(n)

		for i := range newRank {
			newRank[i] = base
		}
		for i := range rank {
			if len(succs[i]) == 0 {
				continue
			}
			contrib := opts.Damping * rank[i] / float64(len(succs[i]))
			for _, j := range succs[i] {
				newRank[j] += contrib
			}
		}

		var diff float64
		for i := range rank {
			diff += math.Abs(newRank[i] - rank[i])
		}
		rank, newRank = newRank, rank

		if diff < opts.Tolerance {
			break
		}
	}

	result := make(map[string]float64, n)
	for i, name := range g.order {
		result[name] = rank[i]
	}
	return result
}
