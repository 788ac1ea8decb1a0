package fit

import "math"

// GridSearch exhaustively evaluates the cross product of candidate values,
// one slice per genome position. It is only practical for small species
// counts and coarse grids; heavier search belongs to an external
// optimizer driving [Objective] directly.
type GridSearch struct {
	ranges [][]float64
}

func NewGridSearch(ranges [][]float64) *GridSearch {
	return &GridSearch{ranges: ranges}
}

// Search returns the best-scoring genome and its score. Candidates the
// objective rejects are skipped.
func (g *GridSearch) Search(obj *Objective) ([]float64, float64) {
	best := math.Inf(1)
	var bestGenome []float64

	genome := make([]float64, len(g.ranges))
	g.searchRecursive(0, genome, obj, &best, &bestGenome)

	return bestGenome, best
}

func (g *GridSearch) searchRecursive(depth int, genome []float64, obj *Objective, best *float64, bestGenome *[]float64) {
	if depth == len(g.ranges) {
		score, err := obj.Evaluate(genome)
		if err != nil {
			return
		}
		if score < *best {
			*best = score
			*bestGenome = make([]float64, len(genome))
			copy(*bestGenome, genome)
		}
		return
	}

	for _, val := range g.ranges[depth] {
		genome[depth] = val
		g.searchRecursive(depth+1, genome, obj, best, bestGenome)
	}
}

// UniformRanges builds an identical candidate slice for every genome
// position, spanning [low, high] in the given number of divisions.
func UniformRanges(positions, divisions int, low, high float64) [][]float64 {
	values := make([]float64, divisions)
	if divisions == 1 {
		values[0] = low
	} else {
		step := (high - low) / float64(divisions-1)
		for i := range values {
			values[i] = low + float64(i)*step
		}
	}
	ranges := make([][]float64, positions)
	for i := range ranges {
		ranges[i] = values
	}
	return ranges
}
