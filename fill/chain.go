package fill

import "math"

// DefaultChainTolerance is how far apart two endpoints can sit and still
// count as the same pen position. Sub-pixel at typical SVG scales.
const DefaultChainTolerance = 0.1

// Floor on the spatial hash cell size, so a zero tolerance cannot zero the
// cell size.
const minChainCellSize = 0.001

type chainCell struct {
	x, y int64
}

// endpointRef marks one end of one segment in the spatial hash.
type endpointRef struct {
	segment int
	isStart bool
}

// ChainSegments joins segments whose endpoints coincide within tolerance into
// polylines, cutting the number of pen lifts. Each input segment is consumed
// exactly once, directions are preserved, and chains come out in first-use
// order of the input.
//
// The endpoint lookup runs through a spatial hash, so chaining is linear on
// average and only quadratic if every endpoint hashes to one cell.
func ChainSegments(segments []Segment, tolerance float64) []Polyline {
	if len(segments) == 0 {
		return nil
	}

	cellSize := math.Max(tolerance, minChainCellSize)
	toleranceSq := tolerance * tolerance

	grid := make(map[chainCell][]endpointRef, len(segments)*2)
	for i, s := range segments {
		startCell := cellForPoint(s.Start, cellSize)
		endCell := cellForPoint(s.End, cellSize)
		grid[startCell] = append(grid[startCell], endpointRef{i, true})
		grid[endCell] = append(grid[endCell], endpointRef{i, false})
	}

	used := make([]bool, len(segments))
	var chains []Polyline

	for start := range segments {
		if used[start] {
			continue
		}
		used[start] = true
		chain := Polyline{segments[start].Start, segments[start].End}

		// Extend forward: segments that start where the chain ends.
		for {
			next, ok := findConnecting(chain[len(chain)-1], grid, segments, used, cellSize, toleranceSq, true)
			if !ok {
				break
			}
			used[next] = true
			chain = append(chain, segments[next].End)
		}

		// Extend backward: segments that end where the chain starts.
		for {
			prev, ok := findConnecting(chain[0], grid, segments, used, cellSize, toleranceSq, false)
			if !ok {
				break
			}
			used[prev] = true
			chain = append(Polyline{segments[prev].Start}, chain...)
		}

		chains = append(chains, chain)
	}

	return chains
}

func cellForPoint(p Point, cellSize float64) chainCell {
	return chainCell{
		x: int64(math.Floor(p.X / cellSize)),
		y: int64(math.Floor(p.Y / cellSize)),
	}
}

// findConnecting looks for an unused segment whose start (or end, per
// matchStart) lies within tolerance of p. Matching endpoints can land in a
// neighboring cell, so the scan covers the 3x3 block around p's cell.
func findConnecting(p Point, grid map[chainCell][]endpointRef, segments []Segment, used []bool, cellSize, toleranceSq float64, matchStart bool) (int, bool) {
	cell := cellForPoint(p, cellSize)

	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, ref := range grid[chainCell{cell.x + dx, cell.y + dy}] {
				if used[ref.segment] || ref.isStart != matchStart {
					continue
				}

				candidate := segments[ref.segment].End
				if matchStart {
					candidate = segments[ref.segment].Start
				}

				d := candidate.Sub(p)
				if d.Dot(d) <= toleranceSq {
					return ref.segment, true
				}
			}
		}
	}

	return 0, false
}

// FlattenChains lowers polylines back to individual segments.
func FlattenChains(chains []Polyline) []Segment {
	var segments []Segment
	for _, chain := range chains {
		for i := 0; i+1 < len(chain); i++ {
			segments = append(segments, Segment{chain[i], chain[i+1]})
		}
	}
	return segments
}

// ChainStats summarizes how much a chaining pass compressed the path list.
type ChainStats struct {
	InputSegments  int
	OutputChains   int
	AvgChainLength float64
	MaxChainLength int

	// ReductionRatio is 1 - chains/segments: 0 when nothing chained, and
	// approaching 1 as long chains swallow many segments.
	ReductionRatio float64
}

// StatsForChains computes ChainStats for a chaining result, given the number
// of segments that went in.
func StatsForChains(inputCount int, chains []Polyline) ChainStats {
	stats := ChainStats{
		InputSegments: inputCount,
		OutputChains:  len(chains),
	}

	totalPoints := 0
	for _, chain := range chains {
		totalPoints += len(chain)
		if len(chain) > stats.MaxChainLength {
			stats.MaxChainLength = len(chain)
		}
	}

	if len(chains) > 0 {
		stats.AvgChainLength = float64(totalPoints) / float64(len(chains))
	}
	if inputCount > 0 {
		stats.ReductionRatio = 1 - float64(len(chains))/float64(inputCount)
	}

	return stats
}
