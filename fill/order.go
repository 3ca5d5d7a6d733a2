package fill

import (
	"math"
	"strings"
)

// OrderingStrategy selects how shapes are sequenced before filling. Document
// order can zigzag the pen across the whole sheet; nearest neighbor greedily
// shortens the dead travel between shapes, typically by a third to a half.
type OrderingStrategy int

const (
	// OrderDocument keeps the input order.
	OrderDocument OrderingStrategy = iota
	// OrderNearestNeighbor hops to the closest unvisited shape each step.
	OrderNearestNeighbor
)

func (s OrderingStrategy) String() string {
	if s == OrderNearestNeighbor {
		return "nearest"
	}
	return "document"
}

// ParseOrdering maps a user-facing name to a strategy. The second return is
// false for names it does not know.
func ParseOrdering(name string) (OrderingStrategy, bool) {
	switch strings.ToLower(name) {
	case "document", "doc", "original":
		return OrderDocument, true
	case "nearest", "nn", "nearest-neighbor":
		return OrderNearestNeighbor, true
	}
	return OrderDocument, false
}

// OrderShapes returns a permutation of indices into polygons, sequenced by
// the given strategy. Every index appears exactly once.
func OrderShapes(polygons []Polygon, strategy OrderingStrategy) []int {
	if strategy == OrderNearestNeighbor {
		return orderNearestNeighbor(polygons)
	}

	order := make([]int, len(polygons))
	for i := range order {
		order[i] = i
	}
	return order
}

// orderNearestNeighbor starts at the centroid nearest the origin and
// greedily hops to the nearest unvisited centroid. Quadratic, which is fine
// for the shape counts a plotter sheet holds.
func orderNearestNeighbor(polygons []Polygon) []int {
	n := len(polygons)
	order := make([]int, 0, n)
	if n == 0 {
		return order
	}

	centroids := make([]Point, n)
	for i, p := range polygons {
		centroids[i] = p.Centroid()
	}

	first := 0
	best := math.Inf(1)
	for i, c := range centroids {
		if d := c.Dot(c); d < best {
			best = d
			first = i
		}
	}

	visited := make([]bool, n)
	order = append(order, first)
	visited[first] = true

	for len(order) < n {
		current := centroids[order[len(order)-1]]

		next := -1
		bestDist := math.Inf(1)
		for i, c := range centroids {
			if visited[i] {
				continue
			}
			if d := current.DistanceTo(c); d < bestDist {
				bestDist = d
				next = i
			}
		}

		order = append(order, next)
		visited[next] = true
	}

	return order
}

// TravelDistance sums the centroid-to-centroid hops for a given ordering.
// Zero for one shape or fewer.
func TravelDistance(polygons []Polygon, order []int) float64 {
	if len(order) <= 1 {
		return 0
	}

	centroids := make([]Point, len(polygons))
	for i, p := range polygons {
		centroids[i] = p.Centroid()
	}

	total := 0.0
	for i := 1; i < len(order); i++ {
		total += centroids[order[i-1]].DistanceTo(centroids[order[i]])
	}
	return total
}
