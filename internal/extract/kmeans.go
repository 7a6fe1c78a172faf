package extract

import (
	"math"
	"math/rand"

	"github.com/jmylchreest/blockhue/internal/colour"
)

// kMeans finds the dominant colour of a pixel set by k-means clustering.
// Initial centroids are placed with k-means++ from a seeded source, so the
// same pixels and seed always give the same result.
type kMeans struct {
	k             int
	maxIterations int
	convergence   float64
	maxSamples    int
	rng           *rand.Rand
}

func newKMeans(k int, seed int64) *kMeans {
	return &kMeans{
		k:             k,
		maxIterations: 50,
		convergence:   0.5,
		maxSamples:    4096,
		// #nosec G404 -- reproducible clustering needs a seeded PRNG
		rng: rand.New(rand.NewSource(seed)),
	}
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// dominant returns the centroid of the largest cluster. Ties go to the
// cluster created first.
func (e *kMeans) dominant(pixels []pixel) colour.Colour {
	points := e.samplePoints(pixels)

	k := min(e.k, len(points))
	centroids, assignments := e.cluster(points, k)

	sizes := make([]int, len(centroids))
	for _, a := range assignments {
		sizes[a]++
	}

	best := 0
	for i := 1; i < len(sizes); i++ {
		if sizes[i] > sizes[best] {
			best = i
		}
	}

	c := centroids[best]
	return colour.FromRGB(roundChannel(c.R), roundChannel(c.G), roundChannel(c.B))
}

// samplePoints converts pixels to points, grid-sampling large inputs down to
// at most maxSamples in row-major order.
func (e *kMeans) samplePoints(pixels []pixel) []point3D {
	step := 1
	if len(pixels) > e.maxSamples {
		step = (len(pixels) + e.maxSamples - 1) / e.maxSamples
	}

	points := make([]point3D, 0, len(pixels)/step+1)
	for i := 0; i < len(pixels); i += step {
		p := pixels[i]
		points = append(points, point3D{R: float64(p.r), G: float64(p.g), B: float64(p.b)})
	}
	return points
}

// cluster runs Lloyd iterations until the largest centroid movement drops
// below the convergence threshold or maxIterations is reached.
func (e *kMeans) cluster(points []point3D, k int) ([]point3D, []int) {
	centroids := e.initializeCentroidsKMeansPlusPlus(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		for i, point := range points {
			assignments[i] = findNearestCentroid(point, centroids)
		}

		newCentroids := e.recalculateCentroids(points, assignments, k)

		movement := 0.0
		for i := range centroids {
			movement = math.Max(movement, centroids[i].distance(newCentroids[i]))
		}
		centroids = newCentroids

		if movement < e.convergence {
			break
		}
	}

	for i, point := range points {
		assignments[i] = findNearestCentroid(point, centroids)
	}

	return centroids, assignments
}

// initializeCentroidsKMeansPlusPlus initializes centroids using k-means++.
func (e *kMeans) initializeCentroidsKMeansPlusPlus(points []point3D, k int) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[e.rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		totalDistance := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				minDist = math.Min(minDist, point.distance(centroid))
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		// Every point already coincides with a centroid.
		if totalDistance == 0 {
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := e.rng.Float64() * totalDistance
		cumulative := 0.0
		chosen := len(points) - 1
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}

	return centroids
}

// findNearestCentroid finds the index of the nearest centroid to a point.
func findNearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		if dist := point.distance(centroid); dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids recalculates centroid positions based on assigned points.
// Empty clusters are re-seeded from a random point.
func (e *kMeans) recalculateCentroids(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := range k {
		if counts[i] > 0 {
			n := float64(counts[i])
			centroids[i] = point3D{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
		} else {
			centroids[i] = points[e.rng.Intn(len(points))]
		}
	}

	return centroids
}
