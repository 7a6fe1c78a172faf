package extract

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/jmylchreest/blockhue/internal/colour"
)

var (
	// ErrEmptyInput is returned when a raster has no visible pixels.
	ErrEmptyInput = errors.New("no visible pixels in raster")

	// ErrInvalidOptions is returned for out of range extraction parameters.
	ErrInvalidOptions = errors.New("invalid extraction options")
)

// Method selects the extraction algorithm.
type Method int

const (
	// Average is the mean of all visible pixels.
	Average Method = iota
	// MostFrequent is the centroid of the most populated histogram bucket.
	MostFrequent
	// Clustering is the centroid of the largest k-means cluster.
	Clustering
	// EdgeWeighted is an average weighted towards high-gradient pixels.
	EdgeWeighted
)

const (
	// DefaultBins is the default number of histogram buckets per channel.
	DefaultBins = 16
	// DefaultK is the default number of k-means clusters.
	DefaultK = 4
)

// String returns the method name used on the command line.
func (m Method) String() string {
	switch m {
	case Average:
		return "average"
	case MostFrequent:
		return "most-frequent"
	case Clustering:
		return "clustering"
	case EdgeWeighted:
		return "edge-weighted"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ValidMethods returns every extraction method.
func ValidMethods() []Method {
	return []Method{Average, MostFrequent, Clustering, EdgeWeighted}
}

// ParseMethod converts a method name to a Method.
func ParseMethod(s string) (Method, error) {
	for _, m := range ValidMethods() {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown extraction method: %s (valid: average, most-frequent, clustering, edge-weighted)", s)
}

// Options configures an extraction.
type Options struct {
	Method Method
	// Bins is the number of buckets per channel for MostFrequent.
	Bins int
	// K is the number of clusters for Clustering.
	K int
	// Seed drives the initial centroid placement for Clustering.
	Seed int64
}

// DefaultOptions returns options for the given method with default parameters.
func DefaultOptions(m Method) Options {
	return Options{Method: m, Bins: DefaultBins, K: DefaultK}
}

// Validate checks the parameters used by the selected method.
func (o Options) Validate() error {
	switch o.Method {
	case Average, EdgeWeighted:
		return nil
	case MostFrequent:
		if o.Bins < 1 || o.Bins > 256 {
			return fmt.Errorf("%w: bins must be between 1 and 256, got %d", ErrInvalidOptions, o.Bins)
		}
		return nil
	case Clustering:
		if o.K < 1 || o.K > 256 {
			return fmt.Errorf("%w: k must be between 1 and 256, got %d", ErrInvalidOptions, o.K)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown method %d", ErrInvalidOptions, int(o.Method))
	}
}

// Colour extracts one representative colour from the raster. The result
// depends only on the raster bytes and the options.
func Colour(r Raster, opts Options) (colour.Colour, error) {
	if err := opts.Validate(); err != nil {
		return colour.Colour{}, err
	}

	pixels := r.visiblePixels()
	if len(pixels) == 0 {
		return colour.Colour{}, ErrEmptyInput
	}

	switch opts.Method {
	case Average:
		return average(pixels), nil
	case MostFrequent:
		return mostFrequent(pixels, opts.Bins), nil
	case Clustering:
		return newKMeans(opts.K, opts.Seed).dominant(pixels), nil
	case EdgeWeighted:
		return edgeWeighted(r, pixels), nil
	default:
		return colour.Colour{}, fmt.Errorf("%w: unknown method %d", ErrInvalidOptions, int(opts.Method))
	}
}

// Variants extracts a colour from every texture of one block and averages
// the results. Textures without visible pixels are skipped; ErrEmptyInput is
// returned when none contribute.
func Variants(rasters []Raster, opts Options) (colour.Colour, error) {
	var sum [3]float64
	n := 0

	for _, r := range rasters {
		c, err := Colour(r, opts)
		if errors.Is(err, ErrEmptyInput) {
			continue
		}
		if err != nil {
			return colour.Colour{}, err
		}
		rgb := c.RGB()
		for i := range sum {
			sum[i] += float64(rgb[i])
		}
		n++
	}

	if n == 0 {
		return colour.Colour{}, ErrEmptyInput
	}
	return meanColour(sum, float64(n)), nil
}

func average(pixels []pixel) colour.Colour {
	var sum [3]float64
	for _, p := range pixels {
		sum[0] += float64(p.r)
		sum[1] += float64(p.g)
		sum[2] += float64(p.b)
	}
	return meanColour(sum, float64(len(pixels)))
}

// mostFrequent buckets every channel into bins equal-width ranges over
// [0,256) and returns the mean of the pixels in the fullest bucket. Ties go
// to the lowest flattened bucket index.
func mostFrequent(pixels []pixel, bins int) colour.Colour {
	type bucket struct {
		count int
		sum   [3]float64
	}

	buckets := make(map[int]*bucket)
	for _, p := range pixels {
		idx := bucketOf(p.r, bins)*bins*bins + bucketOf(p.g, bins)*bins + bucketOf(p.b, bins)
		b, ok := buckets[idx]
		if !ok {
			b = &bucket{}
			buckets[idx] = b
		}
		b.count++
		b.sum[0] += float64(p.r)
		b.sum[1] += float64(p.g)
		b.sum[2] += float64(p.b)
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	best := keys[0]
	for _, k := range keys[1:] {
		if buckets[k].count > buckets[best].count {
			best = k
		}
	}

	return meanColour(buckets[best].sum, float64(buckets[best].count))
}

func bucketOf(v uint8, bins int) int {
	return int(v) * bins / 256
}

// edgeWeighted averages pixels with weight 1 + gradient magnitude / 255,
// where the gradient is taken over luma with central differences.
func edgeWeighted(r Raster, pixels []pixel) colour.Colour {
	luma := func(x, y, fallbackX, fallbackY int) float64 {
		if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
			x, y = fallbackX, fallbackY
		}
		red, green, blue, alpha := r.At(x, y)
		if alpha == 0 {
			red, green, blue, _ = r.At(fallbackX, fallbackY)
		}
		return 0.299*float64(red) + 0.587*float64(green) + 0.114*float64(blue)
	}

	var sum [3]float64
	total := 0.0
	for _, p := range pixels {
		gx := luma(p.x+1, p.y, p.x, p.y) - luma(p.x-1, p.y, p.x, p.y)
		gy := luma(p.x, p.y+1, p.x, p.y) - luma(p.x, p.y-1, p.x, p.y)
		w := 1 + math.Hypot(gx, gy)/255

		sum[0] += w * float64(p.r)
		sum[1] += w * float64(p.g)
		sum[2] += w * float64(p.b)
		total += w
	}

	return meanColour(sum, total)
}

func meanColour(sum [3]float64, n float64) colour.Colour {
	return colour.FromRGB(roundChannel(sum[0]/n), roundChannel(sum[1]/n), roundChannel(sum[2]/n))
}

func roundChannel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
