package palette

import (
	"math/rand"

	"github.com/muesli/clusters"
	"gonum.org/v1/gonum/floats"

	"github.com/sieis/Pixel-Color-By-Number/internal/grid"
)

// Clustering constants. The seed is fixed so the same input always yields
// the same palette, in the same order.
const (
	kmeansSeed     = 42
	deltaThreshold = 0.01 // max centroid movement in 0-255 RGB space
	maxIterations  = 100
)

func observations(p *grid.Pixels) clusters.Observations {
	dataset := make(clusters.Observations, 0, len(p.Pix))
	for _, c := range p.Pix {
		dataset = append(dataset, clusters.Coordinates{
			float64(c.R),
			float64(c.G),
			float64(c.B),
		})
	}
	return dataset
}

// seedClusters picks k initial centers with k-means++ weighting. Every
// center is an actual input point, so no two centers coincide as long as
// k does not exceed the number of distinct points. Palette order is the
// pick order.
func seedClusters(dataset clusters.Observations, k int, rng *rand.Rand) clusters.Clusters {
	cc := make(clusters.Clusters, 0, k)
	first := dataset[rng.Intn(len(dataset))].Coordinates()
	cc = append(cc, clusters.Cluster{Center: first})

	dist := make([]float64, len(dataset))
	for len(cc) < k {
		sum := 0.0
		for i, obs := range dataset {
			best := obs.Distance(cc[0].Center)
			for _, cl := range cc[1:] {
				if d := obs.Distance(cl.Center); d < best {
					best = d
				}
			}
			dist[i] = best
			sum += best
		}
		if sum == 0 {
			break
		}
		target := rng.Float64() * sum
		next := 0
		for i, d := range dist {
			target -= d
			if target <= 0 && d > 0 {
				next = i
				break
			}
		}
		cc = append(cc, clusters.Cluster{Center: dataset[next].Coordinates()})
	}
	return cc
}

// runKMeans fits k clusters to the dataset with Lloyd iterations until
// the largest centroid movement falls below deltaThreshold or the
// iteration cap is hit.
func runKMeans(dataset clusters.Observations, k int) clusters.Clusters {
	rng := rand.New(rand.NewSource(kmeansSeed))
	cc := seedClusters(dataset, k, rng)

	for it := 0; it < maxIterations; it++ {
		cc.Reset()
		for _, obs := range dataset {
			ci := cc.Nearest(obs)
			cc[ci].Append(obs)
		}

		moved := 0.0
		for i := range cc {
			n := len(cc[i].Observations)
			if n == 0 {
				// Empty cluster keeps its previous center.
				continue
			}
			sum := make(clusters.Coordinates, len(cc[i].Center))
			for _, obs := range cc[i].Observations {
				co := obs.Coordinates()
				for d := range sum {
					sum[d] += co[d]
				}
			}
			for d := range sum {
				sum[d] /= float64(n)
			}
			if d := floats.Distance(cc[i].Center, sum, 2); d > moved {
				moved = d
			}
			cc[i].Center = sum
		}
		if moved < deltaThreshold {
			break
		}
	}
	return cc
}

// kmeansPalette returns the k rounded cluster centroids in cluster order.
func kmeansPalette(p *grid.Pixels, k int) []grid.RGB {
	cc := runKMeans(observations(p), k)
	colors := make([]grid.RGB, 0, len(cc))
	for _, cl := range cc {
		colors = append(colors, roundCoordinates(cl.Center))
	}
	return colors
}

func roundCoordinates(c clusters.Coordinates) grid.RGB {
	return grid.RGB{
		R: clampChannel(c[0]),
		G: clampChannel(c[1]),
		B: clampChannel(c[2]),
	}
}

func clampChannel(v float64) uint8 {
	return uint8(max(0, min(255, v+0.5)))
}
