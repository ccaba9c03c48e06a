/*package stats computes summary metrics of a particle.System. These are
verification probes: nothing here feeds back into the dynamics.
*/
package stats

import (
	"math"

	"github.com/phil-mansfield/nbody/gravity"
	"github.com/phil-mansfield/nbody/particle"
)

// TotalMass returns the sum of every particle's mass. The sum is a chunked
// parallel reduction over gravity.NumCores workers, which can reorder the
// additions, so it agrees with a serial sum only to within float64
// reassociation.
func TotalMass(sys *particle.System) float64 {
	n := sys.Len()
	workers := gravity.NumCores
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if n == 0 {
		return 0
	}

	// Partial sums land in a slot per worker and are combined in worker
	// order, so the reduction is deterministic for a fixed worker count.
	parts := make([]float64, workers)
	out := make(chan int, workers)
	for id := 0; id < workers-1; id++ {
		go chanSum(sys.Mass, id, workers, parts, out)
	}
	chanSum(sys.Mass, workers-1, workers, parts, out)
	for i := 0; i < workers; i++ {
		<-out
	}

	total := 0.0
	for _, part := range parts {
		total += part
	}
	return total
}

func chanSum(xs []float64, id, workers int, parts []float64, out chan<- int) {
	sum := 0.0
	for i := id; i < len(xs); i += workers {
		sum += xs[i]
	}
	parts[id] = sum
	out <- id
}

// CenterOfMass returns the mass-weighted mean position of sys. It is a pure
// query: calling it twice without an intervening step gives identical
// results. totalMass must be positive; if it is not, NaN is returned on
// every axis.
func CenterOfMass(
	sys *particle.System, totalMass float64,
) (cx, cy, cz float64) {
	if totalMass <= 0 {
		nan := math.NaN()
		return nan, nan, nan
	}

	for i := 0; i < sys.Len(); i++ {
		cx += sys.Mass[i] * sys.X[i]
		cy += sys.Mass[i] * sys.Y[i]
		cz += sys.Mass[i] * sys.Z[i]
	}

	return cx / totalMass, cy / totalMass, cz / totalMass
}
