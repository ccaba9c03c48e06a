/*package gravity advances a particle.System through unit time steps by
direct evaluation of every pairwise Newtonian attraction.
*/
package gravity

import (
	"math"
	"runtime"

	"github.com/phil-mansfield/nbody/particle"
)

var (
	// NumCores is the number of worker goroutines used by Step and by the
	// reductions in the stats package. Set from the Threads flag.
	NumCores = runtime.NumCPU()
)

const (
	// GravConst is the default gravitational constant.
	GravConst = 0.001

	// SofteningFloor is the minimum separation used in the force law. It is
	// a numerical guard against near-coincident particles, not a physical
	// softening length. Self-interaction is excluded outright rather than
	// left to the floor.
	SofteningFloor = 0.01
)

// Integrator advances a System one unit time step at a time. The snapshot
// and collection channel are allocated once and reused, so a steady-state
// Step call does not allocate.
type Integrator struct {
	G       float64
	workers int
	snap    particle.Snapshot
	out     chan int
}

func New(g float64) *Integrator {
	intr := &Integrator{G: g, workers: NumCores}
	if intr.workers < 1 {
		intr.workers = 1
	}
	intr.out = make(chan int, intr.workers)
	return intr
}

// Step advances every particle's velocity and position by one unit time
// step, in place. Mass is untouched. The snapshot capture is the barrier at
// the head of the step; every worker reads only the snapshot and writes
// only its own particles, so the fan-out needs no locks, and draining the
// channel is the barrier at the end.
func (intr *Integrator) Step(sys *particle.System) {
	intr.snap.Capture(sys)

	for id := 0; id < intr.workers-1; id++ {
		go intr.chanStep(id, sys)
	}
	intr.chanStep(intr.workers-1, sys)

	for i := 0; i < intr.workers; i++ {
		<-intr.out
	}
}

// chanStep updates the particles i, i+workers, i+2*workers, ... using the
// snapshot as the right-hand side of every force evaluation.
func (intr *Integrator) chanStep(id int, sys *particle.System) {
	snap := &intr.snap
	n := sys.Len()

	for i := id; i < n; i += intr.workers {
		ax, ay, az := 0.0, 0.0, 0.0

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			dx := snap.X[j] - snap.X[i]
			dy := snap.Y[j] - snap.Y[i]
			dz := snap.Z[j] - snap.Z[i]
			d := math.Sqrt(dx*dx + dy*dy + dz*dz)
			if d < SofteningFloor {
				d = SofteningFloor
			}

			f := intr.G * sys.Mass[i] * snap.Mass[j] / (d * d)
			// The F/m_i factor cancels m_i algebraically, but the update is
			// kept in this form so it matches the force law term for term.
			ax += (f / sys.Mass[i]) * dx / d
			ay += (f / sys.Mass[i]) * dy / d
			az += (f / sys.Mass[i]) * dz / d
		}

		// One step has implicit unit duration: the accumulated acceleration
		// is applied to the velocity without a dt factor, and the position
		// advances by the updated velocity from the snapshot position.
		sys.VX[i] += ax
		sys.VY[i] += ay
		sys.VZ[i] += az

		sys.X[i] = snap.X[i] + sys.VX[i]
		sys.Y[i] = snap.Y[i] + sys.VY[i]
		sys.Z[i] = snap.Z[i] + sys.VZ[i]
	}

	intr.out <- id
}
