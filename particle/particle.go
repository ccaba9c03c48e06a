/*package particle stores the state of a direct-sum gravity simulation as
fixed-length parallel arrays and fills it with random initial conditions.
*/
package particle

import (
	"fmt"
	goio "io"
)

// System holds every particle in the simulation as parallel arrays. The
// arrays are sized at construction and never resized: a particle's index is
// its identity for the lifetime of the run.
type System struct {
	Mass       []float64
	X, Y, Z    []float64
	VX, VY, VZ []float64
}

// New creates a System of n particles with zeroed state. n must be
// positive: a zero-particle system has no well-defined centre of mass, so
// it is rejected here rather than left to divide by zero later.
func New(n int) (*System, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Cannot create a system of %d particles.", n)
	}

	sys := &System{}
	sys.Mass = make([]float64, n)
	sys.X, sys.Y, sys.Z = make([]float64, n),
		make([]float64, n), make([]float64, n)
	sys.VX, sys.VY, sys.VZ = make([]float64, n),
		make([]float64, n), make([]float64, n)

	return sys, nil
}

func (sys *System) Len() int { return len(sys.Mass) }

// Dump writes one line per particle with its position, velocity, and mass.
// Debugging only.
func (sys *System) Dump(w goio.Writer) {
	fmt.Fprintf(w, "num \t position (x,y,z) \t velocity (vx, vy, vz)\t mass \n")
	for i := 0; i < sys.Len(); i++ {
		fmt.Fprintf(w, "%d \t %f %f %f \t %f %f %f \t %f \n",
			i, sys.X[i], sys.Y[i], sys.Z[i],
			sys.VX[i], sys.VY[i], sys.VZ[i], sys.Mass[i],
		)
	}
}

// Snapshot is the read side of a single step: the mass and position of
// every particle, captured before any update is written back. Its buffers
// are reused from step to step.
type Snapshot struct {
	Mass    []float64
	X, Y, Z []float64
}

// Capture copies sys's mass and position into the snapshot. Buffers are
// only allocated the first time a system of a given size is captured, so
// steady-state stepping stays allocation-free.
func (snap *Snapshot) Capture(sys *System) {
	n := sys.Len()
	if len(snap.Mass) != n {
		snap.Mass = make([]float64, n)
		snap.X, snap.Y, snap.Z = make([]float64, n),
			make([]float64, n), make([]float64, n)
	}

	copy(snap.Mass, sys.Mass)
	copy(snap.X, sys.X)
	copy(snap.Y, sys.Y)
	copy(snap.Z, sys.Z)
}
