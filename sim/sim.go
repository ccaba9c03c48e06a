/*package sim owns the time stepping loop: it builds a particle.System,
advances it through a fixed number of unit time steps, and reports a
centre-of-mass line after every step.
*/
package sim

import (
	"fmt"
	goio "io"
	"time"

	"github.com/phil-mansfield/nbody/gravity"
	"github.com/phil-mansfield/nbody/particle"
	"github.com/phil-mansfield/nbody/stats"
)

// State tracks a Driver through its run. Completed and Aborted are
// terminal: a Driver runs exactly once and a failed run is discarded, never
// resumed.
type State int

const (
	Uninitialized State = iota
	Initialized
	Stepping
	Completed
	Aborted
)

// Recorder receives one centre-of-mass row per completed step.
type Recorder interface {
	Write(step int, cx, cy, cz float64) error
}

type Driver struct {
	sys   *particle.System
	intr  *gravity.Integrator
	steps int
	state State
	w     goio.Writer
	rec   Recorder
	start time.Time
}

// New builds a Driver around a freshly sampled system of n particles. The
// wall clock starts here so that the final summary covers initialization as
// well as stepping.
func New(
	n, steps int, seed int64, intr *gravity.Integrator, w goio.Writer,
) (*Driver, error) {
	start := time.Now()

	fmt.Fprintf(w, "Initializing for %d particles in x,y,z space...", n)

	sys, err := particle.New(n)
	if err != nil {
		return nil, err
	}
	particle.InitRandom(sys, seed)

	fmt.Fprintf(w, "  INIT COMPLETE\n")

	dr, err := newDriver(sys, steps, intr, w)
	if err != nil {
		return nil, err
	}
	dr.start = start
	return dr, nil
}

// NewFromSystem builds a Driver around an already populated system, e.g.
// one read from an initial-condition table.
func NewFromSystem(
	sys *particle.System, steps int, intr *gravity.Integrator, w goio.Writer,
) (*Driver, error) {
	if sys == nil || sys.Len() == 0 {
		return nil, fmt.Errorf("Cannot drive a simulation of zero particles.")
	}

	fmt.Fprintf(w, "Loaded %d particles in x,y,z space.\n", sys.Len())

	return newDriver(sys, steps, intr, w)
}

func newDriver(
	sys *particle.System, steps int, intr *gravity.Integrator, w goio.Writer,
) (*Driver, error) {
	if steps < 0 {
		return nil, fmt.Errorf("Cannot integrate for %d timesteps.", steps)
	}

	return &Driver{
		sys:   sys,
		intr:  intr,
		steps: steps,
		state: Initialized,
		w:     w,
		start: time.Now(),
	}, nil
}

func (dr *Driver) State() State { return dr.state }

func (dr *Driver) System() *particle.System { return dr.sys }

// Record registers rec to receive a centre-of-mass row after every step. A
// write failure aborts the run.
func (dr *Driver) Record(rec Recorder) { dr.rec = rec }

// Run reports the t=0 diagnostics, advances the system through every
// timestep with a report after each one, and finishes with the wall-clock
// summary. The first error aborts the run: there is no partial-run
// recovery.
func (dr *Driver) Run() error {
	if dr.state != Initialized {
		dr.state = Aborted
		return fmt.Errorf("Driver has already run.")
	}

	// Mass never changes during a run, so the total is computed once and
	// reused by every centre-of-mass report.
	totalMass := stats.TotalMass(dr.sys)
	cx, cy, cz := stats.CenterOfMass(dr.sys, totalMass)
	fmt.Fprintf(dr.w, "At t=0, centre of mass = (%g,%g,%g)\n", cx, cy, cz)

	fmt.Fprintf(dr.w, "Now to integrate for %d timesteps\n", dr.steps)

	for step := 1; step <= dr.steps; step++ {
		dr.state = Stepping
		dr.intr.Step(dr.sys)

		cx, cy, cz = stats.CenterOfMass(dr.sys, totalMass)
		fmt.Fprintf(dr.w,
			"End of timestep %d, centre of mass = (%.3f,%.3f,%.3f)\n",
			step, cx, cy, cz,
		)

		if dr.rec != nil {
			if err := dr.rec.Write(step, cx, cy, cz); err != nil {
				dr.state = Aborted
				return err
			}
		}
	}

	fmt.Fprintf(dr.w,
		"Time to init+solve %d particles for %d timesteps is %g seconds\n",
		dr.sys.Len(), dr.steps, time.Since(dr.start).Seconds(),
	)
	cx, cy, cz = stats.CenterOfMass(dr.sys, totalMass)
	fmt.Fprintf(dr.w, "Centre of mass = (%.5f,%.5f,%.5f)\n", cx, cy, cz)

	dr.state = Completed
	return nil
}
