/*package io reads simulation configuration files and initial-condition
tables and writes centre-of-mass trajectory files.
*/
package io

import (
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/nbody/gravity"
)

const (
	ExampleSimulationFile = `[Simulation]

#######################
# Required Parameters #
#######################

# Number of particles to simulate.
Particles = 20000

# Number of unit time steps to integrate for.
Timesteps = 10

#######################
# Optional Parameters #
#######################

# Seed for the initial-condition sampler. Runs with the same seed, particle
# count, and timestep count reproduce the same centre-of-mass trace.
# Default is 1.
# Seed = 1

# Gravitational constant used in the force law. Default is 0.001.
# GravConst = 0.001

# Read initial conditions from a whitespace-separated text file with the
# columns x y z vx vy vz mass instead of sampling them randomly. Particles
# and Seed are ignored when this is set.
# InitialConditions = path/to/table.txt

# Write one "step x y z" centre-of-mass row per completed step to this
# file. scripts/plot_com turns these files into plots.
# Trajectory = path/to/trajectory.txt

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`
)

type SimulationConfig struct {
	// Required
	Particles int
	Timesteps int

	// Optional
	Seed                 int64
	GravConst            float64
	InitialConditions    string
	Trajectory           string
	LogFile, ProfileFile string
}

type SimulationWrapper struct {
	Simulation SimulationConfig
}

func DefaultSimulationWrapper() *SimulationWrapper {
	con := SimulationConfig{}
	con.Seed = 1
	con.GravConst = gravity.GravConst
	return &SimulationWrapper{con}
}

// ReadSimulationConfig parses fname into a SimulationConfig with the
// defaults applied. Callers still need to check the Valid* methods of the
// fields they require.
func ReadSimulationConfig(fname string) (*SimulationConfig, error) {
	wrap := DefaultSimulationWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Simulation, nil
}

func (con *SimulationConfig) ValidParticles() bool {
	return con.Particles > 0
}
func (con *SimulationConfig) ValidTimesteps() bool {
	return con.Timesteps >= 0
}
func (con *SimulationConfig) ValidGravConst() bool {
	return con.GravConst > 0
}
func (con *SimulationConfig) ValidInitialConditions() bool {
	return con.InitialConditions != ""
}
func (con *SimulationConfig) ValidTrajectory() bool {
	return con.Trajectory != ""
}
func (con *SimulationConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SimulationConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}
