package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/phil-mansfield/nbody/gravity"
	nbio "github.com/phil-mansfield/nbody/io"
	"github.com/phil-mansfield/nbody/sim"
)

// initFailureStatus is the exit status used when a simulation resource
// cannot be acquired, as opposed to status 1 for flag and configuration
// mistakes.
const initFailureStatus = 2

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		simulate      string
		exampleConfig bool
	)

	flag.IntVar(
		&gravity.NumCores, "Threads", runtime.NumCPU(),
		"Number of threads used. Default is the number of logical cores.",
	)
	flag.StringVar(
		&simulate, "Simulate", "",
		"Configuration file for [Simulation] mode.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example [Simulation] configuration file to stdout.",
	)

	flag.Parse()

	runtime.GOMAXPROCS(gravity.NumCores)

	switch {
	case exampleConfig && simulate == "":
		fmt.Println(nbio.ExampleSimulationFile)
	case !exampleConfig && simulate != "":
		simulateMain(simulate)
	default:
		log.Fatal("Exactly one of -Simulate and -ExampleConfig is required.")
	}
}

func simulateMain(fname string) {
	con, err := nbio.ReadSimulationConfig(fname)
	if err != nil {
		log.Fatal(err.Error())
	}

	if !con.ValidTimesteps() {
		log.Fatal("Invalid 'Timesteps' value.")
	} else if !con.ValidGravConst() {
		log.Fatal("Invalid 'GravConst' value.")
	} else if !con.ValidParticles() && !con.ValidInitialConditions() {
		log.Fatal(
			"You must set either a valid 'Particles' or a valid " +
				"'InitialConditions'.",
		)
	}

	fg, err := newFileGroup(con)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer fg.Close()

	intr := gravity.New(con.GravConst)

	var dr *sim.Driver
	if con.ValidInitialConditions() {
		sys, err := nbio.ReadInitialConditions(con.InitialConditions)
		if err != nil {
			abort("initial conditions", err)
		}
		dr, err = sim.NewFromSystem(sys, con.Timesteps, intr, os.Stdout)
		if err != nil {
			abort("simulation state", err)
		}
	} else {
		dr, err = sim.New(
			con.Particles, con.Timesteps, con.Seed, intr, os.Stdout,
		)
		if err != nil {
			abort("particle arrays", err)
		}
	}

	if con.ValidTrajectory() {
		traj, err := nbio.CreateTrajectory(con.Trajectory)
		if err != nil {
			abort("trajectory file", err)
		}
		defer traj.Close()
		dr.Record(traj)
	}

	if err := dr.Run(); err != nil {
		abort("simulation run", err)
	}
}

func newFileGroup(con *nbio.SimulationConfig) (*FileGroup, error) {
	fg := &FileGroup{}

	if con.ValidLogFile() {
		f, err := os.Create(con.LogFile)
		if err != nil {
			return nil, err
		}
		log.SetOutput(f)
		fg.log = f
	}

	if con.ValidProfileFile() {
		f, err := os.Create(con.ProfileFile)
		if err != nil {
			return nil, err
		}
		pprof.StartCPUProfile(f)
		fg.prof = f
	}

	return fg, nil
}

// abort reports which resource failed and exits with a status distinct
// from the one used for configuration mistakes.
func abort(resource string, err error) {
	fmt.Printf("ERROR acquiring %s: %s - aborting\n", resource, err.Error())
	os.Exit(initFailureStatus)
}
