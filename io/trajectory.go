package io

import (
	"fmt"
	"os"
)

// Trajectory accumulates one centre-of-mass row per completed step in a
// text file that table.ReadTable can read back.
type Trajectory struct {
	f *os.File
}

func CreateTrajectory(path string) (*Trajectory, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(f, "# step com_x com_y com_z")
	return &Trajectory{f}, nil
}

func (traj *Trajectory) Write(step int, cx, cy, cz float64) error {
	_, err := fmt.Fprintf(traj.f, "%d %.10g %.10g %.10g\n", step, cx, cy, cz)
	return err
}

func (traj *Trajectory) Close() error {
	return traj.f.Close()
}
