package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/nbody/particle"
)

// Column layout of initial-condition tables.
const (
	xCol, yCol, zCol    = 0, 1, 2
	vxCol, vyCol, vzCol = 3, 4, 5
	massCol             = 6
)

// ReadInitialConditions reads a whitespace-separated text table with the
// columns x y z vx vy vz mass into a new System. Every row is one
// particle; every mass must be positive.
func ReadInitialConditions(file string) (*particle.System, error) {
	colIdxs := []int{xCol, yCol, zCol, vxCol, vyCol, vzCol, massCol}
	cols, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	sys, err := particle.New(len(cols[xCol]))
	if err != nil {
		return nil, fmt.Errorf(
			"Initial-condition file '%s' contains no particles.", file,
		)
	}

	copy(sys.X, cols[xCol])
	copy(sys.Y, cols[yCol])
	copy(sys.Z, cols[zCol])
	copy(sys.VX, cols[vxCol])
	copy(sys.VY, cols[vyCol])
	copy(sys.VZ, cols[vzCol])
	copy(sys.Mass, cols[massCol])

	for i, m := range sys.Mass {
		if m <= 0 {
			return nil, fmt.Errorf(
				"Particle %d in '%s' has non-positive mass %g.", i, file, m,
			)
		}
	}

	return sys, nil
}
