package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/nbody/gravity"
	"github.com/phil-mansfield/nbody/particle"
)

func TestTotalMassMatchesSerialSum(t *testing.T) {
	defer func(cores int) { gravity.NumCores = cores }(gravity.NumCores)

	sys, _ := particle.New(1000)
	particle.InitRandom(sys, 21)

	serial := 0.0
	for _, m := range sys.Mass {
		serial += m
	}

	for _, workers := range []int{1, 2, 7, 32, 2000} {
		gravity.NumCores = workers
		assert.InEpsilon(t, serial, TotalMass(sys), 1e-12,
			"workers = %d", workers)
	}
}

func TestTotalMassIsPure(t *testing.T) {
	sys, _ := particle.New(100)
	particle.InitRandom(sys, 4)

	assert.Equal(t, TotalMass(sys), TotalMass(sys))
}

func TestCenterOfMass(t *testing.T) {
	sys, _ := particle.New(2)
	sys.Mass[0], sys.Mass[1] = 1, 3
	sys.X[0], sys.X[1] = 0, 4
	sys.Y[0], sys.Y[1] = -2, 2
	sys.Z[0], sys.Z[1] = 1, 1

	cx, cy, cz := CenterOfMass(sys, 4)
	assert.Equal(t, 3.0, cx)
	assert.Equal(t, 1.0, cy)
	assert.Equal(t, 1.0, cz)

	// Pure query: identical results without an intervening step.
	cx2, cy2, cz2 := CenterOfMass(sys, 4)
	assert.Equal(t, cx, cx2)
	assert.Equal(t, cy, cy2)
	assert.Equal(t, cz, cz2)
}

func TestCenterOfMassWithInvalidTotalMass(t *testing.T) {
	sys, _ := particle.New(2)
	sys.X[0], sys.X[1] = 1, 2

	for _, total := range []float64{0, -1} {
		cx, cy, cz := CenterOfMass(sys, total)
		assert.True(t, math.IsNaN(cx), "totalMass = %g", total)
		assert.True(t, math.IsNaN(cy), "totalMass = %g", total)
		assert.True(t, math.IsNaN(cz), "totalMass = %g", total)
	}
}
