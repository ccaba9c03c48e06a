package particle

import (
	"math/rand"
)

const (
	minPos    = -50.0
	posWidth  = 100.0
	maxVel    = 5.0
	minMass   = 0.1
	massWidth = 10.0
)

// InitRandom fills sys with random initial conditions: x and y uniform in
// [-50, 50), z uniform in [0, 100), each velocity component uniform in
// [-5, 5), and mass uniform in [0.1, 10.1). For each particle the draws
// happen in a fixed order (x, y, z, vx, vy, vz, mass), one particle at a
// time, so a given seed always reproduces the same system. Do not
// parallelize this loop or reorder the draws.
func InitRandom(sys *System, seed int64) {
	gen := rand.New(rand.NewSource(seed))

	for i := 0; i < sys.Len(); i++ {
		sys.X[i] = minPos + posWidth*gen.Float64()
		sys.Y[i] = minPos + posWidth*gen.Float64()
		sys.Z[i] = posWidth * gen.Float64()
		sys.VX[i] = -maxVel + 2*maxVel*gen.Float64()
		sys.VY[i] = -maxVel + 2*maxVel*gen.Float64()
		sys.VZ[i] = -maxVel + 2*maxVel*gen.Float64()
		sys.Mass[i] = minMass + massWidth*gen.Float64()
	}
}
