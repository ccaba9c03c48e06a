package io

import (
	"io/ioutil"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gcfg.v1"
)

func TestExampleConfigParses(t *testing.T) {
	wrap := DefaultSimulationWrapper()
	err := gcfg.ReadStringInto(wrap, ExampleSimulationFile)
	assert.NoError(t, err)

	con := &wrap.Simulation
	assert.Equal(t, 20000, con.Particles)
	assert.Equal(t, 10, con.Timesteps)
	assert.Equal(t, int64(1), con.Seed)
	assert.Equal(t, 0.001, con.GravConst)

	assert.True(t, con.ValidParticles())
	assert.True(t, con.ValidTimesteps())
	assert.True(t, con.ValidGravConst())
	assert.False(t, con.ValidInitialConditions())
	assert.False(t, con.ValidTrajectory())
	assert.False(t, con.ValidLogFile())
	assert.False(t, con.ValidProfileFile())
}

func TestConfigValidation(t *testing.T) {
	wrap := DefaultSimulationWrapper()
	err := gcfg.ReadStringInto(wrap, `[Simulation]
Particles = 0
Timesteps = -1
GravConst = 0
Trajectory = com.txt`)
	assert.NoError(t, err)

	con := &wrap.Simulation
	assert.False(t, con.ValidParticles())
	assert.False(t, con.ValidTimesteps())
	assert.False(t, con.ValidGravConst())
	assert.True(t, con.ValidTrajectory())
}

func TestReadSimulationConfig(t *testing.T) {
	dir := t.TempDir()
	fname := path.Join(dir, "sim.config")
	text := `[Simulation]
Particles = 100
Timesteps = 3
Seed = 7`
	assert.NoError(t, ioutil.WriteFile(fname, []byte(text), 0666))

	con, err := ReadSimulationConfig(fname)
	assert.NoError(t, err)
	assert.Equal(t, 100, con.Particles)
	assert.Equal(t, 3, con.Timesteps)
	assert.Equal(t, int64(7), con.Seed)
	// Unset fields keep their defaults.
	assert.Equal(t, 0.001, con.GravConst)

	_, err = ReadSimulationConfig(path.Join(dir, "missing.config"))
	assert.Error(t, err)
}
