package main

import (
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"
)

const (
	stepCol = 0
	xCol    = 1
	yCol    = 2
	zCol    = 3
)

// Plots the centre-of-mass trajectory recorded by the Trajectory config
// option, one curve per axis against the step index.
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Required file use: $ %s trajectory_file", os.Args[0])
	}

	cols, err := table.ReadTable(
		os.Args[1], []int{stepCol, xCol, yCol, zCol}, nil,
	)
	if err != nil {
		log.Fatal(err.Error())
	}
	steps, xs, ys, zs := cols[stepCol], cols[xCol], cols[yCol], cols[zCol]

	plt.Reset()
	plt.Plot(steps, xs, "r", plt.LW(2))
	plt.Plot(steps, ys, "g", plt.LW(2))
	plt.Plot(steps, zs, "b", plt.LW(2))
	plt.Show()
}
