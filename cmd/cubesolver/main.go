// cubesolver - CLI for the optimal Rubik's Cube solver.
package main

import (
	"github.com/SeamusWaldron/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}
