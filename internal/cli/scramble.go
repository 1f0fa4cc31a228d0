package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
)

var (
	scrambleLength int
	scrambleSeed   int64
	scrambleShow   bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence in standard notation.

Consecutive moves never repeat a face. Pass --seed for a reproducible
scramble, and --show to print the resulting cube layout.`,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleLength, "moves", "n", 20, "Number of moves in the scramble")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = random)")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Also print the scrambled cube")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleLength < 1 {
		return fmt.Errorf("scramble length must be at least 1")
	}

	var moves []cubesolver.Move
	if scrambleSeed != 0 {
		moves = cubesolver.ScrambleSeeded(scrambleSeed, scrambleLength)
	} else {
		moves = cubesolver.Scramble(scrambleLength)
	}

	fmt.Println(cubesolver.FormatMoves(moves))

	if scrambleShow {
		cube := cubesolver.NewCube()
		cube.ApplyMoves(moves)
		fmt.Println(RenderCube(&cube))
	}
	return nil
}
