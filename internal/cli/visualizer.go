package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesolver"
)

// faceletStyles maps each facelet color to a terminal style.
var faceletStyles = map[cubesolver.Color]lipgloss.Style{
	cubesolver.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	cubesolver.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	cubesolver.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	cubesolver.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	cubesolver.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	cubesolver.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

var (
	solutionLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	solutionMovesStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("82"))

	solutionStatsStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// renderFacelet draws one colored facelet square.
func renderFacelet(c cubesolver.Color) string {
	return faceletStyles[c].Render(c.String())
}

// RenderCube draws the cube as a colored unfolded layout: U on top,
// L F R B in a row, D at the bottom.
func RenderCube(c *cubesolver.Cube) string {
	var sb strings.Builder

	writeRow := func(face cubesolver.CubeFace, row int) {
		for col := 0; col < 3; col++ {
			sb.WriteString(renderFacelet(c.Facelets[face][row*3+col]))
			sb.WriteString(" ")
		}
	}

	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		writeRow(cubesolver.CubeFaceU, row)
		sb.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []cubesolver.CubeFace{
			cubesolver.CubeFaceL, cubesolver.CubeFaceF,
			cubesolver.CubeFaceR, cubesolver.CubeFaceB,
		} {
			writeRow(face, row)
		}
		sb.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		writeRow(cubesolver.CubeFaceD, row)
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderSolution formats a found solution with its search statistics.
func RenderSolution(solution []cubesolver.Move, nodes int, elapsed time.Duration) string {
	if len(solution) == 0 {
		return solutionLabelStyle.Render("Already solved") + "\n"
	}

	return fmt.Sprintf("%s %s\n%s\n",
		solutionLabelStyle.Render("Solution:"),
		solutionMovesStyle.Render(cubesolver.FormatMoves(solution)),
		solutionStatsStyle.Render(fmt.Sprintf("%d moves, %d nodes expanded, %s",
			len(solution), nodes, elapsed.Round(time.Millisecond))))
}
