package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
)

var buildForce bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the corner pattern database",
	Long: `Generate the corner pattern database used as the solver's heuristic.

This enumerates all 88,179,840 corner configurations breadth-first from
the solved state and records each one's minimum solving depth. The
resulting ~44 MB table is written to the path given by --table and only
needs to be generated once.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVarP(&buildForce, "force", "f", false, "Rebuild even if the table file already exists")
	rootCmd.AddCommand(buildCmd)
}

// Styles
var (
	buildTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	buildStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	buildDepthStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	buildDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	buildErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// Messages
type buildProgressMsg cubesolver.BuildProgress
type buildDoneMsg struct{ err error }

// Model
type buildModel struct {
	path     string
	start    time.Time
	progress cubesolver.BuildProgress
	done     bool
	err      error
}

func newBuildModel(path string) *buildModel {
	return &buildModel{path: path, start: time.Now()}
}

func (m *buildModel) Init() tea.Cmd {
	return nil
}

func (m *buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.err = fmt.Errorf("build aborted")
			return m, tea.Quit
		}

	case buildProgressMsg:
		m.progress = cubesolver.BuildProgress(msg)
		return m, nil

	case buildDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m *buildModel) View() string {
	s := buildTitleStyle.Render("Corner Pattern Database") + "\n\n"

	if m.err != nil {
		return s + buildErrorStyle.Render("Error: "+m.err.Error()) + "\n"
	}

	pct := 100 * float64(m.progress.Assigned) / float64(cubesolver.PatternEntries)
	s += fmt.Sprintf("%s %s\n",
		buildStatusStyle.Render("Depth:"),
		buildDepthStyle.Render(fmt.Sprintf("%d", m.progress.Depth)))
	s += fmt.Sprintf("%s %d / %d (%.1f%%)\n",
		buildStatusStyle.Render("Assigned:"),
		m.progress.Assigned, cubesolver.PatternEntries, pct)
	s += fmt.Sprintf("%s %s\n",
		buildStatusStyle.Render("Elapsed:"),
		time.Since(m.start).Round(time.Second))

	if m.done {
		s += "\n" + buildDoneStyle.Render("Saved to "+m.path) + "\n"
	} else {
		s += "\n" + buildStatusStyle.Render("Press q to abort") + "\n"
	}

	return s
}

func runBuild(cmd *cobra.Command, args []string) error {
	path, err := getTablePath()
	if err != nil {
		return err
	}

	if !buildForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("pattern database already exists at %s (use --force to rebuild)", path)
		}
	}

	model := newBuildModel(path)
	p := tea.NewProgram(model)

	go func() {
		db := cubesolver.NewPatternDatabase()
		db.Build(func(bp cubesolver.BuildProgress) {
			p.Send(buildProgressMsg(bp))
		})
		p.Send(buildDoneMsg{err: db.Save(path)})
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("build UI failed: %w", err)
	}
	if m, ok := final.(*buildModel); ok && m.err != nil {
		return m.err
	}

	fmt.Printf("Pattern database written to %s\n", path)
	return nil
}
