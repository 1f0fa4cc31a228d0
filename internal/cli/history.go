package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	Long:  `Display recent solves from the history database, newest first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "Maximum number of solves to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	var db *storage.DB
	var err error
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.MigrateUp(); err != nil {
		return err
	}

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	for _, s := range solves {
		fmt.Printf("%s  %s\n", s.CreatedAt.Local().Format(time.DateTime), s.SolveID)
		fmt.Printf("  scramble: %s\n", s.Scramble)
		fmt.Printf("  solution: %s (%d moves, %d nodes, %dms)\n",
			s.Solution, s.MoveCount, s.NodesExpanded, s.DurationMs)
	}
	return nil
}
