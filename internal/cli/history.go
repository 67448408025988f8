package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feldi/pocketcube/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded scrambles",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of scrambles to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	scrambles, err := repo.List(historyLimit)
	if err != nil {
		return fmt.Errorf("listing scrambles: %w", err)
	}

	if len(scrambles) == 0 {
		fmt.Println("No scrambles recorded yet. Run 'pocketcube scramble' first.")
		return nil
	}

	for _, s := range scrambles {
		fmt.Printf("%s  %s  %2d moves  %s\n",
			labelStyle.Render(s.ScrambleID[:8]),
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.Length,
			movesStyle.Render(s.Moves))
	}
	return nil
}
