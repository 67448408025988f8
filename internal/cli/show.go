package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/feldi/pocketcube"
)

var showCmd = &cobra.Command{
	Use:   "show [moves...]",
	Short: "Apply a move sequence to the solved cube and display it",
	Long: `Apply a sequence of move tokens to the solved cube and print the
resulting colored net.

Tokens are a face letter (R, U, B) plus + for clockwise or - for
counter-clockwise, e.g.:

  pocketcube show R+ U- B+`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	moves, err := pocketcube.ParseActions(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("parsing moves: %w", err)
	}

	s := pocketcube.TransformAll(pocketcube.Identity(), moves)

	if len(moves) > 0 {
		fmt.Println(labelStyle.Render("moves: ") + movesStyle.Render(pocketcube.FormatActions(moves)))
	}
	fmt.Print(describeState(s))
	return nil
}
