package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/feldi/pocketcube"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [moves...]",
	Short: "Print the one-hot feature encoding of a state",
	Long: `Apply a sequence of move tokens to the solved cube and print the
7x24 one-hot feature encoding used as model input: one row per
physical corner, a single bit at column slot*3+orientation.`,
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	moves, err := pocketcube.ParseActions(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("parsing moves: %w", err)
	}

	s := pocketcube.TransformAll(pocketcube.Identity(), moves)
	buf := pocketcube.Encode(s)

	rows, cols := pocketcube.EncodedShape()
	for row := 0; row < rows; row++ {
		var b strings.Builder
		fmt.Fprintf(&b, "corner %d  ", row)
		for col := 0; col < cols; col++ {
			if col > 0 && col%3 == 0 {
				b.WriteByte(' ')
			}
			if buf[row*cols+col] == 1 {
				b.WriteByte('1')
			} else {
				b.WriteByte('.')
			}
		}
		fmt.Println(b.String())
	}
	return nil
}
