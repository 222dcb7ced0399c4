package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hailam/solibored/internal/board"
	"github.com/hailam/solibored/internal/storage"
)

var (
	pegColor  = color.New(color.FgHiYellow, color.Bold)
	holeColor = color.New(color.FgHiBlack)
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved board position",
	Long:  `Print the saved board position, or the starting layout if none is saved.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close storage")
			}
		}()

		b, removals, err := store.LoadBoard()
		if err != nil {
			return fmt.Errorf("load position: %w", err)
		}

		writeBoard(os.Stdout, &b)
		fmt.Printf("%d pegs, %d removed\n", b.Count(), removals)
		return nil
	},
}

// writeBoard prints the board with the cross cells only: pegs as 'o',
// empty holes as '.', cells outside the playing surface blank.
func writeBoard(w io.Writer, b *board.Board) {
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			switch {
			case b.OccupiedAt(sq):
				pegColor.Fprint(w, "o ")
			case board.SquareBB(sq)&board.Cross != 0:
				holeColor.Fprint(w, ". ")
			default:
				fmt.Fprint(w, "  ")
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}
