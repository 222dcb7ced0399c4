package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hailam/solibored/internal/board"
	"github.com/hailam/solibored/internal/storage"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive board shell",
	Long: `Start an interactive shell for editing a board position.

Commands:
  show                 print the board
  remove <square>      remove the peg at a cell (e.g. remove d4)
  occupy <square>      place a peg on a cell
  discard <square>     clear a cell unconditionally
  flip v|h|d|a         mirror the board (vertical, horizontal, diagonal, anti-diagonal)
  rotate 90|180|270    rotate the board clockwise
  new                  reset to the starting layout
  empty                clear the board
  count                print the number of pegs
  save / load          persist or restore the position
  quit                 leave the shell`,
	Args: cobra.NoArgs,
}

// RunE is assigned in init to avoid an initialization cycle: the shell's
// help command reads shellCmd.Long.
func init() {
	shellCmd.RunE = func(cmd *cobra.Command, args []string) error {
		s := newShell()
		return s.run(os.Stdin, os.Stdout)
	}
}

// shell holds the state of one interactive session.
type shell struct {
	board    board.Board
	removals int
}

func newShell() *shell {
	return &shell{board: board.New()}
}

// run reads commands line by line until quit or EOF.
func (s *shell) run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if s.execute(line, out) {
			return nil
		}
	}
	return scanner.Err()
}

// execute runs one shell command and reports whether the session is over.
func (s *shell) execute(line string, out io.Writer) bool {
	parts := strings.Fields(line)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "show":
		writeBoard(out, &s.board)
	case "remove":
		if sq, ok := s.squareArg(out, cmd, args); ok {
			if s.board.RemoveAt(sq) {
				s.removals++
				fmt.Fprintf(out, "removed %v\n", sq)
			} else {
				fmt.Fprintf(out, "%v is already empty\n", sq)
			}
		}
	case "occupy":
		if sq, ok := s.squareArg(out, cmd, args); ok {
			s.board.Occupy(sq)
			if s.board.OccupiedAt(sq) {
				fmt.Fprintf(out, "occupied %v\n", sq)
			} else {
				fmt.Fprintf(out, "%v is outside the playing surface\n", sq)
			}
		}
	case "discard":
		if sq, ok := s.squareArg(out, cmd, args); ok {
			s.board.DiscardAt(sq)
			fmt.Fprintf(out, "cleared %v\n", sq)
		}
	case "flip":
		s.handleFlip(out, args)
	case "rotate":
		s.handleRotate(out, args)
	case "new":
		s.board = board.New()
		s.removals = 0
		fmt.Fprintln(out, "new board")
	case "empty":
		s.board = board.Empty()
		s.removals = 0
		fmt.Fprintln(out, "board cleared")
	case "count":
		fmt.Fprintf(out, "%d pegs\n", s.board.Count())
	case "save":
		s.handleSave(out)
	case "load":
		s.handleLoad(out)
	case "help":
		fmt.Fprintln(out, shellCmd.Long)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(out, "unknown command %q (try help)\n", cmd)
	}
	return false
}

// squareArg parses the single square argument of a cell command.
func (s *shell) squareArg(out io.Writer, cmd string, args []string) (board.Square, bool) {
	if len(args) != 1 {
		fmt.Fprintf(out, "usage: %s <square>\n", cmd)
		return board.NoSquare, false
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		fmt.Fprintf(out, "%v\n", err)
		return board.NoSquare, false
	}
	return sq, true
}

func (s *shell) handleFlip(out io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: flip v|h|d|a")
		return
	}
	switch args[0] {
	case "v":
		s.board.FlipVertical()
		fmt.Fprintln(out, "flipped vertically")
	case "h":
		s.board.FlipHorizontal()
		fmt.Fprintln(out, "flipped horizontally")
	case "d":
		s.board.FlipDiagonal()
		fmt.Fprintln(out, "flipped across a1-h8")
	case "a":
		s.board.FlipAntiDiagonal()
		fmt.Fprintln(out, "flipped across h1-a8")
	default:
		fmt.Fprintln(out, "usage: flip v|h|d|a")
	}
}

func (s *shell) handleRotate(out io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: rotate 90|180|270")
		return
	}
	switch args[0] {
	case "90":
		s.board.Rotate90()
		fmt.Fprintln(out, "rotated 90")
	case "180":
		s.board.Rotate180()
		fmt.Fprintln(out, "rotated 180")
	case "270":
		s.board.Rotate270()
		fmt.Fprintln(out, "rotated 270")
	default:
		fmt.Fprintln(out, "usage: rotate 90|180|270")
	}
}

// handleSave persists the position. The database is opened per operation
// so the shell does not hold the lock between commands.
func (s *shell) handleSave(out io.Writer) {
	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(out, "save failed: %v\n", err)
		return
	}
	defer closeStore(store)

	if err := store.SaveBoard(s.board, s.removals); err != nil {
		fmt.Fprintf(out, "save failed: %v\n", err)
		return
	}
	if err := store.RecordSession(s.board.Count(), s.removals); err != nil {
		log.Warn().Err(err).Msg("failed to record session")
	}
	fmt.Fprintln(out, "position saved")
}

func (s *shell) handleLoad(out io.Writer) {
	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(out, "load failed: %v\n", err)
		return
	}
	defer closeStore(store)

	b, removals, err := store.LoadBoard()
	if err != nil {
		fmt.Fprintf(out, "load failed: %v\n", err)
		return
	}
	s.board = b
	s.removals = removals
	fmt.Fprintln(out, "position loaded")
}

func closeStore(store *storage.Storage) {
	if err := store.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close storage")
	}
}
