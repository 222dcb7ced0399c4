package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/hailam/solibored/internal/board"
)

// run feeds commands to a fresh shell and returns it with the combined
// output.
func run(t *testing.T, lines ...string) (*shell, string) {
	t.Helper()

	s := newShell()
	var out bytes.Buffer
	for _, line := range lines {
		if s.execute(line, &out) {
			break
		}
	}
	return s, out.String()
}

func TestShellEditing(t *testing.T) {
	s, out := run(t, "remove d4", "remove d4", "occupy a1", "count")

	if s.board.OccupiedAt(board.D4) {
		t.Error("d4 still occupied after remove")
	}
	if !strings.Contains(out, "removed d4") {
		t.Errorf("missing removal confirmation:\n%s", out)
	}
	if !strings.Contains(out, "d4 is already empty") {
		t.Errorf("missing no-op message for second remove:\n%s", out)
	}
	if !strings.Contains(out, "a1 is outside the playing surface") {
		t.Errorf("missing rejection message for occupy a1:\n%s", out)
	}
	if !strings.Contains(out, "31 pegs") {
		t.Errorf("count mismatch:\n%s", out)
	}
}

func TestShellTransforms(t *testing.T) {
	// The worked pair for vertical flips: d4+d3 removed flips to d4+d5.
	s, _ := run(t, "remove d4", "remove d3", "flip v")

	want := board.New()
	want.RemoveAt(board.D4)
	want.RemoveAt(board.D5)
	if s.board != want {
		t.Errorf("flip v result:\n%swant\n%s", s.board.String(), want.String())
	}

	s, _ = run(t, "remove d4", "remove d5", "rotate 90", "rotate 270")
	want = board.New()
	want.RemoveAt(board.D4)
	want.RemoveAt(board.D5)
	if s.board != want {
		t.Error("rotate 90 then 270 did not round-trip")
	}
}

func TestShellArgumentErrors(t *testing.T) {
	_, out := run(t, "remove", "remove z9", "flip x", "rotate 45", "bogus")

	for _, want := range []string{
		"usage: remove <square>",
		"invalid square: z9",
		"usage: flip v|h|d|a",
		"usage: rotate 90|180|270",
		`unknown command "bogus"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShellQuit(t *testing.T) {
	s := newShell()
	var out bytes.Buffer
	if !s.execute("quit", &out) {
		t.Error("quit should end the session")
	}
	if s.execute("count", &out) {
		t.Error("count should not end the session")
	}
}

func TestShellSaveLoad(t *testing.T) {
	t.Setenv("SOLIBORED_DATA_DIR", t.TempDir())

	s, out := run(t, "remove d4", "remove f5", "save")
	if !strings.Contains(out, "position saved") {
		t.Fatalf("save did not confirm:\n%s", out)
	}

	loaded, out := run(t, "load")
	if !strings.Contains(out, "position loaded") {
		t.Fatalf("load did not confirm:\n%s", out)
	}
	if loaded.board != s.board {
		t.Errorf("loaded board differs:\ngot\n%swant\n%s", loaded.board.String(), s.board.String())
	}
	if loaded.removals != 2 {
		t.Errorf("loaded removals = %d, want 2", loaded.removals)
	}
}

func TestWriteBoard(t *testing.T) {
	color.NoColor = true

	b := board.New()
	var out bytes.Buffer
	writeBoard(&out, &b)

	lines := strings.Split(out.String(), "\n")
	if len(lines) < 9 {
		t.Fatalf("unexpected render:\n%s", out.String())
	}
	// Rank 4 row: a-file blank, files b-h playable, centre e4 empty.
	if lines[4] != "4   o o o . o o o " {
		t.Errorf("rank 4 row = %q", lines[4])
	}
	// Rank 8 is entirely outside the playing surface.
	if strings.ContainsAny(lines[0], "o.") {
		t.Errorf("rank 8 row should be blank cells: %q", lines[0])
	}
}
