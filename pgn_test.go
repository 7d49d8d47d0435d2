package chess

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPGNOutput(t *testing.T) {
	g := NewGame()
	g.SetHeader("Event", "Casual Game")
	g.SetHeader("Site", "Internet")
	for _, san := range []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"} {
		if _, err := g.Move(SANMove(san)); err != nil {
			t.Fatal(err)
		}
	}
	want := "[Event \"Casual Game\"]\n" +
		"[Site \"Internet\"]\n" +
		"\n" +
		"1. e4 e5 2. Nf3 Nc6 3. Bb5 a6\n"
	if diff := cmp.Diff(want, g.PGN()); diff != "" {
		t.Fatalf("PGN mismatch (-want +got):\n%s", diff)
	}
}

func TestPGNCommentsInline(t *testing.T) {
	g := NewGame()
	g.SetComment("game starts")
	if _, err := g.Move(SANMove("e4")); err != nil {
		t.Fatal(err)
	}
	g.SetComment("king's pawn")
	want := "{game starts} 1. e4 {king's pawn}\n"
	if diff := cmp.Diff(want, g.PGN()); diff != "" {
		t.Fatalf("PGN mismatch (-want +got):\n%s", diff)
	}
}

func TestPGNMaxWidth(t *testing.T) {
	g := NewGame()
	for _, san := range []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "Ba4", "Nf6"} {
		if _, err := g.Move(SANMove(san)); err != nil {
			t.Fatal(err)
		}
	}
	const width = 12
	out := g.PGN(WithMaxWidth(width))
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if len(line) > width {
			t.Fatalf("line %q exceeds width %d", line, width)
		}
	}
}

func TestPGNRoundTrip(t *testing.T) {
	g := NewGame()
	g.SetHeader("Event", "Round Trip")
	for _, san := range []string{"d4", "d5", "c4", "e6", "Nc3", "Nf6"} {
		if _, err := g.Move(SANMove(san)); err != nil {
			t.Fatal(err)
		}
	}
	g.SetComment("main line")

	loaded := NewGame()
	if err := loaded.LoadPGN(g.PGN()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(g.FEN(), loaded.FEN()); diff != "" {
		t.Fatalf("FEN mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(g.History(), loaded.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(g.PGN(), loaded.PGN()); diff != "" {
		t.Fatalf("PGN mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPGNHeaders(t *testing.T) {
	pgn := "[Event \"F/S Return Match\"]\n" +
		"[Site \"Belgrade, Serbia JUG\"]\n" +
		"[Result \"1/2-1/2\"]\n" +
		"\n" +
		"1. e4 e5 2. Nf3 1/2-1/2\n"
	g := NewGame()
	if err := g.LoadPGN(pgn); err != nil {
		t.Fatal(err)
	}
	want := []TagPair{
		{Key: "Event", Value: "F/S Return Match"},
		{Key: "Site", Value: "Belgrade, Serbia JUG"},
		{Key: "Result", Value: "1/2-1/2"},
	}
	if diff := cmp.Diff(want, g.Headers()); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
	if len(g.History()) != 3 {
		t.Fatalf("expected 3 moves but got %d", len(g.History()))
	}
}

func TestLoadPGNSetUpPosition(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/R3K3 w - - 0 1"
	pgn := "[SetUp \"1\"]\n[FEN \"" + fen + "\"]\n\n1. Ra8+ Kf7\n"
	g := NewGame()
	if err := g.LoadPGN(pgn); err != nil {
		t.Fatal(err)
	}
	if got := g.History(); len(got) != 2 || got[0] != "Ra8+" {
		t.Fatalf("unexpected history %v", got)
	}
}

func TestLoadPGNSkipsVariationsAndNAGs(t *testing.T) {
	pgn := "1. e4 $1 (1. d4 d5 (1... Nf6)) e5 ; best by test\n2. Nf3 Nc6\n"
	g := NewGame()
	if err := g.LoadPGN(pgn); err != nil {
		t.Fatal(err)
	}
	want := []string{"e4", "e5", "Nf3", "Nc6"}
	if diff := cmp.Diff(want, g.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPGNBadMoveLeavesGameUnchanged(t *testing.T) {
	g := NewGame()
	if _, err := g.Move(SANMove("d4")); err != nil {
		t.Fatal(err)
	}
	before := g.FEN()

	err := g.LoadPGN("1. e4 e5 2. Qxf8 e4\n")
	if err == nil {
		t.Fatal("expected error for illegal move")
	}
	if !strings.Contains(err.Error(), "Qxf8") {
		t.Fatalf("expected offending token in error, got %v", err)
	}
	if g.FEN() != before {
		t.Fatal("failed load must leave the game unchanged")
	}
}

func TestLoadPGNGluedMoveNumbers(t *testing.T) {
	g := NewGame()
	if err := g.LoadPGN("1.e4 e5 2.Nf3 Nc6\n"); err != nil {
		t.Fatal(err)
	}
	want := []string{"e4", "e5", "Nf3", "Nc6"}
	if diff := cmp.Diff(want, g.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}

	// black continuation glued to its number
	g = NewGame()
	if err := g.LoadPGN("1.e4 1...e5\n"); err != nil {
		t.Fatal(err)
	}
	if len(g.History()) != 2 {
		t.Fatalf("expected 2 moves but got %v", g.History())
	}

	if err := NewGame().LoadPGN("1.e4 e5\n", StrictPGN()); err == nil {
		t.Fatal("expected strict parse to reject glued move numbers")
	}
}

func TestLoadPGNStrictMoveNumbers(t *testing.T) {
	g := NewGame()
	if err := g.LoadPGN("3. e4 e5\n", StrictPGN()); err == nil {
		t.Fatal("expected error for move number out of sequence")
	}
	if err := g.LoadPGN("3. e4 e5\n"); err != nil {
		t.Fatalf("lenient parse should ignore move numbers: %v", err)
	}
}

func TestLoadPGNNewlinePattern(t *testing.T) {
	pgn := "[Event \"Test\"]|1. e4 e5|"
	g := NewGame()
	if err := g.LoadPGN(pgn, WithNewlinePattern(`\|`)); err != nil {
		t.Fatal(err)
	}
	if g.Header("Event") != "Test" {
		t.Fatalf("expected Event header, got %q", g.Header("Event"))
	}
	if len(g.History()) != 2 {
		t.Fatalf("expected 2 moves but got %d", len(g.History()))
	}
}

func TestHeaderOperations(t *testing.T) {
	g := NewGame()
	g.SetHeader("White", "Fischer")
	g.SetHeader("Black", "Spassky")
	g.SetHeader("White", "Fischer, Robert J.")
	want := []TagPair{
		{Key: "White", Value: "Fischer, Robert J."},
		{Key: "Black", Value: "Spassky"},
	}
	if diff := cmp.Diff(want, g.Headers()); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
	if !g.RemoveHeader("White") {
		t.Fatal("expected White header removed")
	}
	if g.RemoveHeader("White") {
		t.Fatal("expected second removal to report absence")
	}
	if g.Header("Black") != "Spassky" {
		t.Fatalf("expected Black header intact, got %q", g.Header("Black"))
	}
}

func TestCommentOperations(t *testing.T) {
	g := NewGame()
	if _, err := g.Move(SANMove("e4")); err != nil {
		t.Fatal(err)
	}
	g.SetComment("a {braced} remark")
	if got := g.Comment(); got != "a [braced] remark" {
		t.Fatalf("expected braces replaced, got %q", got)
	}

	if _, err := g.Move(SANMove("e5")); err != nil {
		t.Fatal(err)
	}
	g.SetComment("second")
	comments := g.Comments()
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments but got %v", comments)
	}
	if comments[0].Comment != "a [braced] remark" || comments[1].Comment != "second" {
		t.Fatalf("unexpected comment order %v", comments)
	}

	deleted := g.DeleteComments()
	if len(deleted) != 2 {
		t.Fatalf("expected 2 deleted comments but got %v", deleted)
	}
	if len(g.Comments()) != 0 {
		t.Fatal("expected no comments after deletion")
	}
}
