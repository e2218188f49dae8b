package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// Square parses an algebraic square, failing the test on malformed input.
func Square(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// Names returns the algebraic names of sqs, sorted, so square sets can be
// compared with AssertEqual regardless of generation order.
func Names(sqs []chess.Square) []string {
	names := make([]string, 0, len(sqs))
	for _, sq := range sqs {
		names = append(names, sq.String())
	}
	sort.Strings(names)
	return names
}

// SplitNames turns "e3 e4" into a sorted []string{"e3", "e4"}. An empty
// string yields an empty, non-nil slice to match Names.
func SplitNames(list string) []string {
	names := strings.Fields(list)
	if names == nil {
		names = []string{}
	}
	sort.Strings(names)
	return names
}
