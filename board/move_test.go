package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoveSkipsI(t *testing.T) {
	// Point (8,0) on a 19x19 board is column index 8, which should render
	// as 'J' (the 9th letter counting A-H then skipping I), not 'I'.
	assert.Equal(t, "J19", FormatMove(Move(8), 19))
}

func TestFormatMovePassResign(t *testing.T) {
	assert.Equal(t, "pass", FormatMove(Pass, 19))
	assert.Equal(t, "resign", FormatMove(Resign, 19))
}

func TestParseMoveRoundTrips(t *testing.T) {
	for _, pt := range []Move{0, 8, 42, 180} {
		s := FormatMove(pt, 19)
		got, ok := ParseMove(s, 19)
		assert.True(t, ok)
		assert.Equal(t, pt, got)
	}
}

func TestParseMovePassResignCaseInsensitive(t *testing.T) {
	m, ok := ParseMove("PASS", 9)
	assert.True(t, ok)
	assert.Equal(t, Pass, m)

	m, ok = ParseMove("Resign", 9)
	assert.True(t, ok)
	assert.Equal(t, Resign, m)
}

func TestParseMoveRejectsOutOfRange(t *testing.T) {
	_, ok := ParseMove("T19", 9)
	assert.False(t, ok)

	_, ok = ParseMove("A99", 9)
	assert.False(t, ok)
}
