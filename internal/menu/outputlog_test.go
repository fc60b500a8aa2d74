package menu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputLogKeepsMostRecentLines(t *testing.T) {
	log := NewOutputLog(3)
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(log, "line %d\n", i)
	}
	assert.Equal(t, []string{"line 3", "line 4", "line 5"}, log.Lines())
	assert.Equal(t, 3, log.Len())
	assert.Equal(t, 5, log.Total())
}

func TestOutputLogPartialLines(t *testing.T) {
	log := NewOutputLog(5)
	fmt.Fprint(log, "par")
	assert.Equal(t, []string{"par"}, log.Lines())
	fmt.Fprint(log, "tial\r\nnext\n")
	assert.Equal(t, []string{"partial", "next"}, log.Lines())
	assert.Equal(t, "partial\nnext", log.String())
}

func TestOutputLogDefaultsAndReset(t *testing.T) {
	log := NewOutputLog(0)
	assert.Equal(t, DefaultLogLines, log.Cap())
	fmt.Fprintln(log, "x")
	log.Reset()
	assert.Empty(t, log.Lines())
	assert.Equal(t, 0, log.Total())
}
