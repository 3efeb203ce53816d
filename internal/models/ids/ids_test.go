package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter_StrictlyIncreasingFromOne(t *testing.T) {
	c := NewCounter("widget")

	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Next())
	assert.Equal(t, 3, c.Next())
	assert.Equal(t, 3, c.Last())
}

func TestResetAll(t *testing.T) {
	a := NewCounter("a")
	b := NewCounter("b")
	a.Next()
	a.Next()
	b.Next()

	ResetAll()

	assert.Equal(t, 0, a.Last())
	assert.Equal(t, 0, b.Last())
	assert.Equal(t, 1, a.Next(), "Expected ids to restart at 1 after reset")
}

func TestSnapshot(t *testing.T) {
	c := NewCounter("snap")
	c.Next()

	snap := Snapshot()
	assert.Equal(t, 1, snap["snap"])
}
