package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_SpansBothLocations(t *testing.T) {
	a := Location{Start: Position{Offset: 5}, End: Position{Offset: 10}}
	b := Location{Start: Position{Offset: 2}, End: Position{Offset: 8}}
	merged := Merge(a, b)
	assert.Equal(t, 2, merged.Start.Offset)
	assert.Equal(t, 10, merged.End.Offset)
}

func TestMerge_PrefersFirstSource(t *testing.T) {
	a := Location{Source: "a.php"}
	b := Location{Source: "b.php"}
	assert.Equal(t, "a.php", Merge(a, b).Source)
	assert.Equal(t, "b.php", Merge(Location{}, b).Source)
}

func TestPosition_Less(t *testing.T) {
	a := Position{Offset: 1}
	b := Position{Offset: 2}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestPosition_String(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	assert.Equal(t, "line 3, column 7", p.String())
}
