package perr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/phpfront/position"
)

func TestList_FirstReturnsEarliestError(t *testing.T) {
	var l List
	assert.False(t, l.HasErrors())
	assert.Nil(t, l.First())

	e1 := NewSyntaxError("first problem", position.Location{}, nil)
	e2 := NewSyntaxError("second problem", position.Location{}, nil)
	l.Add(e1)
	l.Add(e2)

	assert.True(t, l.HasErrors())
	require.Same(t, e1, l.First())
}

func TestError_CarriesUniqueID(t *testing.T) {
	e1 := NewSyntaxError("a", position.Location{}, nil)
	e2 := NewSyntaxError("b", position.Location{}, nil)
	assert.NotEqual(t, e1.ID, e2.ID)
}

func TestResult_OkAndErr(t *testing.T) {
	ok := Ok(42)
	assert.True(t, ok.IsOk())
	assert.Equal(t, 42, ok.Value)

	bad := Err[int](NewSyntaxError("boom", position.Location{}, nil))
	assert.False(t, bad.IsOk())
	assert.Equal(t, "boom", bad.Err.Message)
}

func TestList_ErrorJoinsMessages(t *testing.T) {
	var l List
	l.Add(NewSyntaxError("one", position.Location{}, nil))
	l.Add(NewSyntaxError("two", position.Location{}, nil))
	joined := l.Error()
	assert.Contains(t, joined, "one")
	assert.Contains(t, joined, "two")
}
