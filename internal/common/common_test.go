package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstLast(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = Last([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = First([]int(nil))
	assert.False(t, ok)
	_, ok = Last([]int{})
	assert.False(t, ok)
}

func TestAt(t *testing.T) {
	s := []string{"x", "y"}
	assert.Equal(t, "y", At(s, 1))
	assert.Equal(t, "", At(s, 2))
	assert.Equal(t, "", At(s, -1))
}

func TestFirstNonZero(t *testing.T) {
	v, ok := FirstNonZero([]string{"", "", "Math", "Art"})
	assert.True(t, ok)
	assert.Equal(t, "Math", v)

	_, ok = FirstNonZero([]string{"", ""})
	assert.False(t, ok)
}

func TestCollapseSpace(t *testing.T) {
	assert.Equal(t, "Каб. 12", CollapseSpace("  Каб. \n 12 "))
	assert.Equal(t, "a b", CollapseSpace("a\u00a0\u00a0b"))
	assert.Equal(t, "", CollapseSpace("\u00a0"))
}
