package share

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams(t *testing.T) {
	var p Params
	assert.Equal(t, 0, p.Len())

	p.Set("b", "1")
	p.Set("a", "2")
	p.Set("b", "3")
	assert.Equal(t, []string{"b", "a"}, p.Keys())
	v, ok := p.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	_, ok = p.Get("missing")
	assert.False(t, ok)

	keys := p.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"b", "a"}, p.Keys())
}

func TestParamsClone(t *testing.T) {
	p := NewParams("a", "1")
	c := p.Clone()
	c.Set("a", "2")
	c.Set("b", "3")

	v, _ := p.Get("a")
	assert.Equal(t, "1", v)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 2, c.Len())

	var nilParams *Params
	assert.Equal(t, 0, nilParams.Clone().Len())
	assert.Nil(t, nilParams.Keys())
}

func TestNewParamsOddArguments(t *testing.T) {
	p := NewParams("a", "1", "b")
	v, ok := p.Get("b")
	assert.True(t, ok)
	assert.Empty(t, v)
}
