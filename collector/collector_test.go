package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	var c First[int]
	c.Collect(1)
	c.Collect(2)
	c.Collect(3)

	assert.Equal(t, Optional[int]{Value: 1, Valid: true}, c.Result())
}

func TestLast(t *testing.T) {
	var c Last[int]
	c.Collect(1)
	c.Collect(2)
	c.Collect(3)

	assert.Equal(t, Optional[int]{Value: 3, Valid: true}, c.Result())
}

func TestMinimum(t *testing.T) {
	var c Minimum[int]
	c.Collect(3)
	c.Collect(1)
	c.Collect(2)

	assert.Equal(t, Optional[int]{Value: 1, Valid: true}, c.Result())
}

func TestMaximum(t *testing.T) {
	var c Maximum[int]
	c.Collect(3)
	c.Collect(1)
	c.Collect(2)

	assert.Equal(t, Optional[int]{Value: 3, Valid: true}, c.Result())
}

func TestRange(t *testing.T) {
	var c Range[int]
	c.Collect(1)
	c.Collect(2)
	c.Collect(3)

	assert.Equal(t, []int{1, 2, 3}, c.Result())
}

func TestDefault(t *testing.T) {
	var c Default[int]
	c.Collect(1)
	c.Collect(2)
	c.Collect(3)

	assert.Equal(t, Optional[int]{Value: 3, Valid: true}, c.Result())
}

func TestEmptyCollectorsReportInvalid(t *testing.T) {
	var first First[int]
	var last Last[int]
	var min Minimum[int]
	var max Maximum[int]
	var rng Range[int]
	var def Default[int]

	assert.False(t, first.Result().Valid)
	assert.False(t, last.Result().Valid)
	assert.False(t, min.Result().Valid)
	assert.False(t, max.Result().Valid)
	assert.Empty(t, rng.Result())
	assert.False(t, def.Result().Valid)
}
