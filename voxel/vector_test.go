package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorKeysAreDistinct(t *testing.T) {
	vs := []Vector{
		Vec(0, 0, 0),
		Vec(1, -1, 2),
		Vec(-500, 300, -17),
		Vec(axisMax, axisMin, 0),
	}
	seen := map[int64]Vector{}
	for _, v := range vs {
		k := v.Key()
		if other, ok := seen[k]; ok {
			t.Fatalf("key collision between %v and %v", v, other)
		}
		seen[k] = v
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := Vec(1, 2, 3)
	b := Vec(4, -1, 2)
	assert.Equal(t, Vec(5, 1, 5), a.Add(b))
	assert.Equal(t, Vec(-3, 3, 1), a.Sub(b))
	assert.Equal(t, Vec(-1, -2, -3), a.Neg())
	assert.Equal(t, 1*4+2*-1+3*2, a.Dot(b))
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range AllDirections {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
	}
}

func TestHorizontalPerpendiculars(t *testing.T) {
	perp := PosX.Perpendiculars()
	assert.ElementsMatch(t, []Direction{PosZ, NegZ}, perp[:])
	assert.Panics(t, func() { PosY.Perpendiculars() })
}

func TestNeighboursCoversAllDirections(t *testing.T) {
	v := Vec(0, 0, 0)
	ns := v.Neighbours()
	for i, d := range AllDirections {
		assert.Equal(t, v.Side(d), ns[i])
	}
}
