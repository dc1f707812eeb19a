// Package voxel provides the integer coordinate system the redstone kernel
// operates on: positions, axis-aligned directions and the packed keys the
// sparse grid indexes blocks by.
package voxel

import "github.com/go-gl/mathgl/mgl64"

// axisBits is the number of bits reserved per axis when a Vector is packed
// into a 64-bit key (see Vector.Key). 21 bits per axis leaves the sign bit
// free and keeps the three axes within a single int64, per the kernel's
// sparse-grid design note.
const axisBits = 21

const (
	axisMax = 1<<(axisBits-1) - 1
	axisMin = -1 << (axisBits - 1)
)

// Vector is an integer 3D position with no bounds beyond what can be packed
// into a Key (±2^20 per axis, far beyond any practical circuit).
type Vector struct {
	X, Y, Z int
}

// Vec is a convenience constructor.
func Vec(x, y, z int) Vector { return Vector{X: x, Y: y, Z: z} }

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference v - o.
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Neg returns the negation of v.
func (v Vector) Neg() Vector { return Vector{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) int { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Side returns the position adjacent to v in direction d.
func (v Vector) Side(d Direction) Vector { return v.Add(d.Vector()) }

// Neighbours returns the six axis-adjacent positions, in the canonical
// direction order (see AllDirections).
func (v Vector) Neighbours() [6]Vector {
	var out [6]Vector
	for i, d := range AllDirections {
		out[i] = v.Side(d)
	}
	return out
}

// Key returns a canonical packed int64 suitable for use as a dense hash-map
// key (e.g. in an intintmap-backed index). Equal vectors always produce
// equal keys and vice versa, within the representable range.
func (v Vector) Key() int64 {
	return int64(pack(v.X))<<(2*axisBits) | int64(pack(v.Y))<<axisBits | int64(pack(v.Z))
}

func pack(c int) uint64 {
	if c > axisMax || c < axisMin {
		panic("voxel: coordinate out of packable range")
	}
	return uint64(c) & (1<<axisBits - 1)
}

// String returns a stable textual form "x,y,z", used where a packed int64
// isn't readable (e.g. positions formatted with %v in error messages and
// CLI output).
func (v Vector) String() string {
	return itoa(v.X) + "," + itoa(v.Y) + "," + itoa(v.Z)
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Vec3 converts v to a float64 3-vector at the block's minimum corner, for
// consumption by the (out-of-scope) interactive renderer.
func (v Vector) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Centre returns the float64 centre point of the block at v, mirroring the
// teacher's pos.Vec3Centre() convention used for sound/particle placement.
func (v Vector) Centre() mgl64.Vec3 {
	return v.Vec3().Add(mgl64.Vec3{0.5, 0.5, 0.5})
}
