package voxel

import "golang.org/x/exp/constraints"

// ClampSignal floors v at 0 and ceils it at 15, the range every redstone
// signal strength is expressed in (spec §3). Generic over any integer type
// so callers doing decay or weighting arithmetic in a wider type (to avoid
// uint8 underflow) can convert back to the wire representation in one call.
func ClampSignal[T constraints.Integer](v T) uint8 {
	if v < 0 {
		return 0
	}
	if v > 15 {
		return 15
	}
	return uint8(v)
}
