package sim

import "errors"

// Sentinel errors returned by the engine's external interface (spec §6, §7
// Recoverable errors). Internal invariant violations panic instead (spec
// §7.4). Together with grid.ErrOccupied, which Place returns wrapped for an
// occupied cell, these are the errors callers are expected to handle.
var (
	ErrNoBlockAt       = errors.New("sim: no block at position")
	ErrNotInteractable = errors.New("sim: block does not support interact")
	ErrNotPlate        = errors.New("sim: block is not a pressure plate")
	ErrAlreadyPressed  = errors.New("sim: button is already pressed")
)
