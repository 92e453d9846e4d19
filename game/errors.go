package game

import "errors"

// Registry errors
var (
	ErrInvalidCount    = errors.New("territory count must be positive")
	ErrAllocation      = errors.New("cannot allocate territories")
	ErrIndexOutOfRange = errors.New("territory index out of range")
	ErrNegativeTroops  = errors.New("troop count cannot be negative")
	ErrRegistryClosed  = errors.New("registry already closed")
)

// Attack errors
var (
	ErrSelfAttack         = errors.New("territory cannot attack itself")
	ErrSameFaction        = errors.New("cannot attack own faction")
	ErrInsufficientTroops = errors.New("attacker needs more than 1 troop")
)
