package game

import "fmt"

// MaxTerritories is the largest registry the game will allocate.
const MaxTerritories = 1 << 16

// Territory is one map region under a single faction.
type Territory struct {
	Name    string // Immutable once populated
	Faction string // Owning army, changes on conquest
	Troops  int    // Never negative
}

func (t Territory) String() string {
	return fmt.Sprintf("%s | Faction: %s | Troops: %d", t.Name, t.Faction, t.Troops)
}

// Registry is the fixed-size, ordered collection of territories for a session.
type Registry struct {
	territories []Territory
	closed      bool
}

// NewRegistry allocates count zero-valued territories.
func NewRegistry(count int) (*Registry, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if count > MaxTerritories {
		return nil, fmt.Errorf("%w: %d territories requested, limit is %d", ErrAllocation, count, MaxTerritories)
	}
	return &Registry{
		territories: make([]Territory, count),
	}, nil
}

// Len returns the number of territories, fixed at creation.
func (r *Registry) Len() int {
	r.mustBeOpen()
	return len(r.territories)
}

// Populate sets the fields of the territory at index.
func (r *Registry) Populate(index int, name, faction string, troops int) error {
	r.mustBeOpen()
	if !r.inRange(index) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if troops < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTroops, troops)
	}
	r.territories[index] = Territory{
		Name:    name,
		Faction: faction,
		Troops:  troops,
	}
	return nil
}

// Get returns a mutable handle to the territory at index.
// Callers validate index first; an out of range index panics.
func (r *Registry) Get(index int) *Territory {
	r.mustBeOpen()
	if !r.inRange(index) {
		panic(fmt.Sprintf("territory index %d out of range [0, %d)", index, len(r.territories)))
	}
	return &r.territories[index]
}

// Pair borrows two distinct territories for the duration of one attack.
func (r *Registry) Pair(attacker, defender int) (*Territory, *Territory, error) {
	r.mustBeOpen()
	if !r.inRange(attacker) {
		return nil, nil, fmt.Errorf("attacker %w: %d", ErrIndexOutOfRange, attacker)
	}
	if !r.inRange(defender) {
		return nil, nil, fmt.Errorf("defender %w: %d", ErrIndexOutOfRange, defender)
	}
	if attacker == defender {
		return nil, nil, ErrSelfAttack
	}
	return &r.territories[attacker], &r.territories[defender], nil
}

// Territories returns a copy of every territory in order, for display.
func (r *Registry) Territories() []Territory {
	r.mustBeOpen()
	snapshot := make([]Territory, len(r.territories))
	copy(snapshot, r.territories)
	return snapshot
}

// Close releases the territories. The registry is unusable afterwards.
func (r *Registry) Close() error {
	if r.closed {
		return ErrRegistryClosed
	}
	r.territories = nil
	r.closed = true
	return nil
}

func (r *Registry) inRange(index int) bool {
	return index >= 0 && index < len(r.territories)
}

func (r *Registry) mustBeOpen() {
	if r.closed {
		panic("registry used after Close")
	}
}
