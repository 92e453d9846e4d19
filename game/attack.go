package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Result is the terminal state of an accepted attack.
type Result int

const (
	Repelled Result = iota
	Conquered
)

func (r Result) String() string {
	switch r {
	case Repelled:
		return "repelled"
	case Conquered:
		return "conquered"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Outcome describes one resolved attack.
type Outcome struct {
	Result                  Result
	AttackerRoll            int
	DefenderRoll            int
	Transfer                int    // Troops moved into the defender, set on Conquered
	NewFaction              string // Defender's new owner, set on Conquered
	AttackerTroopsRemaining int
}

type Option func(r *Resolver)

func WithRules(rules Rules) Option {
	return func(r *Resolver) {
		if rules != nil {
			r.rules = rules
		}
	}
}

// Resolver adjudicates attacks between territories.
type Resolver struct {
	source Source
	rules  Rules
}

func NewResolver(source Source, options ...Option) *Resolver {
	if source == nil {
		panic("resolver needs a dice source")
	}
	r := &Resolver{
		source: source,
		rules:  NewStandardRules(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Resolve performs exactly one attack from attacker on defender.
// A rejected attack returns an error and leaves both territories untouched.
func (r *Resolver) Resolve(attacker, defender *Territory) (Outcome, error) {
	if attacker.Faction == defender.Faction {
		return Outcome{}, ErrSameFaction
	}
	if attacker.Troops < r.rules.MinAttackTroops() {
		return Outcome{}, ErrInsufficientTroops
	}

	sides := r.rules.DieSides()
	attackerRoll := rollDie(r.source, sides)
	defenderRoll := rollDie(r.source, sides)

	log.Debug().
		Str("attacker", attacker.Name).
		Str("defender", defender.Name).
		Int("attacker_roll", attackerRoll).
		Int("defender_roll", defenderRoll).
		Msg("dice rolled")

	outcome := Outcome{
		AttackerRoll: attackerRoll,
		DefenderRoll: defenderRoll,
	}

	if r.rules.AttackerWins(attackerRoll, defenderRoll) {
		transfer := r.rules.ConquestTransfer(attacker.Troops)
		attacker.Troops -= transfer
		defender.Faction = attacker.Faction
		defender.Troops = transfer

		outcome.Result = Conquered
		outcome.Transfer = transfer
		outcome.NewFaction = attacker.Faction
	} else {
		attacker.Troops -= r.rules.RepelLoss()
		outcome.Result = Repelled
	}
	if attacker.Troops < 0 {
		attacker.Troops = 0
	}
	outcome.AttackerTroopsRemaining = attacker.Troops

	return outcome, nil
}
