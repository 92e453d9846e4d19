package game

type StandardRules struct {
	Sides     int
	MinAttack int
}

// NewStandardRules returns the single-die contest: one d6 each, ties to the defender.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		Sides:     6,
		MinAttack: 2,
	}
}

func (sr *StandardRules) DieSides() int {
	return sr.Sides
}

func (sr *StandardRules) MinAttackTroops() int {
	return sr.MinAttack
}

func (sr *StandardRules) AttackerWins(attackerRoll, defenderRoll int) bool {
	// Ties go to the defender
	return attackerRoll > defenderRoll
}

// ConquestTransfer moves half of the attacking troops, at least one.
func (sr *StandardRules) ConquestTransfer(attackerTroops int) int {
	transfer := attackerTroops / 2
	if transfer <= 0 {
		transfer = 1
	}
	return transfer
}

func (sr *StandardRules) RepelLoss() int {
	return 1
}
