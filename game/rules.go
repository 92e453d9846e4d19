package game

// Rules parameterizes the dice contest used to resolve an attack.
type Rules interface {
	DieSides() int
	MinAttackTroops() int
	AttackerWins(attackerRoll, defenderRoll int) bool
	ConquestTransfer(attackerTroops int) int
	RepelLoss() int
}
