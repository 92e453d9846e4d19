package engine

import (
	"fmt"
	"io"
	"text/tabwriter"

	"war/game"
)

func printTerritories(out io.Writer, territories []game.Territory) {
	fmt.Fprintln(out, "\n=====================================")
	fmt.Fprintln(out, "           TERRITORY DATA")
	fmt.Fprintln(out, "=====================================")

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tFACTION\tTROOPS")
	for i, t := range territories {
		fmt.Fprintf(w, "[%d]\t%s\t%s\t%d\n", i+1, t.Name, t.Faction, t.Troops)
	}
	w.Flush()
	fmt.Fprintln(out)
}

// printBattle reports an attack using the territories as they were before it.
func printBattle(out io.Writer, attacker, defender game.Territory, outcome game.Outcome) {
	fmt.Fprintf(out, "\n--- Attack: '%s' (Faction: %s, Troops: %d) against '%s' (Faction: %s, Troops: %d) ---\n",
		attacker.Name, attacker.Faction, attacker.Troops,
		defender.Name, defender.Faction, defender.Troops)
	fmt.Fprintf(out, "Attacker rolled: %d\n", outcome.AttackerRoll)
	fmt.Fprintf(out, "Defender rolled: %d\n", outcome.DefenderRoll)

	switch outcome.Result {
	case game.Conquered:
		fmt.Fprintln(out, "\nThe attacker won the battle!")
		fmt.Fprintf(out, "'%s' now belongs to the %s army and received %d troops.\n",
			defender.Name, outcome.NewFaction, outcome.Transfer)
		fmt.Fprintf(out, "Attacker '%s' has %d troops left.\n", attacker.Name, outcome.AttackerTroopsRemaining)
	case game.Repelled:
		fmt.Fprintln(out, "\nThe defender held off the attack!")
		lost := attacker.Troops - outcome.AttackerTroopsRemaining
		fmt.Fprintf(out, "Attacker '%s' lost %d troop(s) (now has %d).\n", attacker.Name, lost, outcome.AttackerTroopsRemaining)
	}
}

func printAftermath(out io.Writer, attackerIndex int, attacker *game.Territory, defenderIndex int, defender *game.Territory) {
	fmt.Fprintln(out, "\n--- State after the attack ---")
	fmt.Fprintf(out, "[%d] %s\n", attackerIndex, attacker)
	fmt.Fprintf(out, "[%d] %s\n\n", defenderIndex, defender)
}
