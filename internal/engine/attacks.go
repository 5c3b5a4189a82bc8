package engine

import (
	"fmt"
	"math"

	"github.com/ericogr/mythic-arena/internal/battle"
)

// dodgeChance scales with the defender's speed advantage and stays inside
// [DodgeMin, DodgeMax] so speed never guarantees an outcome.
func dodgeChance(bal Balance, attackerSpeed, defenderSpeed int) float64 {
	p := bal.DodgeBase + bal.DodgePerSpeed*float64(defenderSpeed-attackerSpeed)
	return clampFloat(p, bal.DodgeMin, bal.DodgeMax)
}

// baseDamage is attack minus a fraction of defense, before variance.
func baseDamage(bal Balance, attack, defense int) int {
	return attack - int(math.Floor(float64(defense)*bal.DefenseFactor))
}

func floorDamage(bal Balance, dmg int) int {
	if dmg < bal.MinDamage {
		return bal.MinDamage
	}
	return dmg
}

// ResolveExchange resolves one attacker->defender exchange. Rolls are drawn
// in a fixed order: dodge, variance, critical, then special (only when the
// hit was not critical). DefenderHP on the returned action is the
// defender's HP after the hit; the caller applies it.
func ResolveExchange(rng *RNG, bal Balance, round int, attacker, defender battle.Fighter) battle.CombatAction {
	action := battle.CombatAction{
		Round:        round,
		AttackerName: attacker.Name,
		DefenderName: defender.Name,
		DefenderHP:   defender.Stats.HP,
	}

	if rng.Chance(dodgeChance(bal, attacker.Stats.Speed, defender.Stats.Speed)) {
		action.ActionType = battle.ActionDodge
		action.Description = fmt.Sprintf("%s attacks %s, but %s dodges the blow!", attacker.Name, defender.Name, defender.Name)
		return action
	}

	raw := baseDamage(bal, attacker.Stats.Attack, defender.Stats.Defense)
	variance := 1 - bal.DamageVariance + 2*bal.DamageVariance*rng.Float64()
	dmg := floorDamage(bal, scale(raw, variance))

	action.ActionType = battle.ActionNormal
	switch {
	case rng.Chance(bal.CritChance):
		action.ActionType = battle.ActionCritical
		dmg = floorDamage(bal, scale(dmg, bal.CritMultiplier))
	case rng.Chance(bal.SpecialChance):
		action.ActionType = battle.ActionSpecial
		dmg = floorDamage(bal, scale(dmg, bal.SpecialMultiplier))
	}

	action.Damage = dmg
	action.DefenderHP = nonNegative(defender.Stats.HP - dmg)
	action.Description = describeHit(action, attacker)
	return action
}

func describeHit(a battle.CombatAction, attacker battle.Fighter) string {
	var s string
	switch a.ActionType {
	case battle.ActionCritical:
		s = fmt.Sprintf("%s lands a critical hit on %s for %d damage!", a.AttackerName, a.DefenderName, a.Damage)
	case battle.ActionSpecial:
		s = fmt.Sprintf("%s unleashes %s against %s for %d damage!", a.AttackerName, attacker.SpecialAbility, a.DefenderName, a.Damage)
	default:
		s = fmt.Sprintf("%s strikes %s for %d damage.", a.AttackerName, a.DefenderName, a.Damage)
	}
	if a.DefenderHP == 0 {
		s += " " + a.DefenderName + " is defeated!"
	}
	return s
}
