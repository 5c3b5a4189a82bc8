package engine

import "github.com/ericogr/mythic-arena/internal/battle"

// Modifiers is the outcome of applying battle type rules to two fighters.
type Modifiers struct {
	// FirstStrike grants combatant 1 an unanswered opening action.
	FirstStrike bool
}

// ApplyModifiers adjusts a and b for the battle type before the round loop
// starts. It is applied exactly once per battle.
func ApplyModifiers(a, b battle.Fighter, t battle.Type, bal Balance) (battle.Fighter, battle.Fighter, Modifiers) {
	var mods Modifiers
	switch t {
	case battle.TypeDivineContest:
		a = divineBoost(a, bal.DivineMultiplier)
		b = divineBoost(b, bal.DivineMultiplier)
	case battle.TypeAmbush:
		mods.FirstStrike = true
	}
	return a, b, mods
}

func isTopTier(f battle.Fighter) bool {
	return f.Kind == battle.KindCharacter && NormalizeArchetype(f.Archetype) == TopCharacterTier
}

func divineBoost(f battle.Fighter, mult float64) battle.Fighter {
	if !isTopTier(f) {
		return f
	}
	f.Stats.MaxHP = scale(f.Stats.MaxHP, mult)
	f.Stats.Attack = scale(f.Stats.Attack, mult)
	f.Stats.Defense = scale(f.Stats.Defense, mult)
	f.Stats.Speed = scale(f.Stats.Speed, mult)
	f.Stats.HP = f.Stats.MaxHP
	return f
}
