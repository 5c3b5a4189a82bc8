package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ericogr/mythic-arena/internal/battle"
)

// fixedBalance disables every random branch so damage is exact.
func fixedBalance() Balance {
	b := DefaultBalance()
	b.DodgeMin, b.DodgeMax = 0, 0
	b.DamageVariance = 0
	b.CritChance = 0
	b.SpecialChance = 0
	return b
}

func fighter(id, name string, maxHP, attack, defense, speed int) battle.Fighter {
	return battle.Fighter{
		Combatant: battle.Combatant{ID: id, Name: name, Kind: battle.KindCharacter, Archetype: "hero", SpecialAbility: name + "'s Fury"},
		Stats:     battle.CombatStats{MaxHP: maxHP, HP: maxHP, Attack: attack, Defense: defense, Speed: speed},
	}
}

func TestDodgeChance_Clamped(t *testing.T) {
	bal := DefaultBalance()
	assert.InDelta(t, 0.10, dodgeChance(bal, 10, 10), 1e-9)
	assert.InDelta(t, 0.15, dodgeChance(bal, 10, 15), 1e-9)
	assert.InDelta(t, 0.35, dodgeChance(bal, 1, 100), 1e-9)
	assert.InDelta(t, 0.05, dodgeChance(bal, 100, 1), 1e-9)
}

func TestResolveExchange_Dodge(t *testing.T) {
	bal := fixedBalance()
	bal.DodgeMin, bal.DodgeMax = 1, 1
	a := fighter("1", "Achilles", 100, 30, 5, 10)
	d := fighter("2", "Hector", 100, 20, 5, 10)

	act := ResolveExchange(NewRNG(1), bal, 3, a, d)
	assert.Equal(t, battle.ActionDodge, act.ActionType)
	assert.Equal(t, 0, act.Damage)
	assert.Equal(t, 100, act.DefenderHP)
	assert.Equal(t, 3, act.Round)
	assert.Contains(t, act.Description, "Hector dodges")
}

func TestResolveExchange_NormalDamage(t *testing.T) {
	a := fighter("1", "Achilles", 100, 20, 0, 10)
	d := fighter("2", "Hector", 100, 0, 10, 10)

	act := ResolveExchange(NewRNG(1), fixedBalance(), 1, a, d)
	require.Equal(t, battle.ActionNormal, act.ActionType)
	// 20 - floor(10*0.5)
	assert.Equal(t, 15, act.Damage)
	assert.Equal(t, 85, act.DefenderHP)
	assert.Equal(t, "Achilles strikes Hector for 15 damage.", act.Description)
}

func TestResolveExchange_MinimumDamage(t *testing.T) {
	a := fighter("1", "Pebble", 10, 0, 0, 1)
	d := fighter("2", "Wall", 10, 0, 500, 1)

	act := ResolveExchange(NewRNG(5), fixedBalance(), 1, a, d)
	assert.Equal(t, 1, act.Damage)
	assert.Equal(t, 9, act.DefenderHP)
}

func TestResolveExchange_CriticalBeforeSpecial(t *testing.T) {
	bal := fixedBalance()
	bal.CritChance = 1
	bal.SpecialChance = 1
	a := fighter("1", "Thor", 100, 20, 0, 10)
	d := fighter("2", "Jormungandr", 100, 0, 10, 10)

	act := ResolveExchange(NewRNG(1), bal, 1, a, d)
	assert.Equal(t, battle.ActionCritical, act.ActionType)
	assert.Equal(t, 30, act.Damage)
	assert.Equal(t, "Thor lands a critical hit on Jormungandr for 30 damage!", act.Description)
}

func TestResolveExchange_SpecialNamesAbility(t *testing.T) {
	bal := fixedBalance()
	bal.SpecialChance = 1
	a := fighter("1", "Thor", 100, 20, 0, 10)
	a.SpecialAbility = "Mjolnir Throw"
	d := fighter("2", "Jormungandr", 100, 0, 10, 10)

	act := ResolveExchange(NewRNG(1), bal, 1, a, d)
	assert.Equal(t, battle.ActionSpecial, act.ActionType)
	// 15 * 1.5 = 22.5 rounds to 23
	assert.Equal(t, 23, act.Damage)
	assert.True(t, strings.Contains(act.Description, "Mjolnir Throw"), act.Description)
}

func TestResolveExchange_DefeatIsDescribed(t *testing.T) {
	a := fighter("1", "Perseus", 100, 50, 0, 10)
	d := fighter("2", "Medusa", 10, 0, 0, 10)

	act := ResolveExchange(NewRNG(1), fixedBalance(), 1, a, d)
	assert.Equal(t, 0, act.DefenderHP)
	assert.True(t, strings.HasSuffix(act.Description, "Medusa is defeated!"), act.Description)
}

func TestResolveExchange_Property_DamageInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := fighter("1", "A",
			rapid.IntRange(1, 300).Draw(rt, "a_hp"),
			rapid.IntRange(0, 80).Draw(rt, "a_atk"),
			rapid.IntRange(0, 80).Draw(rt, "a_def"),
			rapid.IntRange(0, 40).Draw(rt, "a_spd"))
		d := fighter("2", "D",
			rapid.IntRange(1, 300).Draw(rt, "d_hp"),
			rapid.IntRange(0, 80).Draw(rt, "d_atk"),
			rapid.IntRange(0, 80).Draw(rt, "d_def"),
			rapid.IntRange(0, 40).Draw(rt, "d_spd"))
		rng := NewRNG(rapid.Int64().Draw(rt, "seed"))

		act := ResolveExchange(rng, DefaultBalance(), 1, a, d)
		if act.ActionType == battle.ActionDodge {
			assert.Equal(rt, 0, act.Damage)
			assert.Equal(rt, d.Stats.HP, act.DefenderHP)
		} else {
			assert.GreaterOrEqual(rt, act.Damage, 1)
		}
		assert.GreaterOrEqual(rt, act.DefenderHP, 0)
		assert.LessOrEqual(rt, act.DefenderHP, d.Stats.MaxHP)
	})
}
