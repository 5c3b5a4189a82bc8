package engine

import "github.com/ericogr/mythic-arena/internal/battle"

// battleContext is the mutable state of one battle. It never escapes
// Simulate, so it needs no locking.
type battleContext struct {
	rng      *RNG
	bal      Balance
	fighters [2]battle.Fighter
	log      []battle.CombatAction
	round    int
}

func newBattleContext(rng *RNG, bal Balance, a, b battle.Fighter) *battleContext {
	return &battleContext{
		rng:      rng,
		bal:      bal,
		fighters: [2]battle.Fighter{a, b},
		log:      make([]battle.CombatAction, 0, bal.RoundCap),
	}
}

func (bc *battleContext) add(a battle.CombatAction) { bc.log = append(bc.log, a) }

// knockedOut reports whether either side has no HP left.
func (bc *battleContext) knockedOut() bool {
	return bc.fighters[0].Stats.HP == 0 || bc.fighters[1].Stats.HP == 0
}

// exchange plays the next round with fighter idx attacking.
func (bc *battleContext) exchange(idx int) {
	bc.round++
	attacker, defender := &bc.fighters[idx], &bc.fighters[1-idx]
	action := ResolveExchange(bc.rng, bc.bal, bc.round, *attacker, *defender)
	defender.Stats.HP = action.DefenderHP
	bc.add(action)
}
