package engine

import "github.com/ericogr/mythic-arena/internal/battle"

// aggregate packages the finished battle. start holds the post-modifier,
// pre-damage stats of both fighters.
func aggregate(bc *battleContext, start [2]battle.CombatStats, cfg battle.Config, seed int64) *battle.Result {
	f0, f1 := bc.fighters[0], bc.fighters[1]
	res := &battle.Result{
		Combatant1:     snapshot(f0, start[0]),
		Combatant2:     snapshot(f1, start[1]),
		TotalRounds:    len(bc.log),
		CombatLog:      bc.log,
		BattleType:     cfg.BattleType,
		NarrationStyle: cfg.NarrationStyle,
		Seed:           seed,
	}

	winner := -1
	switch {
	case f1.Stats.HP == 0:
		winner, res.EndReason = 0, battle.EndKnockout
	case f0.Stats.HP == 0:
		winner, res.EndReason = 1, battle.EndKnockout
	default:
		res.EndReason = battle.EndRoundCap
		winner = compareHPFraction(f0.Stats, f1.Stats)
	}
	if winner >= 0 {
		w := bc.fighters[winner]
		id, name := w.ID, w.Name
		res.Winner = battle.Winner{ID: &id, Name: &name, Kind: w.Kind}
	}
	return res
}

// compareHPFraction returns the index with the larger hp/maxHp, or -1 when
// the fractions are equal. Compared by cross-multiplication to stay exact.
func compareHPFraction(a, b battle.CombatStats) int {
	l := int64(a.HP) * int64(b.MaxHP)
	r := int64(b.HP) * int64(a.MaxHP)
	switch {
	case l > r:
		return 0
	case r > l:
		return 1
	default:
		return -1
	}
}

func snapshot(f battle.Fighter, start battle.CombatStats) battle.Snapshot {
	return battle.Snapshot{
		ID:      f.ID,
		Name:    f.Name,
		Kind:    f.Kind,
		FinalHP: nonNegative(f.Stats.HP),
		Stats:   start,
	}
}
