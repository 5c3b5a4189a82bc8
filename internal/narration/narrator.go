package narration

import (
	"context"

	"github.com/ericogr/mythic-arena/internal/battle"
)

// Narrator turns a finished battle into prose. Implementations must be
// safe for concurrent use.
type Narrator interface {
	Narrate(ctx context.Context, req Request) (string, error)
}

// Request is everything a narrator may look at. It is built from a Result
// so narrators never see engine internals.
type Request struct {
	Combatant1 battle.Snapshot
	Combatant2 battle.Snapshot
	Winner     battle.Winner
	EndReason  battle.EndReason
	Log        []battle.CombatAction
	Style      battle.Style
	BattleType battle.Type
	Arena      string
	// UseAI asks for the AI narrator; the template is used when false.
	UseAI bool
}

// NewRequest builds a narration request for res.
func NewRequest(res *battle.Result, cfg battle.Config) Request {
	return Request{
		Combatant1: res.Combatant1,
		Combatant2: res.Combatant2,
		Winner:     res.Winner,
		EndReason:  res.EndReason,
		Log:        res.CombatLog,
		Style:      res.NarrationStyle,
		BattleType: res.BattleType,
		Arena:      cfg.ArenaDescription,
		UseAI:      cfg.UseAINarration,
	}
}

func (r Request) winnerName() string {
	if r.Winner.Name == nil {
		return ""
	}
	return *r.Winner.Name
}
