package battle

// ActionType classifies a single combat action.
type ActionType string

const (
	ActionNormal   ActionType = "normal"
	ActionCritical ActionType = "critical"
	ActionSpecial  ActionType = "special"
	ActionDodge    ActionType = "dodge"
)

// EndReason records how a battle stopped.
type EndReason string

const (
	EndKnockout EndReason = "knockout"
	EndRoundCap EndReason = "round_cap"
)

// CombatAction is one entry of the combat log. Clients replay the log in
// slice order, so the order is part of the wire contract.
type CombatAction struct {
	Round        int        `json:"round"`
	AttackerName string     `json:"attackerName"`
	DefenderName string     `json:"defenderName"`
	ActionType   ActionType `json:"actionType"`
	Damage       int        `json:"damage"`
	Description  string     `json:"description"`
	// DefenderHP is the defender's remaining HP after this action.
	DefenderHP int `json:"defenderHp"`
}

// Snapshot is the per-combatant part of a result. Stats are the
// post-modifier values the battle started with.
type Snapshot struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Kind    Kind        `json:"kind"`
	FinalHP int         `json:"finalHp"`
	Stats   CombatStats `json:"stats"`
}

// Winner identifies the victor. ID and Name are nil and Kind is empty on a
// draw.
type Winner struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
	Kind Kind    `json:"kind"`
}

// IsDraw reports whether the battle ended without a winner.
func (w Winner) IsDraw() bool { return w.ID == nil }

// Result is the complete output of one battle.
type Result struct {
	Combatant1     Snapshot       `json:"combatant1"`
	Combatant2     Snapshot       `json:"combatant2"`
	Winner         Winner         `json:"winner"`
	TotalRounds    int            `json:"totalRounds"`
	CombatLog      []CombatAction `json:"combatLog"`
	Narration      string         `json:"narration"`
	BattleType     Type           `json:"battleType"`
	NarrationStyle Style          `json:"narrationStyle"`
	EndReason      EndReason      `json:"endReason"`
	// Seed is the effective RNG seed; replaying it reproduces the log. It is
	// encoded as a string so float64 JSON decoders keep every digit.
	Seed int64 `json:"seed,string"`
}
