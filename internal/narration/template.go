package narration

import (
	"context"
	"fmt"
	"strings"

	"github.com/ericogr/mythic-arena/internal/battle"
)

type stylePhrases struct {
	opening     string
	connectives []string
	victory     string
	draw        string
}

// Openings take (name1, name2, place), victories (winner, rounds) and
// draws (rounds).
var phrases = map[battle.Style]stylePhrases{
	battle.StyleEpic: {
		opening:     "In %[3]s, %[1]s and %[2]s meet as legends foretold.",
		connectives: []string{"Then", "Undaunted,", "With the fury of the ages,", "As the heavens watched,"},
		victory:     "After %[2]d rounds, %[1]s stands triumphant, and the tale will be sung for ages.",
		draw:        "After %[1]d rounds neither yields, and the bards will argue forever over who was greater.",
	},
	battle.StyleComedic: {
		opening:     "In %[3]s, %[1]s and %[2]s show up for what nobody would call a fair fight.",
		connectives: []string{"Somehow,", "Then, against all common sense,", "Not to be outdone,", "Meanwhile,"},
		victory:     "%[1]s wins after %[2]d rounds, mostly by accident, and takes a bow nobody asked for.",
		draw:        "After %[1]d rounds both sides give up and go for snacks.",
	},
	battle.StyleTragic: {
		opening:     "In %[3]s, %[1]s and %[2]s face each other, and fate has already chosen.",
		connectives: []string{"Sorrowfully,", "With heavy heart,", "And still,", "Doomed,"},
		victory:     "After %[2]d rounds, %[1]s is left standing, and the victory tastes of ash.",
		draw:        "After %[1]d rounds both are spent, and no one is left to claim the field.",
	},
	battle.StyleDramatic: {
		opening:     "In %[3]s, tension crackles as %[1]s confronts %[2]s.",
		connectives: []string{"Suddenly,", "In a stunning turn,", "Without warning,", "The crowd gasps as"},
		victory:     "In the end, after %[2]d rounds, %[1]s claims a hard-won victory!",
		draw:        "After %[1]d breathless rounds, the fight ends without a victor!",
	},
	battle.StylePoetic: {
		opening:     "Where %[3]s lies, %[1]s and %[2]s meet beneath a patient sky.",
		connectives: []string{"Like falling leaves,", "As rivers turn,", "Softly, then fierce,", "Under a silver moon,"},
		victory:     "When %[2]d rounds have turned like seasons, %[1]s alone remains.",
		draw:        "When %[1]d rounds have passed like tides, both remain, and neither is the sea.",
	},
}

const defaultArena = "a nameless arena"

// Template is the deterministic narrator. It stitches the combat log
// together with connective phrases for the requested style and never
// returns an empty string.
type Template struct{}

func (Template) Narrate(_ context.Context, req Request) (string, error) {
	return Render(req), nil
}

// Render produces the template narration for req.
func Render(req Request) string {
	p, ok := phrases[req.Style]
	if !ok {
		p = phrases[battle.StyleEpic]
	}
	arena := strings.TrimSpace(req.Arena)
	if arena == "" {
		arena = defaultArena
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(p.opening, req.Combatant1.Name, req.Combatant2.Name, arena))
	if framing := typeFraming(req.BattleType, req.Combatant1.Name); framing != "" {
		b.WriteString(" ")
		b.WriteString(framing)
	}
	for i, act := range req.Log {
		b.WriteString(" ")
		if i == 0 {
			b.WriteString(act.Description)
			continue
		}
		b.WriteString(p.connectives[(i-1)%len(p.connectives)])
		b.WriteString(" ")
		b.WriteString(lowerFirst(act.Description, act.AttackerName))
	}
	b.WriteString(" ")
	if w := req.winnerName(); w != "" {
		b.WriteString(fmt.Sprintf(p.victory, w, len(req.Log)))
	} else {
		b.WriteString(fmt.Sprintf(p.draw, len(req.Log)))
	}
	return b.String()
}

func typeFraming(t battle.Type, first string) string {
	switch t {
	case battle.TypeHonorCombat:
		return "Both have sworn to fight with honor."
	case battle.TypeAmbush:
		return first + " strikes from the shadows."
	case battle.TypeDivineContest:
		return "The gods themselves have called this contest."
	case battle.TypeTournament:
		return "The tournament crowd roars."
	default:
		return ""
	}
}

// lowerFirst keeps proper names capitalized after a connective; only
// descriptions that do not start with the attacker's name are lowered.
func lowerFirst(s, name string) string {
	if s == "" || strings.HasPrefix(s, name) {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
