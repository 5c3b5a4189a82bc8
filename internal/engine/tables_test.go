package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericogr/mythic-arena/internal/battle"
)

func TestResolve_CharacterBaseline(t *testing.T) {
	f := DefaultTables().Resolve(battle.Combatant{ID: "1", Name: "Zeus", Kind: battle.KindCharacter, Archetype: "God"})

	assert.Equal(t, battle.CombatStats{MaxHP: 150, HP: 150, Attack: 30, Defense: 20, Speed: 18}, f.Stats)
	assert.Equal(t, "God Strike", f.SpecialAbility)
	assert.Equal(t, "God", f.Archetype, "identity fields are left untouched")
}

func TestResolve_UnknownArchetypeFallsBack(t *testing.T) {
	tables := DefaultTables()

	c := tables.Resolve(battle.Combatant{ID: "1", Name: "Atlas", Kind: battle.KindCharacter, Archetype: "titan"})
	assert.Equal(t, 70, c.Stats.MaxHP)
	assert.Equal(t, "Mortal Strike", c.SpecialAbility)

	m := tables.Resolve(battle.Combatant{ID: "2", Name: "Thing", Kind: battle.KindCreature})
	assert.Equal(t, battle.CombatStats{MaxHP: 90, HP: 90, Attack: 15, Defense: 10, Speed: 12}, m.Stats)
	assert.Equal(t, "Dangerous Attack", m.SpecialAbility)
}

func TestResolve_NormalizesTierNames(t *testing.T) {
	f := DefaultTables().Resolve(battle.Combatant{ID: "3", Name: "Imp", Kind: battle.KindCreature, Archetype: " Minor Threat "})
	assert.Equal(t, 60, f.Stats.MaxHP)
	assert.Equal(t, "Minor Threat Attack", f.SpecialAbility)

	g := DefaultTables().Resolve(battle.Combatant{ID: "4", Name: "Imp II", Kind: battle.KindCreature, Archetype: "minor-threat"})
	assert.Equal(t, f.Stats, g.Stats)
}

func TestSpecialAbility_FirstToken(t *testing.T) {
	cases := []struct {
		abilities string
		want      string
	}{
		{"Thunderbolt, Shapeshifting", "Thunderbolt"},
		{" , Trident Surge ,Earthquake", "Trident Surge"},
		{"Petrifying Gaze", "Petrifying Gaze"},
		{"   ", "Hero Strike"},
		{"", "Hero Strike"},
	}
	for _, tc := range cases {
		got := SpecialAbility(battle.KindCharacter, "hero", tc.abilities)
		assert.Equal(t, tc.want, got, "abilities=%q", tc.abilities)
	}
}

func TestTables_Merge(t *testing.T) {
	base := DefaultTables()
	merged := base.Merge(map[string]Baseline{"Titan": {HP: 200, Attack: 35, Defense: 25, Speed: 8}}, nil)

	f := merged.Resolve(battle.Combatant{ID: "1", Name: "Kronos", Kind: battle.KindCharacter, Archetype: "titan"})
	assert.Equal(t, 200, f.Stats.MaxHP)
	assert.Equal(t, "Titan Strike", f.SpecialAbility)

	_, ok := base.Characters["titan"]
	assert.False(t, ok, "merge must not modify the source tables")
}
