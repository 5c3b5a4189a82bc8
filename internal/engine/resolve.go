package engine

import (
	"fmt"

	"github.com/ericogr/mythic-arena/internal/battle"
)

// Engine runs battle simulations. It holds only read-only tables and
// constants and is safe for concurrent use.
type Engine struct {
	tables  Tables
	balance Balance
}

// Option configures an Engine.
type Option func(*Engine)

// WithTables replaces the stat tables.
func WithTables(t Tables) Option {
	return func(e *Engine) { e.tables = t }
}

// WithBalance replaces the combat constants.
func WithBalance(b Balance) Option {
	return func(e *Engine) { e.balance = b }
}

// New builds an Engine with the default tables and balance unless options
// override them.
func New(opts ...Option) *Engine {
	e := &Engine{tables: DefaultTables(), balance: DefaultBalance()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Balance returns the combat constants in use.
func (e *Engine) Balance() Balance { return e.balance }

// Resolve derives the baseline fighter for a combatant.
func (e *Engine) Resolve(c battle.Combatant) battle.Fighter {
	return e.tables.Resolve(c)
}

// Run validates the inputs, resolves stats for both combatants and
// simulates the battle. Narration is left empty.
func (e *Engine) Run(a, b battle.Combatant, cfg battle.Config) (*battle.Result, error) {
	if err := battle.ValidatePair(a, b, cfg); err != nil {
		return nil, err
	}
	return e.Simulate(e.Resolve(a), e.Resolve(b), cfg)
}

// Simulate runs the round loop for two already resolved fighters. Both
// start at full HP. The same seed and inputs always produce the same result.
func (e *Engine) Simulate(a, b battle.Fighter, cfg battle.Config) (*battle.Result, error) {
	if err := battle.ValidatePair(a.Combatant, b.Combatant, cfg); err != nil {
		return nil, err
	}
	for _, f := range []battle.Fighter{a, b} {
		if err := validateStats(f); err != nil {
			return nil, err
		}
	}
	seed, err := resolveSeed(cfg.RNGSeed)
	if err != nil {
		return nil, fmt.Errorf("seed battle rng: %w", err)
	}

	a, b = e.tables.withSpecialAbility(a), e.tables.withSpecialAbility(b)
	a.Stats.HP, b.Stats.HP = a.Stats.MaxHP, b.Stats.MaxHP
	a, b, mods := ApplyModifiers(a, b, cfg.BattleType, e.balance)
	start := [2]battle.CombatStats{a.Stats, b.Stats}

	bc := newBattleContext(NewRNG(seed), e.balance, a, b)
	if mods.FirstStrike {
		bc.exchange(0)
	}
	for !bc.knockedOut() && bc.round < e.balance.RoundCap {
		bc.exchange(bc.attackerFor(bc.round + 1))
	}

	return aggregate(bc, start, cfg, seed), nil
}

func validateStats(f battle.Fighter) error {
	s := f.Stats
	if s.MaxHP < 1 {
		return &battle.ValidationError{Field: "stats", Value: f.Name, Reason: "max HP must be at least 1"}
	}
	if s.Attack < 0 || s.Defense < 0 || s.Speed < 0 {
		return &battle.ValidationError{Field: "stats", Value: f.Name, Reason: "stats must be non-negative"}
	}
	return nil
}
