package engine

import "fmt"

// Balance holds the tunable combat constants. The defaults below are the
// documented values; deployments override them through configuration.
type Balance struct {
	// Dodge chance = DodgeBase + DodgePerSpeed*(defender speed - attacker speed),
	// clamped to [DodgeMin, DodgeMax].
	DodgeBase     float64 `json:"dodge_base" yaml:"dodge_base"`
	DodgePerSpeed float64 `json:"dodge_per_speed" yaml:"dodge_per_speed"`
	DodgeMin      float64 `json:"dodge_min" yaml:"dodge_min"`
	DodgeMax      float64 `json:"dodge_max" yaml:"dodge_max"`

	// Base damage = attack - floor(defense*DefenseFactor), then scaled by a
	// uniform roll in [1-DamageVariance, 1+DamageVariance].
	DefenseFactor  float64 `json:"defense_factor" yaml:"defense_factor"`
	DamageVariance float64 `json:"damage_variance" yaml:"damage_variance"`
	MinDamage      int     `json:"min_damage" yaml:"min_damage"`

	CritChance        float64 `json:"crit_chance" yaml:"crit_chance"`
	CritMultiplier    float64 `json:"crit_multiplier" yaml:"crit_multiplier"`
	SpecialChance     float64 `json:"special_chance" yaml:"special_chance"`
	SpecialMultiplier float64 `json:"special_multiplier" yaml:"special_multiplier"`

	// DivineMultiplier scales top-tier characters in a divine contest.
	DivineMultiplier float64 `json:"divine_multiplier" yaml:"divine_multiplier"`

	RoundCap int `json:"round_cap" yaml:"round_cap"`
}

// DefaultBalance returns the stock combat constants.
func DefaultBalance() Balance {
	return Balance{
		DodgeBase:         0.10,
		DodgePerSpeed:     0.01,
		DodgeMin:          0.05,
		DodgeMax:          0.35,
		DefenseFactor:     0.5,
		DamageVariance:    0.15,
		MinDamage:         1,
		CritChance:        0.10,
		CritMultiplier:    2.0,
		SpecialChance:     0.15,
		SpecialMultiplier: 1.5,
		DivineMultiplier:  1.25,
		RoundCap:          20,
	}
}

// MaxRoundCap bounds RoundCap; the combat log is sized from it.
const MaxRoundCap = 1000

// Validate checks that probabilities are within [0,1] and that the floors
// guaranteeing termination hold.
func (b Balance) Validate() error {
	probs := []struct {
		name string
		v    float64
	}{
		{"dodge_min", b.DodgeMin},
		{"dodge_max", b.DodgeMax},
		{"crit_chance", b.CritChance},
		{"special_chance", b.SpecialChance},
		{"damage_variance", b.DamageVariance},
	}
	for _, p := range probs {
		if p.v < 0 || p.v > 1 {
			return fmt.Errorf("balance %s must be within [0,1], got %v", p.name, p.v)
		}
	}
	if b.DodgeMin > b.DodgeMax {
		return fmt.Errorf("balance dodge_min (%v) exceeds dodge_max (%v)", b.DodgeMin, b.DodgeMax)
	}
	if b.DefenseFactor < 0 {
		return fmt.Errorf("balance defense_factor must be non-negative, got %v", b.DefenseFactor)
	}
	if b.MinDamage < 1 {
		return fmt.Errorf("balance min_damage must be at least 1, got %d", b.MinDamage)
	}
	if b.CritMultiplier < 1 || b.SpecialMultiplier < 1 || b.DivineMultiplier < 1 {
		return fmt.Errorf("balance multipliers must be at least 1")
	}
	if b.RoundCap < 1 || b.RoundCap > MaxRoundCap {
		return fmt.Errorf("balance round_cap must be within [1,%d], got %d", MaxRoundCap, b.RoundCap)
	}
	return nil
}
