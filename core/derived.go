package core

// Derived attributes are recomputed on every call. They are plain
// functions of the stored base stats and are never persisted.

// Fatigue returns the character's total fatigue.
func (c Character) Fatigue() int {
	return c.Strength + c.BonusFatigue
}

// Hitpoints returns the character's total hitpoints.
func (c Character) Hitpoints() int {
	return c.Health + c.BonusHitpoints
}

// Alertness returns the character's alertness.
func (c Character) Alertness() int {
	return c.Intelligence + c.BonusAlertness
}

// Will returns the character's will.
func (c Character) Will() int {
	return c.Intelligence + c.BonusWillpower
}

// Fright returns the character's fright.
func (c Character) Fright() int {
	return c.Intelligence + c.BonusFright
}

// Initiative returns the character's combat initiative.
func (c Character) Initiative() float64 {
	return float64(c.Intelligence+c.Dexterity)/4 + float64(c.BonusInitiative)
}

// NoEncumbrance returns the maximum weight the character can carry
// unencumbered.
func (c Character) NoEncumbrance() int {
	return c.Strength * 2
}

// LightEncumbrance returns the light encumbrance weight threshold.
func (c Character) LightEncumbrance() int {
	return c.Strength * 4
}

// MediumEncumbrance returns the medium encumbrance weight threshold.
func (c Character) MediumEncumbrance() int {
	return c.Strength * 6
}

// HeavyEncumbrance returns the heavy encumbrance weight threshold.
func (c Character) HeavyEncumbrance() int {
	return c.Strength * 12
}

// ExtraHeavyEncumbrance returns the extra-heavy encumbrance weight
// threshold.
func (c Character) ExtraHeavyEncumbrance() int {
	return c.Strength * 20
}
