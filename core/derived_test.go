package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFatigue(t *testing.T) {
	character := Character{Strength: 10, BonusFatigue: 2}
	assert.Equal(t, 12, character.Fatigue())
}

func TestHitpoints(t *testing.T) {
	character := Character{Health: 11, BonusHitpoints: 3}
	assert.Equal(t, 14, character.Hitpoints())
}

func TestAlertness(t *testing.T) {
	character := Character{Intelligence: 13, BonusAlertness: -1}
	assert.Equal(t, 12, character.Alertness())
}

func TestWill(t *testing.T) {
	// will reads bonusWillpower, the only willpower bonus the schema
	// declares
	character := Character{Intelligence: 10, BonusWillpower: 4}
	assert.Equal(t, 14, character.Will())
}

func TestFright(t *testing.T) {
	character := Character{Intelligence: 9, BonusFright: 2}
	assert.Equal(t, 11, character.Fright())
}

func TestInitiative(t *testing.T) {
	character := Character{Intelligence: 12, Dexterity: 8, BonusInitiative: 1}
	assert.Equal(t, 6.0, character.Initiative())

	// fractional results are kept, not truncated
	character = Character{Intelligence: 10, Dexterity: 9}
	assert.Equal(t, 4.75, character.Initiative())
}

func TestEncumbrance(t *testing.T) {
	character := Character{Strength: 5}
	assert.Equal(t, 10, character.NoEncumbrance())
	assert.Equal(t, 20, character.LightEncumbrance())
	assert.Equal(t, 30, character.MediumEncumbrance())
	assert.Equal(t, 60, character.HeavyEncumbrance())
	assert.Equal(t, 100, character.ExtraHeavyEncumbrance())
}
