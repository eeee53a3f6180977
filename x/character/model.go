package character

import (
	"github.com/yasumitsu/gurps-manager/core"
)

// Sheet is a character plus every derived statistic, recomputed from
// the stored base stats on each request.
type Sheet struct {
	core.Character

	Fatigue               int     `json:"fatigue"`
	Hitpoints             int     `json:"hitpoints"`
	Alertness             int     `json:"alertness"`
	Will                  int     `json:"will"`
	Fright                int     `json:"fright"`
	Initiative            float64 `json:"initiative"`
	NoEncumbrance         int     `json:"noEncumbrance"`
	LightEncumbrance      int     `json:"lightEncumbrance"`
	MediumEncumbrance     int     `json:"mediumEncumbrance"`
	HeavyEncumbrance      int     `json:"heavyEncumbrance"`
	ExtraHeavyEncumbrance int     `json:"extraHeavyEncumbrance"`
}

// NewSheet computes the derived statistics for a character
func NewSheet(character core.Character) Sheet {
	return Sheet{
		Character:             character,
		Fatigue:               character.Fatigue(),
		Hitpoints:             character.Hitpoints(),
		Alertness:             character.Alertness(),
		Will:                  character.Will(),
		Fright:                character.Fright(),
		Initiative:            character.Initiative(),
		NoEncumbrance:         character.NoEncumbrance(),
		LightEncumbrance:      character.LightEncumbrance(),
		MediumEncumbrance:     character.MediumEncumbrance(),
		HeavyEncumbrance:      character.HeavyEncumbrance(),
		ExtraHeavyEncumbrance: character.ExtraHeavyEncumbrance(),
	}
}
