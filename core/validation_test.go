package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuarter(t *testing.T) {
	for _, value := range []float64{0.0, 0.25, 0.50, 0.75, 1.0, -1.75, 10, 100.25} {
		assert.NoError(t, ValidateQuarter(value), "%v should pass", value)
	}

	for _, value := range []float64{0.26, 0.1, -0.3, 1.24, 0.125} {
		assert.Error(t, ValidateQuarter(value), "%v should fail", value)
	}

	// normalized to two decimals before the check, so float noise past
	// the second decimal place does not reject a legal value
	assert.NoError(t, ValidateQuarter(0.1+0.15))
}

func TestValidateCampaign(t *testing.T) {
	campaign := Campaign{Name: "Banestorm"}
	assert.NoError(t, Validate(campaign))

	campaign.Name = strings.Repeat("x", 51)
	err := Validate(campaign)
	if assert.Error(t, err) {
		assert.IsType(t, ErrorValidation{}, err)
	}

	campaign.Name = ""
	assert.Error(t, Validate(campaign))
}

func TestValidateCharacter(t *testing.T) {
	character := Character{
		CampaignID:    "c1",
		Name:          "Dai Blackthorn",
		TotalPoints:   125.25,
		UsedFatigue:   0.5,
		Appearance:    AppearanceAverage,
		Wealth:        WealthStruggling,
		EideticMemory: EideticMemoryNone,
		MuscleMemory:  MuscleMemoryNone,
	}
	assert.NoError(t, Validate(character))

	character.TotalPoints = 125.26
	err := Validate(character)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "0.25")
	}

	character.TotalPoints = 125.25
	character.Wealth = Wealth(42)
	assert.Error(t, Validate(character))
}

func TestValidateSkill(t *testing.T) {
	skill := Skill{
		SkillSetID: "s1",
		Name:       "Stealth",
		Category:   SkillCategoryPhysical,
		Difficulty: SkillDifficultyAverage,
	}
	assert.NoError(t, Validate(skill))

	skill.Category = SkillCategory(0)
	assert.Error(t, Validate(skill))

	skill.Category = SkillCategory(5)
	assert.Error(t, Validate(skill))
}

func TestValidateAssociations(t *testing.T) {
	charskill := CharacterSkill{CharacterID: "c1", SkillID: "s1", Points: 1.75}
	assert.NoError(t, Validate(charskill))

	charskill.Points = 1.76
	assert.Error(t, Validate(charskill))

	charspell := CharacterSpell{CharacterID: "c1", SpellID: "s1", Points: 0.25}
	assert.NoError(t, Validate(charspell))

	charspell.Points = 0.2
	assert.Error(t, Validate(charspell))
}

func TestLookupStrings(t *testing.T) {
	assert.Equal(t, "Mental (health)", SkillCategoryMentalHealth.String())
	assert.Equal(t, "Very Hard", SkillDifficultyVeryHard.String())
	assert.Equal(t, "Very Hard", SpellDifficultyVeryHard.String())
	assert.Equal(t, "Dead Broke", WealthDeadBroke.String())
	assert.Equal(t, "Unknown", Appearance(99).String())
}
