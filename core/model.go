// Package core defines the GURPS Manager database schema and the rules
// that apply to it.
package core

import (
	"time"
)

// Campaign is a single role-playing campaign.
// mutable
type Campaign struct {
	ID          string     `json:"id" gorm:"primaryKey;type:char(20)"`
	Name        string     `json:"name" gorm:"type:varchar(50)" validate:"required,max=50"`
	Description string     `json:"description" gorm:"type:text" validate:"max=2000"`
	SkillSets   []SkillSet `json:"skillsets,omitempty" gorm:"many2many:campaign_skillsets;"`
	Characters  []Character `json:"-" gorm:"foreignKey:CampaignID;constraint:OnDelete:RESTRICT"`
	CDate       time.Time  `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate       time.Time  `json:"mdate" gorm:"autoUpdateTime"`
}

// SkillSet is a grouping of similar skills.
// mutable
type SkillSet struct {
	ID     string    `json:"id" gorm:"primaryKey;type:char(20)"`
	Name   string    `json:"name" gorm:"type:varchar(50)" validate:"required,max=50"`
	Skills []Skill   `json:"-" gorm:"foreignKey:SkillSetID;constraint:OnDelete:RESTRICT"`
	CDate  time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate  time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// Character is an individual who can be role-played.
// mutable
type Character struct {
	ID         string `json:"id" gorm:"primaryKey;type:char(20)"`
	CampaignID string `json:"campaignId" gorm:"type:char(20);index" validate:"required"`

	Name        string `json:"name" gorm:"type:varchar(50)" validate:"required,max=50"`
	Description string `json:"description" gorm:"type:text" validate:"max=2000"`
	Story       string `json:"story" gorm:"type:text" validate:"max=2000"`

	Strength     int `json:"strength" gorm:"type:integer"`
	Dexterity    int `json:"dexterity" gorm:"type:integer"`
	Intelligence int `json:"intelligence" gorm:"type:integer"`
	Health       int `json:"health" gorm:"type:integer"`
	Magery       int `json:"magery" gorm:"type:integer"`

	BonusFatigue    int `json:"bonusFatigue" gorm:"type:integer"`
	BonusHitpoints  int `json:"bonusHitpoints" gorm:"type:integer"`
	BonusAlertness  int `json:"bonusAlertness" gorm:"type:integer"`
	BonusWillpower  int `json:"bonusWillpower" gorm:"type:integer"`
	BonusFright     int `json:"bonusFright" gorm:"type:integer"`
	BonusSpeed      int `json:"bonusSpeed" gorm:"type:integer"`
	BonusMovement   int `json:"bonusMovement" gorm:"type:integer"`
	BonusDodge      int `json:"bonusDodge" gorm:"type:integer"`
	BonusInitiative int `json:"bonusInitiative" gorm:"type:integer"`

	FreeStrength     int `json:"freeStrength" gorm:"type:integer"`
	FreeDexterity    int `json:"freeDexterity" gorm:"type:integer"`
	FreeIntelligence int `json:"freeIntelligence" gorm:"type:integer"`
	FreeHealth       int `json:"freeHealth" gorm:"type:integer"`

	TotalPoints float64 `json:"totalPoints" gorm:"type:double precision" validate:"quarter"`
	UsedFatigue float64 `json:"usedFatigue" gorm:"type:double precision" validate:"quarter"`

	Appearance    Appearance    `json:"appearance" gorm:"type:integer" validate:"lookup"`
	Wealth        Wealth        `json:"wealth" gorm:"type:integer" validate:"lookup"`
	EideticMemory EideticMemory `json:"eideticMemory" gorm:"type:integer" validate:"lookup"`
	MuscleMemory  MuscleMemory  `json:"muscleMemory" gorm:"type:integer" validate:"lookup"`

	Traits       []Trait        `json:"traits,omitempty" gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
	HitLocations []HitLocation  `json:"hitLocations,omitempty" gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
	Skills       []CharacterSkill `json:"skills,omitempty" gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
	Spells       []CharacterSpell `json:"spells,omitempty" gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
	Possessions  []Possession   `json:"possessions,omitempty" gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`

	CDate time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// Trait is an advantage or disadvantage that a character may have.
// owned by its character
type Trait struct {
	ID          string  `json:"id" gorm:"primaryKey;type:char(20)"`
	CharacterID string  `json:"characterId" gorm:"type:char(20);index" validate:"required"`
	Name        string  `json:"name" gorm:"type:varchar(50)" validate:"required,max=50"`
	Description string  `json:"description" gorm:"type:text" validate:"max=2000"`
	Points      float64 `json:"points" gorm:"type:double precision" validate:"quarter"`
}

// Skill is some task that a character can become proficient in,
// anything from dagger throwing to underwater basket weaving.
type Skill struct {
	ID         string          `json:"id" gorm:"primaryKey;type:char(20)"`
	SkillSetID string          `json:"skillsetId" gorm:"type:char(20);index" validate:"required"`
	Name       string          `json:"name" gorm:"type:varchar(50)" validate:"required,max=50"`
	Category   SkillCategory   `json:"category" gorm:"type:integer" validate:"lookup"`
	Difficulty SkillDifficulty `json:"difficulty" gorm:"type:integer" validate:"lookup"`
	Characters []CharacterSkill `json:"-" gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE"`
}

// CharacterSkill is a skill that a character possesses.
// association entity: carries per-relationship attributes
type CharacterSkill struct {
	ID          string  `json:"id" gorm:"primaryKey;type:char(20)"`
	CharacterID string  `json:"characterId" gorm:"type:char(20);uniqueIndex:uniq_character_skill" validate:"required"`
	SkillID     string  `json:"skillId" gorm:"type:char(20);uniqueIndex:uniq_character_skill" validate:"required"`
	BonusLevel  int     `json:"bonusLevel" gorm:"type:integer"`
	Points      float64 `json:"points" gorm:"type:double precision" validate:"quarter"`
}

// Spell is a spell available to characters, anything from fireballs to
// feather falling.
type Spell struct {
	ID                     string          `json:"id" gorm:"primaryKey;type:char(20)"`
	Name                   string          `json:"name" gorm:"type:varchar(50)" validate:"required,max=50"`
	School                 string          `json:"school" gorm:"type:varchar(50)" validate:"max=50"`
	Resist                 string          `json:"resist" gorm:"type:varchar(50)" validate:"max=50"`
	CastTime               int             `json:"castTime" gorm:"type:integer"`
	Duration               int             `json:"duration" gorm:"type:integer"`
	InitialFatigueCost     int             `json:"initialFatigueCost" gorm:"type:integer"`
	MaintenanceFatigueCost int             `json:"maintenanceFatigueCost" gorm:"type:integer"`
	Difficulty             SpellDifficulty `json:"difficulty" gorm:"type:integer" validate:"lookup"`
	Characters             []CharacterSpell `json:"-" gorm:"foreignKey:SpellID;constraint:OnDelete:CASCADE"`
}

// CharacterSpell is a spell that a character knows.
// association entity: carries per-relationship attributes
type CharacterSpell struct {
	ID          string  `json:"id" gorm:"primaryKey;type:char(20)"`
	CharacterID string  `json:"characterId" gorm:"type:char(20);uniqueIndex:uniq_character_spell" validate:"required"`
	SpellID     string  `json:"spellId" gorm:"type:char(20);uniqueIndex:uniq_character_spell" validate:"required"`
	BonusLevel  int     `json:"bonusLevel" gorm:"type:integer"`
	Points      float64 `json:"points" gorm:"type:double precision" validate:"quarter"`
}

// Item is an item that a character may possess.
type Item struct {
	ID          string  `json:"id" gorm:"primaryKey;type:char(20)"`
	Name        string  `json:"name" gorm:"type:varchar(50)" validate:"required,max=50"`
	Description string  `json:"description" gorm:"type:text" validate:"max=2000"`
	Cost        float64 `json:"cost" gorm:"type:double precision"`
	Weight      float64 `json:"weight" gorm:"type:double precision"`
	Possessions []Possession `json:"-" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// Possession is an item that a character possesses.
// association entity: carries per-relationship attributes
type Possession struct {
	ID          string `json:"id" gorm:"primaryKey;type:char(20)"`
	CharacterID string `json:"characterId" gorm:"type:char(20);uniqueIndex:uniq_possession" validate:"required"`
	ItemID      string `json:"itemId" gorm:"type:char(20);uniqueIndex:uniq_possession" validate:"required"`
	Quantity    int    `json:"quantity" gorm:"type:integer"`
}

// HitLocation is a location on a character that can be affected by
// armor, damage, status effects and the like.
// owned by its character
type HitLocation struct {
	ID                      string `json:"id" gorm:"primaryKey;type:char(20)"`
	CharacterID             string `json:"characterId" gorm:"type:char(20);index" validate:"required"`
	Name                    string `json:"name" gorm:"type:varchar(50)" validate:"required,max=50"`
	Status                  string `json:"status" gorm:"type:text" validate:"max=500"`
	PassiveDamageResistance int    `json:"passiveDamageResistance" gorm:"type:integer"`
	DamageResistance        int    `json:"damageResistance" gorm:"type:integer"`
	DamageTaken             int    `json:"damageTaken" gorm:"type:integer"`
}
