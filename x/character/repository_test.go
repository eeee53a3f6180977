package character

import (
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yasumitsu/gurps-manager/core"
	"github.com/yasumitsu/gurps-manager/internal/testutil"
)

var ctx = context.Background()
var repo Repository
var db *gorm.DB

func TestMain(m *testing.M) {
	log.Println("Test Start")

	var cleanup_db func()
	db, cleanup_db = testutil.CreateDB()
	defer cleanup_db()

	repo = NewRepository(db)

	m.Run()

	log.Println("Test End")
}

func TestRepository(t *testing.T) {

	campaign := core.Campaign{
		ID:   "ci9crh8g63a0t3nbq0gg",
		Name: "Caravan to Ein Arris",
	}
	err := db.WithContext(ctx).Create(&campaign).Error
	assert.NoError(t, err)

	// create
	character, err := repo.Create(ctx, core.Character{
		ID:            "ci9crh8g63a0t3nbq0h0",
		CampaignID:    campaign.ID,
		Name:          "Dai Blackthorn",
		Strength:      10,
		Dexterity:     14,
		Intelligence:  12,
		Health:        11,
		TotalPoints:   100.25,
		Appearance:    core.AppearanceAverage,
		Wealth:        core.WealthStruggling,
		EideticMemory: core.EideticMemoryNone,
		MuscleMemory:  core.MuscleMemoryNone,
	})
	assert.NoError(t, err)

	// creating against a missing campaign fails
	_, err = repo.Create(ctx, core.Character{
		ID:         "ci9crh8g63a0t3nbq0h1",
		CampaignID: "ci9crh8g63a0t3nbqxxx",
		Name:       "Orphan",
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// update
	character.Strength = 12
	updated, err := repo.Update(ctx, character)
	assert.NoError(t, err)
	assert.Equal(t, 12, updated.Strength)

	// list by campaign
	characters, err := repo.ListByCampaign(ctx, campaign.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, 1, len(characters))
	}

	// owned and associated rows
	trait, err := repo.CreateTrait(ctx, core.Trait{
		ID:          "ci9crh8g63a0t3nbq0i0",
		CharacterID: character.ID,
		Name:        "Combat Reflexes",
		Points:      15.0,
	})
	assert.NoError(t, err)

	location, err := repo.CreateHitLocation(ctx, core.HitLocation{
		ID:          "ci9crh8g63a0t3nbq0i1",
		CharacterID: character.ID,
		Name:        "Torso",
	})
	assert.NoError(t, err)

	skillset := core.SkillSet{ID: "ci9crh8g63a0t3nbq0j0", Name: "Thief"}
	assert.NoError(t, db.WithContext(ctx).Create(&skillset).Error)
	skill := core.Skill{
		ID:         "ci9crh8g63a0t3nbq0j1",
		SkillSetID: skillset.ID,
		Name:       "Stealth",
		Category:   core.SkillCategoryPhysical,
		Difficulty: core.SkillDifficultyAverage,
	}
	assert.NoError(t, db.WithContext(ctx).Create(&skill).Error)
	assert.NoError(t, db.WithContext(ctx).Create(&core.CharacterSkill{
		ID:          "ci9crh8g63a0t3nbq0j2",
		CharacterID: character.ID,
		SkillID:     skill.ID,
		Points:      2.0,
	}).Error)

	spell := core.Spell{
		ID:         "ci9crh8g63a0t3nbq0k0",
		Name:       "Fireball",
		School:     "Fire",
		Difficulty: core.SpellDifficultyHard,
	}
	assert.NoError(t, db.WithContext(ctx).Create(&spell).Error)
	assert.NoError(t, db.WithContext(ctx).Create(&core.CharacterSpell{
		ID:          "ci9crh8g63a0t3nbq0k1",
		CharacterID: character.ID,
		SpellID:     spell.ID,
		Points:      1.0,
	}).Error)

	item := core.Item{ID: "ci9crh8g63a0t3nbq0l0", Name: "Rope", Cost: 10, Weight: 5}
	assert.NoError(t, db.WithContext(ctx).Create(&item).Error)
	assert.NoError(t, db.WithContext(ctx).Create(&core.Possession{
		ID:          "ci9crh8g63a0t3nbq0l1",
		CharacterID: character.ID,
		ItemID:      item.ID,
		Quantity:    2,
	}).Error)

	// get preloads the owned rows
	loaded, err := repo.Get(ctx, character.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, 1, len(loaded.Traits))
		assert.Equal(t, 1, len(loaded.HitLocations))
	}

	traits, err := repo.ListTraits(ctx, character.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, 1, len(traits))
	}
	locations, err := repo.ListHitLocations(ctx, character.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, 1, len(locations))
	}

	// delete cascades to everything the character owns
	err = repo.Delete(ctx, character.ID)
	assert.NoError(t, err)

	_, err = repo.Get(ctx, character.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	for _, dependent := range []interface{}{
		&core.Trait{},
		&core.HitLocation{},
		&core.CharacterSkill{},
		&core.CharacterSpell{},
		&core.Possession{},
	} {
		var count int64
		err = db.WithContext(ctx).Model(dependent).Where("character_id = ?", character.ID).Count(&count).Error
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	}

	_, err = repo.GetTrait(ctx, trait.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.GetHitLocation(ctx, location.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the other sides of the associations survive
	var skills int64
	assert.NoError(t, db.WithContext(ctx).Model(&core.Skill{}).Count(&skills).Error)
	assert.Equal(t, int64(1), skills)
}
