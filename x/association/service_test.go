package association

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
var svc Service
var db *gorm.DB

func TestMain(m *testing.M) {
	log.Println("Test Start")

	var cleanup_db func()
	db, cleanup_db = testutil.CreateDB()
	defer cleanup_db()

	svc = NewService(NewRepository(db))

	m.Run()

	log.Println("Test End")
}

func TestService(t *testing.T) {

	campaign := core.Campaign{ID: "ck9crh8g63a0t3nbq0g0", Name: "Harkwood"}
	assert.NoError(t, db.WithContext(ctx).Create(&campaign).Error)

	character := core.Character{
		ID:            "ck9crh8g63a0t3nbq0g1",
		CampaignID:    campaign.ID,
		Name:          "Aldric",
		Strength:      11,
		Dexterity:     12,
		Intelligence:  10,
		Health:        11,
		Appearance:    core.AppearanceAverage,
		Wealth:        core.WealthAverage,
		EideticMemory: core.EideticMemoryNone,
		MuscleMemory:  core.MuscleMemoryNone,
	}
	assert.NoError(t, db.WithContext(ctx).Create(&character).Error)

	skillset := core.SkillSet{ID: "ck9crh8g63a0t3nbq0g2", Name: "Knightly"}
	assert.NoError(t, db.WithContext(ctx).Create(&skillset).Error)

	skill := core.Skill{
		ID:         "ck9crh8g63a0t3nbq0g3",
		SkillSetID: skillset.ID,
		Name:       "Broadsword",
		Category:   core.SkillCategoryPhysical,
		Difficulty: core.SkillDifficultyAverage,
	}
	assert.NoError(t, db.WithContext(ctx).Create(&skill).Error)

	// first put creates
	created, err := svc.PutSkill(ctx, core.CharacterSkill{
		CharacterID: character.ID,
		SkillID:     skill.ID,
		Points:      4.0,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// second put updates in place, same row
	updated, err := svc.PutSkill(ctx, core.CharacterSkill{
		CharacterID: character.ID,
		SkillID:     skill.ID,
		Points:      8.0,
	})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 8.0, updated.Points)

	var rows int64
	assert.NoError(t, db.WithContext(ctx).Model(&core.CharacterSkill{}).
		Where("character_id = ? AND skill_id = ?", character.ID, skill.ID).
		Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	// non-quarter points are rejected
	_, err = svc.PutSkill(ctx, core.CharacterSkill{
		CharacterID: character.ID,
		SkillID:     skill.ID,
		Points:      4.1,
	})
	var validation core.ErrorValidation
	assert.ErrorAs(t, err, &validation)

	listed, err := svc.ListSkills(ctx, character.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, 1, len(listed))
	}

	// possession quantity, not points
	item := core.Item{ID: "ck9crh8g63a0t3nbq0h0", Name: "Broadsword", Cost: 500, Weight: 3}
	assert.NoError(t, db.WithContext(ctx).Create(&item).Error)

	possession, err := svc.PutPossession(ctx, core.Possession{
		CharacterID: character.ID,
		ItemID:      item.ID,
		Quantity:    1,
	})
	assert.NoError(t, err)

	possession, err = svc.PutPossession(ctx, core.Possession{
		CharacterID: character.ID,
		ItemID:      item.ID,
		Quantity:    2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, possession.Quantity)

	err = svc.DeletePossession(ctx, character.ID, item.ID)
	assert.NoError(t, err)

	possessions, err := svc.ListPossessions(ctx, character.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, 0, len(possessions))
	}

	err = svc.DeleteSkill(ctx, character.ID, skill.ID)
	assert.NoError(t, err)
}
