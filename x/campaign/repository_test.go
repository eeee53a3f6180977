package campaign

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

	// create
	created, err := repo.Create(ctx, core.Campaign{
		ID:          "cj9crh8g63a0t3nbq0g0",
		Name:        "Banestorm",
		Description: "Low fantasy on Yrth",
	})
	assert.NoError(t, err)

	// get
	campaign, err := repo.Get(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "Banestorm", campaign.Name)
	}

	// update
	campaign.Description = "Low fantasy on Yrth, year 2005"
	updated, err := repo.Update(ctx, campaign)
	assert.NoError(t, err)
	assert.Equal(t, "Low fantasy on Yrth, year 2005", updated.Description)

	// list
	campaigns, err := repo.List(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, 1, len(campaigns))
	}

	// skillset pool
	skillset := core.SkillSet{ID: "cj9crh8g63a0t3nbq0g1", Name: "Martial Arts"}
	assert.NoError(t, db.WithContext(ctx).Create(&skillset).Error)

	err = repo.AttachSkillSet(ctx, campaign.ID, skillset.ID)
	assert.NoError(t, err)

	// attaching against a missing skillset fails
	err = repo.AttachSkillSet(ctx, campaign.ID, "cj9crh8g63a0t3nbqxxx")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	skillsets, err := repo.ListSkillSets(ctx, campaign.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, 1, len(skillsets))
	}

	// delete is refused while characters belong to the campaign
	character := core.Character{
		ID:            "cj9crh8g63a0t3nbq0g2",
		CampaignID:    campaign.ID,
		Name:          "Sir Osric",
		Strength:      10,
		Dexterity:     10,
		Intelligence:  10,
		Health:        10,
		Appearance:    core.AppearanceAverage,
		Wealth:        core.WealthAverage,
		EideticMemory: core.EideticMemoryNone,
		MuscleMemory:  core.MuscleMemoryNone,
	}
	assert.NoError(t, db.WithContext(ctx).Create(&character).Error)

	err = repo.Delete(ctx, campaign.ID)
	var conflict core.ErrorConflict
	assert.ErrorAs(t, err, &conflict)

	// once the character is gone the delete succeeds and clears the pool
	assert.NoError(t, db.WithContext(ctx).Delete(&character).Error)

	err = repo.Delete(ctx, campaign.ID)
	assert.NoError(t, err)

	_, err = repo.Get(ctx, campaign.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var joins int64
	assert.NoError(t, db.WithContext(ctx).Table("campaign_skillsets").Where("campaign_id = ?", campaign.ID).Count(&joins).Error)
	assert.Equal(t, int64(0), joins)

	// the skillset itself survives detachment
	var remaining core.SkillSet
	assert.NoError(t, db.WithContext(ctx).First(&remaining, "id = ?", skillset.ID).Error)
}
