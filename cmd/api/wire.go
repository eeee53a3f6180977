//go:build wireinject

package main

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/yasumitsu/gurps-manager/x/association"
	"github.com/yasumitsu/gurps-manager/x/campaign"
	"github.com/yasumitsu/gurps-manager/x/character"
	"github.com/yasumitsu/gurps-manager/x/item"
	"github.com/yasumitsu/gurps-manager/x/skill"
	"github.com/yasumitsu/gurps-manager/x/skillset"
	"github.com/yasumitsu/gurps-manager/x/spell"
)

var campaignProvider = wire.NewSet(campaign.NewHandler, campaign.NewService, campaign.NewRepository)
var skillsetProvider = wire.NewSet(skillset.NewHandler, skillset.NewService, skillset.NewRepository)
var skillProvider = wire.NewSet(skill.NewHandler, skill.NewService, skill.NewRepository)
var spellProvider = wire.NewSet(spell.NewHandler, spell.NewService, spell.NewRepository)
var itemProvider = wire.NewSet(item.NewHandler, item.NewService, item.NewRepository)
var characterProvider = wire.NewSet(character.NewHandler, character.NewService, character.NewRepository)
var associationProvider = wire.NewSet(association.NewHandler, association.NewService, association.NewRepository)

func SetupCampaignHandler(db *gorm.DB) campaign.Handler {
	wire.Build(campaignProvider)
	return nil
}

func SetupCampaignService(db *gorm.DB) campaign.Service {
	wire.Build(campaign.NewService, campaign.NewRepository)
	return nil
}

func SetupSkillsetHandler(db *gorm.DB) skillset.Handler {
	wire.Build(skillsetProvider)
	return nil
}

func SetupSkillsetService(db *gorm.DB) skillset.Service {
	wire.Build(skillset.NewService, skillset.NewRepository)
	return nil
}

func SetupSkillHandler(db *gorm.DB) skill.Handler {
	wire.Build(skillProvider)
	return nil
}

func SetupSkillService(db *gorm.DB) skill.Service {
	wire.Build(skill.NewService, skill.NewRepository)
	return nil
}

func SetupSpellHandler(db *gorm.DB) spell.Handler {
	wire.Build(spellProvider)
	return nil
}

func SetupSpellService(db *gorm.DB) spell.Service {
	wire.Build(spell.NewService, spell.NewRepository)
	return nil
}

func SetupItemHandler(db *gorm.DB) item.Handler {
	wire.Build(itemProvider)
	return nil
}

func SetupItemService(db *gorm.DB) item.Service {
	wire.Build(item.NewService, item.NewRepository)
	return nil
}

func SetupCharacterHandler(db *gorm.DB) character.Handler {
	wire.Build(characterProvider)
	return nil
}

func SetupCharacterService(db *gorm.DB) character.Service {
	wire.Build(character.NewService, character.NewRepository)
	return nil
}

func SetupAssociationHandler(db *gorm.DB) association.Handler {
	wire.Build(associationProvider)
	return nil
}
