package database

import (
	"github.com/rcee-dev/campusvoice/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Complaint{},
	&models.ComplaintComment{},
	&models.Poll{},
	&models.PollRating{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(AutoMaintainRange...); err != nil {
		return err
	}

	return nil
}
