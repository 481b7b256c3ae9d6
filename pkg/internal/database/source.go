package database

import (
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var C *gorm.DB

func NewGorm() error {
	var err error
	C, err = gorm.Open(postgres.Open(viper.GetString("database.dsn")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	return err
}
