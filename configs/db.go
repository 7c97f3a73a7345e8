package configs

import (
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectDB(source string) error {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

// SetDB swaps the active connection; tests point it at an in-memory DB.
func SetDB(database *gorm.DB) {
	db = database
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderLine{},
	)
}
