package db

import (
	"github.com/iaparraguez/Pagina-Fotos/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var dial gorm.Dialector
	if config.MYSQL_DSN != "" {
		dial = mysql.Open(config.MYSQL_DSN)
	} else {
		dial = sqlite.Open(config.SQLITE_FILE)
	}
	db, err := gorm.Open(dial, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
