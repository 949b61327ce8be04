package models

import (
	"github.com/iaparraguez/Pagina-Fotos/db"
)

func Init() {
	db.Instance.AutoMigrate(&Album{})
	db.Instance.AutoMigrate(&Photo{})
	db.Instance.AutoMigrate(&Identity{})
}
