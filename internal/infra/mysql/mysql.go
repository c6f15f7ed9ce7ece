package mysql

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"store-service/internal/domain"
)

func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&domain.Product{},
		&domain.Customer{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Sale{},
		&domain.LedgerEntry{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
