package db

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectMySQL: open the MySQL connection backing the like/match ledger.
// TranslateError so unique-key violations surface as gorm.ErrDuplicatedKey.
func ConnectMySQL() (*gorm.DB, error) {
	dsn := GetMySQLDSN()

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Printf("❌ MySQL connection failed: %v", err)
		return nil, err
	}

	log.Println("✅ Connected to MySQL!")
	return db, nil
}
