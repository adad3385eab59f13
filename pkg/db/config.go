package db

import (
	"fmt"
	"os"
)

// GetMySQLDSN: build the MySQL DSN from environment variables
func GetMySQLDSN() string {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		return dsn
	}

	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		host = "roomie-mysql"
	}

	user := os.Getenv("MYSQL_ROOT_USER")
	if user == "" {
		user = "root"
	}

	password := os.Getenv("MYSQL_ROOT_PASSWORD")
	if password == "" {
		password = "sample"
	}

	database := os.Getenv("MYSQL_DATABASE")
	if database == "" {
		database = "roomie"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:3306)/%s?parseTime=true", user, password, host, database)
}

// GetMongoURI: build the MongoDB URI from environment variables
func GetMongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}

	host := os.Getenv("MONGO_HOST")
	if host == "" {
		host = "roomie-mongo"
	}

	return fmt.Sprintf("mongodb://%s:27017", host)
}
