package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database selected by DB_DRIVER. SQLite is the default
// and needs no configuration beyond an optional DB_PATH; MySQL is opted
// into with DB_DRIVER=mysql plus the usual DSN pieces.
func InitDB() (*gorm.DB, error) {
	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		return initMySQL()
	case "", "sqlite":
		return initSQLite()
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", os.Getenv("DB_DRIVER"))
	}
}

func initSQLite() (*gorm.DB, error) {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "tableorder.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

func initMySQL() (*gorm.DB, error) {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")

	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3306"
	}
	if name == "" {
		return nil, fmt.Errorf("DB_NAME is required for mysql")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}
