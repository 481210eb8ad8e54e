package utils

import (
	"sync"

	"gorm.io/gorm"
)

var (
	db   *gorm.DB
	once sync.Once
	mu   sync.Mutex
)

// InitDB stores the process-wide database handle so shutdown can close the
// pool. The first call wins; later calls are ignored. Handlers receive the
// same *gorm.DB through their constructors rather than through a global.
func InitDB(database *gorm.DB) {
	once.Do(func() {
		db = database
	})
}

// CloseDB closes the underlying connection pool. Called once on shutdown.
func CloseDB() error {
	mu.Lock()
	defer mu.Unlock()
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
