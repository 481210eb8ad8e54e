package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestDBLifecycle(t *testing.T) {
	// Closing before anything was initialized is harmless.
	assert.NoError(t, CloseDB())

	first, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	second, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	InitDB(first)
	InitDB(second) // ignored: first call wins
	assert.Same(t, first, db)

	assert.NoError(t, CloseDB())

	sqlDB, err := second.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Close())
}
