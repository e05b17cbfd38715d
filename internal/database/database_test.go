package database_test

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func sqliteConfig(dsn string) config.Config {
	return config.Config{
		AppPort:        ":0",
		DBDriver:       config.DriverSQLite,
		DatabaseDSN:    dsn,
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	}
}

func TestConnectAndMigrate(t *testing.T) {
	cfg := sqliteConfig(filepath.Join(t.TempDir(), "catalog.db"))

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.Product{}))
	assert.True(t, db.Migrator().HasColumn(&models.Product{}, "availability"))
}

func TestConnect_LogsUnreachableDatabase(t *testing.T) {
	buf := captureLog(t)
	cfg := sqliteConfig(filepath.Join(t.TempDir(), "missing", "dir", "catalog.db"))

	db, err := database.Connect(cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, buf.String(), "Error connect to DB")
}

func TestConnect_RejectsUnknownDriver(t *testing.T) {
	buf := captureLog(t)
	cfg := sqliteConfig("ignored")
	cfg.DBDriver = "oracle"

	_, err := database.Connect(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
	assert.Contains(t, buf.String(), "Error connect to DB")
}
