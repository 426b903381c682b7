package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rahmatsubandi/undanganku/internal/models"
)

func TestOpenSQLiteInMemoryAndMigrate(t *testing.T) {
	db, err := Open(Config{Driver: "sqlite"})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	require.NoError(t, Ping(db))

	require.True(t, db.Migrator().HasTable(&models.User{}))
	require.True(t, db.Migrator().HasTable(&models.Invitation{}))
	require.True(t, db.Migrator().HasTable(&models.RSVP{}))
	require.True(t, db.Migrator().HasTable(&models.Message{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "oracle"})
	require.Error(t, err)
}

func TestBuildPostgresDSN(t *testing.T) {
	dsn, err := buildPostgresDSN(Config{
		User:     "undangan",
		Password: "rahasia",
		Name:     "undanganku",
		Host:     "db.internal",
		Port:     5433,
	})
	require.NoError(t, err)
	require.Contains(t, dsn, "host=db.internal")
	require.Contains(t, dsn, "port=5433")
	require.Contains(t, dsn, "dbname=undanganku")
	require.Contains(t, dsn, "sslmode=disable")
}

func TestBuildPostgresDSNRequiresUserAndName(t *testing.T) {
	_, err := buildPostgresDSN(Config{Host: "localhost"})
	require.Error(t, err)
}

func TestBuildMySQLDSN(t *testing.T) {
	dsn, err := buildMySQLDSN(Config{
		User: "undangan",
		Name: "undanganku",
	})
	require.NoError(t, err)
	require.Contains(t, dsn, "undangan@tcp(127.0.0.1:3306)/undanganku")
	require.Contains(t, dsn, "parseTime=True")
}
