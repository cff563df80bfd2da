package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"marcus/internal/domain"
)

// Connect opens a PostgreSQL connection when the DSN looks like a postgres
// URL, and falls back to SQLite (pure-Go driver) otherwise. SQLite is used
// for local development and tests.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema for every model the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.MovieMasterpiece{},
		&domain.MovieWatchlist{},
		&domain.MovieVote{},
		&domain.MovieCritic{},
		&domain.MusicMasterpiece{},
		&domain.MusicPlaylist{},
		&domain.MusicVote{},
		&domain.MusicCritic{},
	)
}
