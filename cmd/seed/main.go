package main

import (
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"marcus/internal/config"
	"marcus/internal/database"
	"marcus/internal/domain"
)

// Seeds a demo account with a handful of reactions in both domains.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	user := domain.User{Username: "marcus", PasswordHash: string(hash)}
	if err := db.Where("username = ?", user.Username).FirstOrCreate(&user).Error; err != nil {
		log.Fatal(err)
	}

	movieRows := []any{
		&domain.MovieMasterpiece{UserID: user.ID, MovieID: 603, MovieName: "The Matrix", Platform: domain.PlatformMovie, Tags: "sci-fi"},
		&domain.MovieWatchlist{UserID: user.ID, MovieID: 872585, MovieName: "Oppenheimer", Platform: domain.PlatformMovie},
		&domain.MovieVote{UserID: user.ID, MovieID: 603, MovieName: "The Matrix", Platform: domain.PlatformMovie, Value: 4.5},
		&domain.MovieCritic{UserID: user.ID, MovieID: 603, MovieName: "The Matrix", Platform: domain.PlatformMovie, Content: "Aged remarkably well.", Tags: "sci-fi"},
	}
	musicRows := []any{
		&domain.MusicMasterpiece{UserID: user.ID, AlbumID: "0ETFjACtuP2ADo6LFhL6HN", AlbumName: "Abbey Road", ArtistID: "3WrFJ7ztbogyGnTHbHJFl2", ArtistName: "The Beatles", Genders: "rock"},
		&domain.MusicVote{UserID: user.ID, AlbumID: "0ETFjACtuP2ADo6LFhL6HN", AlbumName: "Abbey Road", ArtistID: "3WrFJ7ztbogyGnTHbHJFl2", ArtistName: "The Beatles", Genders: "rock", Value: 5.0},
	}

	for _, row := range append(movieRows, musicRows...) {
		if err := db.Create(row).Error; err != nil {
			log.Printf("seed: skipping row: %v", err)
		}
	}

	log.Println("seed complete")
}
