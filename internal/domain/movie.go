package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Platform values accepted for movie reactions. The platform selects which
// TMDB endpoint is used when the row is enriched with live details.
const (
	PlatformMovie = "movie"
	PlatformTV    = "tv"
)

// MovieMasterpiece marks a movie or show as a user's favorite.
// At most one row per (user, movie) pair.
type MovieMasterpiece struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_movie_masterpieces_user_movie"`
	MovieID   int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_movie_masterpieces_user_movie"`
	MovieName string    `json:"movie_name" gorm:"size:200"`
	Platform  string    `json:"platform" gorm:"size:20"`
	Tags      string    `json:"tags" gorm:"size:1000"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (MovieMasterpiece) TableName() string { return "movie_masterpieces" }

func (m *MovieMasterpiece) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MovieWatchlist is a movie or show the user intends to watch later.
type MovieWatchlist struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_movie_watchlists_user_movie"`
	MovieID   int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_movie_watchlists_user_movie"`
	MovieName string    `json:"movie_name" gorm:"size:200"`
	Platform  string    `json:"platform" gorm:"size:20"`
	Tags      string    `json:"tags" gorm:"size:1000"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (MovieWatchlist) TableName() string { return "movie_watchlists" }

func (m *MovieWatchlist) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MovieVote is a half-star rating (0.0 to 5.0) a user gave a movie or show.
type MovieVote struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_movie_votes_user_movie"`
	MovieID   int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_movie_votes_user_movie"`
	MovieName string    `json:"movie_name" gorm:"size:200"`
	Platform  string    `json:"platform" gorm:"size:20"`
	Tags      string    `json:"tags" gorm:"size:1000"`
	Value     float64   `json:"value" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (MovieVote) TableName() string { return "movie_votes" }

func (m *MovieVote) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MovieCritic is a short free-text critique a user wrote about a movie or show.
type MovieCritic struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_movie_critics_user_movie"`
	MovieID   int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_movie_critics_user_movie"`
	MovieName string    `json:"movie_name" gorm:"size:200"`
	Platform  string    `json:"platform" gorm:"size:20"`
	Tags      string    `json:"tags" gorm:"size:1000"`
	Content   string    `json:"content" gorm:"size:1000;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (MovieCritic) TableName() string { return "movie_critics" }

func (m *MovieCritic) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
