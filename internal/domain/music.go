package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MusicMasterpiece marks an album as a user's favorite.
// At most one row per (user, album) pair.
type MusicMasterpiece struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_music_masterpieces_user_album"`
	AlbumID    string    `json:"album_id" gorm:"not null;size:100;uniqueIndex:idx_music_masterpieces_user_album"`
	AlbumName  string    `json:"album_name" gorm:"size:100"`
	ArtistID   string    `json:"artist_id" gorm:"size:100;index"`
	ArtistName string    `json:"artist_name" gorm:"size:100"`
	ImageURL   string    `json:"image_url" gorm:"size:200"`
	Genders    string    `json:"genders" gorm:"size:1000"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (MusicMasterpiece) TableName() string { return "music_masterpieces" }

func (m *MusicMasterpiece) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MusicPlaylist is an album (and optionally a track) the user wants to
// listen to later.
type MusicPlaylist struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_music_playlists_user_album"`
	AlbumID    string    `json:"album_id" gorm:"not null;size:100;uniqueIndex:idx_music_playlists_user_album"`
	AlbumName  string    `json:"album_name" gorm:"size:100"`
	ArtistID   string    `json:"artist_id" gorm:"size:100;index"`
	ArtistName string    `json:"artist_name" gorm:"size:100"`
	ImageURL   string    `json:"image_url" gorm:"size:200"`
	Genders    string    `json:"genders" gorm:"size:1000"`
	TrackID    string    `json:"track_id" gorm:"size:100"`
	TrackName  string    `json:"track_name" gorm:"size:100"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (MusicPlaylist) TableName() string { return "music_playlists" }

func (m *MusicPlaylist) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MusicVote is a half-star rating (0.0 to 5.0) a user gave an album.
type MusicVote struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_music_votes_user_album"`
	AlbumID    string    `json:"album_id" gorm:"not null;size:100;uniqueIndex:idx_music_votes_user_album"`
	AlbumName  string    `json:"album_name" gorm:"size:100"`
	ArtistID   string    `json:"artist_id" gorm:"size:100;index"`
	ArtistName string    `json:"artist_name" gorm:"size:100"`
	ImageURL   string    `json:"image_url" gorm:"size:200"`
	Genders    string    `json:"genders" gorm:"size:1000"`
	Value      float64   `json:"value" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (MusicVote) TableName() string { return "music_votes" }

func (m *MusicVote) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MusicCritic is a free-text critique a user wrote about an album.
type MusicCritic struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_music_critics_user_album"`
	AlbumID    string    `json:"album_id" gorm:"not null;size:100;uniqueIndex:idx_music_critics_user_album"`
	AlbumName  string    `json:"album_name" gorm:"size:100"`
	ArtistID   string    `json:"artist_id" gorm:"size:100;index"`
	ArtistName string    `json:"artist_name" gorm:"size:100"`
	ImageURL   string    `json:"image_url" gorm:"size:200"`
	Genders    string    `json:"genders" gorm:"size:1000"`
	Content    string    `json:"content" gorm:"size:2000;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (MusicCritic) TableName() string { return "music_critics" }

func (m *MusicCritic) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
