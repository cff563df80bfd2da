package repository

import (
	"context"

	"gorm.io/gorm"

	"marcus/internal/domain"
)

// MusicReaction constrains the repository to the music-domain tables.
type MusicReaction interface {
	domain.MusicMasterpiece | domain.MusicPlaylist | domain.MusicVote | domain.MusicCritic
}

// MusicFilters narrows a listing. Genre matches the genders column as a
// substring; Stars only makes sense for votes.
type MusicFilters struct {
	UserID   *int64
	ArtistID string
	Stars    *float64
	Genre    string
}

type MusicReactionRepository[T MusicReaction] struct {
	db *gorm.DB
}

func NewMusicReactionRepository[T MusicReaction](db *gorm.DB) *MusicReactionRepository[T] {
	return &MusicReactionRepository[T]{db: db}
}

// Exists reports whether the user already has a row for the album.
func (r *MusicReactionRepository[T]) Exists(ctx context.Context, userID int64, albumID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).
		Where("user_id = ? AND album_id = ?", userID, albumID).
		Count(&count).Error
	return count > 0, err
}

func (r *MusicReactionRepository[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// DeleteByID removes a row by its identifier, scoped to the owning user.
// Returns gorm.ErrRecordNotFound when no such row exists.
func (r *MusicReactionRepository[T]) DeleteByID(ctx context.Context, userID int64, id string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns matching rows newest first, with the owning user preloaded.
func (r *MusicReactionRepository[T]) List(ctx context.Context, f MusicFilters) ([]T, error) {
	query := r.db.WithContext(ctx).Model(new(T)).Preload("User")

	if f.UserID != nil {
		query = query.Where("user_id = ?", *f.UserID)
	}
	if f.ArtistID != "" {
		query = query.Where("artist_id = ?", f.ArtistID)
	}
	if f.Stars != nil {
		query = query.Where("value = ?", *f.Stars)
	}
	if f.Genre != "" {
		query = query.Where("genders LIKE ?", "%"+f.Genre+"%")
	}

	var rows []T
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
