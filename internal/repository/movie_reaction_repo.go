package repository

import (
	"context"

	"gorm.io/gorm"

	"marcus/internal/domain"
)

// MovieReaction constrains the repository to the movie-domain tables, which
// all share the user_id / movie_id / created_at columns the queries rely on.
type MovieReaction interface {
	domain.MovieMasterpiece | domain.MovieWatchlist | domain.MovieVote | domain.MovieCritic
}

// MovieFilters narrows a listing. Nil / empty fields are skipped. Stars only
// makes sense for votes; Tag matches as a substring.
type MovieFilters struct {
	UserID  *int64
	MovieID *int64
	Stars   *float64
	Tag     string
}

// MovieReactionRepository is shared by all four movie reaction tables: the
// entities differ only in payload columns, never in access pattern.
type MovieReactionRepository[T MovieReaction] struct {
	db *gorm.DB
}

func NewMovieReactionRepository[T MovieReaction](db *gorm.DB) *MovieReactionRepository[T] {
	return &MovieReactionRepository[T]{db: db}
}

// Exists reports whether the user already has a row for the movie.
func (r *MovieReactionRepository[T]) Exists(ctx context.Context, userID, movieID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	return count > 0, err
}

func (r *MovieReactionRepository[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// DeleteByMovieID removes the single row for (user, movie). Returns
// gorm.ErrRecordNotFound when no such row exists.
func (r *MovieReactionRepository[T]) DeleteByMovieID(ctx context.Context, userID, movieID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
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
func (r *MovieReactionRepository[T]) List(ctx context.Context, f MovieFilters) ([]T, error) {
	query := r.db.WithContext(ctx).Model(new(T)).Preload("User")

	if f.UserID != nil {
		query = query.Where("user_id = ?", *f.UserID)
	}
	if f.MovieID != nil {
		query = query.Where("movie_id = ?", *f.MovieID)
	}
	if f.Stars != nil {
		query = query.Where("value = ?", *f.Stars)
	}
	if f.Tag != "" {
		query = query.Where("tags LIKE ?", "%"+f.Tag+"%")
	}

	var rows []T
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
