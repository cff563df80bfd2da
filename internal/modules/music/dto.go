package music

import (
	"time"

	"marcus/internal/domain"
)

type CreateMasterpieceRequest struct {
	AlbumID    string `json:"album_id" validate:"required,max=100"`
	AlbumName  string `json:"album_name" validate:"required,max=100"`
	ArtistID   string `json:"artist_id" validate:"required,max=100"`
	ArtistName string `json:"artist_name" validate:"required,max=100"`
	ImageURL   string `json:"image_url" validate:"max=200"`
	Genders    string `json:"genders" validate:"max=1000"`
}

type CreatePlaylistRequest struct {
	AlbumID    string `json:"album_id" validate:"required,max=100"`
	AlbumName  string `json:"album_name" validate:"required,max=100"`
	ArtistID   string `json:"artist_id" validate:"required,max=100"`
	ArtistName string `json:"artist_name" validate:"required,max=100"`
	ImageURL   string `json:"image_url" validate:"max=200"`
	Genders    string `json:"genders" validate:"max=1000"`
	TrackID    string `json:"track_id" validate:"max=100"`
	TrackName  string `json:"track_name" validate:"max=100"`
}

type CreateVoteRequest struct {
	AlbumID    string   `json:"album_id" validate:"required,max=100"`
	AlbumName  string   `json:"album_name" validate:"required,max=100"`
	ArtistID   string   `json:"artist_id" validate:"required,max=100"`
	ArtistName string   `json:"artist_name" validate:"required,max=100"`
	ImageURL   string   `json:"image_url" validate:"max=200"`
	Genders    string   `json:"genders" validate:"max=1000"`
	Value      *float64 `json:"value" validate:"required"`
}

type CreateCriticRequest struct {
	AlbumID    string `json:"album_id" validate:"required,max=100"`
	AlbumName  string `json:"album_name" validate:"required,max=100"`
	ArtistID   string `json:"artist_id" validate:"required,max=100"`
	ArtistName string `json:"artist_name" validate:"required,max=100"`
	ImageURL   string `json:"image_url" validate:"max=200"`
	Genders    string `json:"genders" validate:"max=1000"`
	Content    string `json:"content" validate:"required,max=2000"`
}

type UserBrief struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// ReactionResponse is the listing row shared by all music reaction
// entities.
type ReactionResponse struct {
	ID         string     `json:"id"`
	AlbumID    string     `json:"album_id"`
	AlbumName  string     `json:"album_name"`
	ArtistID   string     `json:"artist_id"`
	ArtistName string     `json:"artist_name"`
	ImageURL   string     `json:"image_url"`
	Genders    string     `json:"genders"`
	TrackID    string     `json:"track_id,omitempty"`
	TrackName  string     `json:"track_name,omitempty"`
	Value      *float64   `json:"value,omitempty"`
	Content    string     `json:"content,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	User       *UserBrief `json:"user"`
}

func toUserBrief(u *domain.User) *UserBrief {
	if u == nil {
		return nil
	}
	return &UserBrief{ID: u.ID, Username: u.Username}
}

func ToMasterpieceResponses(rows []domain.MusicMasterpiece) []ReactionResponse {
	out := make([]ReactionResponse, len(rows))
	for i, r := range rows {
		out[i] = ReactionResponse{
			ID:         r.ID,
			AlbumID:    r.AlbumID,
			AlbumName:  r.AlbumName,
			ArtistID:   r.ArtistID,
			ArtistName: r.ArtistName,
			ImageURL:   r.ImageURL,
			Genders:    r.Genders,
			CreatedAt:  r.CreatedAt,
			User:       toUserBrief(r.User),
		}
	}
	return out
}

func ToPlaylistResponses(rows []domain.MusicPlaylist) []ReactionResponse {
	out := make([]ReactionResponse, len(rows))
	for i, r := range rows {
		out[i] = ReactionResponse{
			ID:         r.ID,
			AlbumID:    r.AlbumID,
			AlbumName:  r.AlbumName,
			ArtistID:   r.ArtistID,
			ArtistName: r.ArtistName,
			ImageURL:   r.ImageURL,
			Genders:    r.Genders,
			TrackID:    r.TrackID,
			TrackName:  r.TrackName,
			CreatedAt:  r.CreatedAt,
			User:       toUserBrief(r.User),
		}
	}
	return out
}

func ToVoteResponses(rows []domain.MusicVote) []ReactionResponse {
	out := make([]ReactionResponse, len(rows))
	for i, r := range rows {
		value := r.Value
		out[i] = ReactionResponse{
			ID:         r.ID,
			AlbumID:    r.AlbumID,
			AlbumName:  r.AlbumName,
			ArtistID:   r.ArtistID,
			ArtistName: r.ArtistName,
			ImageURL:   r.ImageURL,
			Genders:    r.Genders,
			Value:      &value,
			CreatedAt:  r.CreatedAt,
			User:       toUserBrief(r.User),
		}
	}
	return out
}

func ToCriticResponses(rows []domain.MusicCritic) []ReactionResponse {
	out := make([]ReactionResponse, len(rows))
	for i, r := range rows {
		out[i] = ReactionResponse{
			ID:         r.ID,
			AlbumID:    r.AlbumID,
			AlbumName:  r.AlbumName,
			ArtistID:   r.ArtistID,
			ArtistName: r.ArtistName,
			ImageURL:   r.ImageURL,
			Genders:    r.Genders,
			Content:    r.Content,
			CreatedAt:  r.CreatedAt,
			User:       toUserBrief(r.User),
		}
	}
	return out
}
