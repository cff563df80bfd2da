package movies

import (
	"time"

	"marcus/internal/domain"
)

type CreateMasterpieceRequest struct {
	MovieID   int64  `json:"movie_id" validate:"required"`
	MovieName string `json:"movie_name" validate:"required,max=200"`
	Platform  string `json:"platform" validate:"required,oneof=movie tv"`
	Tags      string `json:"tags" validate:"max=1000"`
}

type CreateWatchlistRequest struct {
	MovieID   int64  `json:"movie_id" validate:"required"`
	MovieName string `json:"movie_name" validate:"required,max=200"`
	Platform  string `json:"platform" validate:"required,oneof=movie tv"`
	Tags      string `json:"tags" validate:"max=1000"`
}

type CreateVoteRequest struct {
	MovieID   int64    `json:"movie_id" validate:"required"`
	MovieName string   `json:"movie_name" validate:"required,max=200"`
	Platform  string   `json:"platform" validate:"required,oneof=movie tv"`
	Tags      string   `json:"tags" validate:"max=1000"`
	Value     *float64 `json:"value" validate:"required"`
}

type CreateCriticRequest struct {
	MovieID   int64  `json:"movie_id" validate:"required"`
	MovieName string `json:"movie_name" validate:"required,max=200"`
	Platform  string `json:"platform" validate:"required,oneof=movie tv"`
	Tags      string `json:"tags" validate:"max=1000"`
	Content   string `json:"content" validate:"required,max=1000"`
}

type UserBrief struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// ReactionResponse is the listing row shared by all movie reaction
// entities; Value and Content are only set where the entity carries them.
type ReactionResponse struct {
	ID        string     `json:"id"`
	MovieID   int64      `json:"movie_id"`
	MovieName string     `json:"movie_name"`
	Platform  string     `json:"platform"`
	Tags      string     `json:"tags"`
	Value     *float64   `json:"value,omitempty"`
	Content   string     `json:"content,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	User      *UserBrief `json:"user"`
}

// CriticWithVote pairs one critique with its author's vote for the same
// movie; Vote is null when the author never voted.
type CriticWithVote struct {
	UserID   int64    `json:"user_id"`
	UserName string   `json:"user_name"`
	Content  string   `json:"content"`
	Vote     *float64 `json:"vote"`
}

func toUserBrief(u *domain.User) *UserBrief {
	if u == nil {
		return nil
	}
	return &UserBrief{ID: u.ID, Username: u.Username}
}

func ToMasterpieceResponses(rows []domain.MovieMasterpiece) []ReactionResponse {
	out := make([]ReactionResponse, len(rows))
	for i, r := range rows {
		out[i] = ReactionResponse{
			ID:        r.ID,
			MovieID:   r.MovieID,
			MovieName: r.MovieName,
			Platform:  r.Platform,
			Tags:      r.Tags,
			CreatedAt: r.CreatedAt,
			User:      toUserBrief(r.User),
		}
	}
	return out
}

func ToWatchlistResponses(rows []domain.MovieWatchlist) []ReactionResponse {
	out := make([]ReactionResponse, len(rows))
	for i, r := range rows {
		out[i] = ReactionResponse{
			ID:        r.ID,
			MovieID:   r.MovieID,
			MovieName: r.MovieName,
			Platform:  r.Platform,
			Tags:      r.Tags,
			CreatedAt: r.CreatedAt,
			User:      toUserBrief(r.User),
		}
	}
	return out
}

func ToVoteResponses(rows []domain.MovieVote) []ReactionResponse {
	out := make([]ReactionResponse, len(rows))
	for i, r := range rows {
		value := r.Value
		out[i] = ReactionResponse{
			ID:        r.ID,
			MovieID:   r.MovieID,
			MovieName: r.MovieName,
			Platform:  r.Platform,
			Tags:      r.Tags,
			Value:     &value,
			CreatedAt: r.CreatedAt,
			User:      toUserBrief(r.User),
		}
	}
	return out
}

func ToCriticResponses(rows []domain.MovieCritic) []ReactionResponse {
	out := make([]ReactionResponse, len(rows))
	for i, r := range rows {
		out[i] = ReactionResponse{
			ID:        r.ID,
			MovieID:   r.MovieID,
			MovieName: r.MovieName,
			Platform:  r.Platform,
			Tags:      r.Tags,
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
			User:      toUserBrief(r.User),
		}
	}
	return out
}
