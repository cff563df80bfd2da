package movies

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marcus/internal/domain"
	"marcus/internal/repository"
)

const (
	defaultPageSize       = 10
	criticPerUserPageSize = 5
)

// ListParams carries the optional listing filters parsed from the query
// string. PageGiven distinguishes "no page requested" from "page 1".
type ListParams struct {
	UserID    *int64
	PageGiven bool
	MovieID   *int64
	Stars     *float64
	Tag       string
}

// Service owns the four movie reaction entities. Every create enforces the
// one-row-per-(user, movie) rule; every delete is scoped to the owner.
type Service struct {
	masterpieces *repository.MovieReactionRepository[domain.MovieMasterpiece]
	watchlists   *repository.MovieReactionRepository[domain.MovieWatchlist]
	votes        *repository.MovieReactionRepository[domain.MovieVote]
	critics      *repository.MovieReactionRepository[domain.MovieCritic]
}

func NewService(
	masterpieces *repository.MovieReactionRepository[domain.MovieMasterpiece],
	watchlists *repository.MovieReactionRepository[domain.MovieWatchlist],
	votes *repository.MovieReactionRepository[domain.MovieVote],
	critics *repository.MovieReactionRepository[domain.MovieCritic],
) *Service {
	return &Service{
		masterpieces: masterpieces,
		watchlists:   watchlists,
		votes:        votes,
		critics:      critics,
	}
}

// ValidVoteValue reports whether v is on the half-star scale 0.0 to 5.0.
func ValidVoteValue(v float64) bool {
	for i := 0; i <= 10; i++ {
		if v == float64(i)*0.5 {
			return true
		}
	}
	return false
}

// browsePageSize implements the listing defaults: unrestricted browsing is
// paginated by 10, per-user browsing without an explicit page returns the
// whole set.
func browsePageSize(p ListParams) *int {
	if p.UserID != nil && !p.PageGiven {
		return nil
	}
	size := defaultPageSize
	return &size
}

func (s *Service) ListMasterpieces(ctx context.Context, p ListParams) ([]domain.MovieMasterpiece, *int, error) {
	rows, err := s.masterpieces.List(ctx, repository.MovieFilters{UserID: p.UserID, Tag: p.Tag})
	return rows, browsePageSize(p), err
}

func (s *Service) ListWatchlists(ctx context.Context, p ListParams) ([]domain.MovieWatchlist, *int, error) {
	rows, err := s.watchlists.List(ctx, repository.MovieFilters{UserID: p.UserID, Tag: p.Tag})
	return rows, browsePageSize(p), err
}

// ListVotes is always paginated by 10, whatever the filter combination.
func (s *Service) ListVotes(ctx context.Context, p ListParams) ([]domain.MovieVote, *int, error) {
	rows, err := s.votes.List(ctx, repository.MovieFilters{
		UserID:  p.UserID,
		MovieID: p.MovieID,
		Stars:   p.Stars,
		Tag:     p.Tag,
	})
	size := defaultPageSize
	return rows, &size, err
}

// ListCritics pages by 10 across all owners and by 5 within one user's
// critiques.
func (s *Service) ListCritics(ctx context.Context, p ListParams) ([]domain.MovieCritic, *int, error) {
	rows, err := s.critics.List(ctx, repository.MovieFilters{UserID: p.UserID, Tag: p.Tag})
	size := defaultPageSize
	if p.UserID != nil {
		size = criticPerUserPageSize
	}
	return rows, &size, err
}

// AggregateCritics pairs every critique of a movie with the vote its author
// gave the same movie. Exactly one output row per critique; Vote stays null
// when the author never voted.
func (s *Service) AggregateCritics(ctx context.Context, movieID int64) ([]CriticWithVote, error) {
	critics, err := s.critics.List(ctx, repository.MovieFilters{MovieID: &movieID})
	if err != nil {
		return nil, err
	}
	votes, err := s.votes.List(ctx, repository.MovieFilters{MovieID: &movieID})
	if err != nil {
		return nil, err
	}

	merged := make([]CriticWithVote, 0, len(critics))
	for _, critic := range critics {
		row := CriticWithVote{
			UserID:  critic.UserID,
			Content: critic.Content,
		}
		if critic.User != nil {
			row.UserName = critic.User.Username
		}
		for _, vote := range votes {
			if vote.MovieID == critic.MovieID && vote.UserID == critic.UserID {
				value := vote.Value
				row.Vote = &value
			}
		}
		merged = append(merged, row)
	}
	return merged, nil
}

func (s *Service) CreateMasterpiece(ctx context.Context, userID int64, req CreateMasterpieceRequest) error {
	exists, err := s.masterpieces.Exists(ctx, userID, req.MovieID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}
	return s.masterpieces.Create(ctx, &domain.MovieMasterpiece{
		UserID:    userID,
		MovieID:   req.MovieID,
		MovieName: req.MovieName,
		Platform:  req.Platform,
		Tags:      req.Tags,
	})
}

func (s *Service) CreateWatchlist(ctx context.Context, userID int64, req CreateWatchlistRequest) error {
	exists, err := s.watchlists.Exists(ctx, userID, req.MovieID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}
	return s.watchlists.Create(ctx, &domain.MovieWatchlist{
		UserID:    userID,
		MovieID:   req.MovieID,
		MovieName: req.MovieName,
		Platform:  req.Platform,
		Tags:      req.Tags,
	})
}

// CreateVote rejects values off the half-star scale before touching the
// store.
func (s *Service) CreateVote(ctx context.Context, userID int64, req CreateVoteRequest) error {
	if req.Value == nil || !ValidVoteValue(*req.Value) {
		return ErrInvalidValue
	}
	exists, err := s.votes.Exists(ctx, userID, req.MovieID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}
	return s.votes.Create(ctx, &domain.MovieVote{
		UserID:    userID,
		MovieID:   req.MovieID,
		MovieName: req.MovieName,
		Platform:  req.Platform,
		Tags:      req.Tags,
		Value:     *req.Value,
	})
}

func (s *Service) CreateCritic(ctx context.Context, userID int64, req CreateCriticRequest) error {
	exists, err := s.critics.Exists(ctx, userID, req.MovieID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}
	return s.critics.Create(ctx, &domain.MovieCritic{
		UserID:    userID,
		MovieID:   req.MovieID,
		MovieName: req.MovieName,
		Platform:  req.Platform,
		Tags:      req.Tags,
		Content:   req.Content,
	})
}

func (s *Service) DeleteMasterpiece(ctx context.Context, userID, movieID int64) error {
	return notFoundErr(s.masterpieces.DeleteByMovieID(ctx, userID, movieID))
}

func (s *Service) DeleteWatchlist(ctx context.Context, userID, movieID int64) error {
	return notFoundErr(s.watchlists.DeleteByMovieID(ctx, userID, movieID))
}

func (s *Service) DeleteVote(ctx context.Context, userID, movieID int64) error {
	return notFoundErr(s.votes.DeleteByMovieID(ctx, userID, movieID))
}

func (s *Service) DeleteCritic(ctx context.Context, userID, movieID int64) error {
	return notFoundErr(s.critics.DeleteByMovieID(ctx, userID, movieID))
}

func notFoundErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
