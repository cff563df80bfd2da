package music

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marcus/internal/domain"
	"marcus/internal/repository"
)

const defaultPageSize = 10

// ListParams carries the optional listing filters parsed from the query
// string.
type ListParams struct {
	UserID    *int64
	PageGiven bool
	ArtistID  string
	Stars     *float64
	Genre     string
}

// Service owns the four music reaction entities, keyed on (user, album).
type Service struct {
	masterpieces *repository.MusicReactionRepository[domain.MusicMasterpiece]
	playlists    *repository.MusicReactionRepository[domain.MusicPlaylist]
	votes        *repository.MusicReactionRepository[domain.MusicVote]
	critics      *repository.MusicReactionRepository[domain.MusicCritic]
}

func NewService(
	masterpieces *repository.MusicReactionRepository[domain.MusicMasterpiece],
	playlists *repository.MusicReactionRepository[domain.MusicPlaylist],
	votes *repository.MusicReactionRepository[domain.MusicVote],
	critics *repository.MusicReactionRepository[domain.MusicCritic],
) *Service {
	return &Service{
		masterpieces: masterpieces,
		playlists:    playlists,
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

// browsePageSize: unrestricted browsing pages by 10, per-user browsing
// without an explicit page returns everything.
func browsePageSize(p ListParams) *int {
	if p.UserID != nil && !p.PageGiven {
		return nil
	}
	size := defaultPageSize
	return &size
}

// requestedPageSize: votes and critics only paginate when a page is asked
// for.
func requestedPageSize(p ListParams) *int {
	if !p.PageGiven {
		return nil
	}
	size := defaultPageSize
	return &size
}

func (s *Service) ListMasterpieces(ctx context.Context, p ListParams) ([]domain.MusicMasterpiece, *int, error) {
	rows, err := s.masterpieces.List(ctx, repository.MusicFilters{UserID: p.UserID, Genre: p.Genre})
	return rows, browsePageSize(p), err
}

func (s *Service) ListPlaylists(ctx context.Context, p ListParams) ([]domain.MusicPlaylist, *int, error) {
	rows, err := s.playlists.List(ctx, repository.MusicFilters{UserID: p.UserID, Genre: p.Genre})
	return rows, browsePageSize(p), err
}

func (s *Service) ListVotes(ctx context.Context, p ListParams) ([]domain.MusicVote, *int, error) {
	rows, err := s.votes.List(ctx, repository.MusicFilters{
		UserID:   p.UserID,
		ArtistID: p.ArtistID,
		Stars:    p.Stars,
		Genre:    p.Genre,
	})
	return rows, requestedPageSize(p), err
}

func (s *Service) ListCritics(ctx context.Context, p ListParams) ([]domain.MusicCritic, *int, error) {
	rows, err := s.critics.List(ctx, repository.MusicFilters{
		UserID:   p.UserID,
		ArtistID: p.ArtistID,
		Genre:    p.Genre,
	})
	return rows, requestedPageSize(p), err
}

func (s *Service) CreateMasterpiece(ctx context.Context, userID int64, req CreateMasterpieceRequest) error {
	exists, err := s.masterpieces.Exists(ctx, userID, req.AlbumID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}
	return s.masterpieces.Create(ctx, &domain.MusicMasterpiece{
		UserID:     userID,
		AlbumID:    req.AlbumID,
		AlbumName:  req.AlbumName,
		ArtistID:   req.ArtistID,
		ArtistName: req.ArtistName,
		ImageURL:   req.ImageURL,
		Genders:    req.Genders,
	})
}

func (s *Service) CreatePlaylist(ctx context.Context, userID int64, req CreatePlaylistRequest) error {
	exists, err := s.playlists.Exists(ctx, userID, req.AlbumID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}
	return s.playlists.Create(ctx, &domain.MusicPlaylist{
		UserID:     userID,
		AlbumID:    req.AlbumID,
		AlbumName:  req.AlbumName,
		ArtistID:   req.ArtistID,
		ArtistName: req.ArtistName,
		ImageURL:   req.ImageURL,
		Genders:    req.Genders,
		TrackID:    req.TrackID,
		TrackName:  req.TrackName,
	})
}

// CreateVote rejects values off the half-star scale before touching the
// store.
func (s *Service) CreateVote(ctx context.Context, userID int64, req CreateVoteRequest) error {
	if req.Value == nil || !ValidVoteValue(*req.Value) {
		return ErrInvalidValue
	}
	exists, err := s.votes.Exists(ctx, userID, req.AlbumID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}
	return s.votes.Create(ctx, &domain.MusicVote{
		UserID:     userID,
		AlbumID:    req.AlbumID,
		AlbumName:  req.AlbumName,
		ArtistID:   req.ArtistID,
		ArtistName: req.ArtistName,
		ImageURL:   req.ImageURL,
		Genders:    req.Genders,
		Value:      *req.Value,
	})
}

func (s *Service) CreateCritic(ctx context.Context, userID int64, req CreateCriticRequest) error {
	exists, err := s.critics.Exists(ctx, userID, req.AlbumID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}
	return s.critics.Create(ctx, &domain.MusicCritic{
		UserID:     userID,
		AlbumID:    req.AlbumID,
		AlbumName:  req.AlbumName,
		ArtistID:   req.ArtistID,
		ArtistName: req.ArtistName,
		ImageURL:   req.ImageURL,
		Genders:    req.Genders,
		Content:    req.Content,
	})
}

func (s *Service) DeleteMasterpiece(ctx context.Context, userID int64, id string) error {
	return notFoundErr(s.masterpieces.DeleteByID(ctx, userID, id))
}

func (s *Service) DeletePlaylist(ctx context.Context, userID int64, id string) error {
	return notFoundErr(s.playlists.DeleteByID(ctx, userID, id))
}

func (s *Service) DeleteVote(ctx context.Context, userID int64, id string) error {
	return notFoundErr(s.votes.DeleteByID(ctx, userID, id))
}

func (s *Service) DeleteCritic(ctx context.Context, userID int64, id string) error {
	return notFoundErr(s.critics.DeleteByID(ctx, userID, id))
}

func notFoundErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
