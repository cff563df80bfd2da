package music

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"marcus/internal/database"
	"marcus/internal/domain"
	"marcus/internal/repository"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	svc := NewService(
		repository.NewMusicReactionRepository[domain.MusicMasterpiece](db),
		repository.NewMusicReactionRepository[domain.MusicPlaylist](db),
		repository.NewMusicReactionRepository[domain.MusicVote](db),
		repository.NewMusicReactionRepository[domain.MusicCritic](db),
	)
	return svc, db
}

func createUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	u := &domain.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func f64(v float64) *float64 { return &v }

func albumReq() CreateMasterpieceRequest {
	return CreateMasterpieceRequest{
		AlbumID:    "3RQQmkQEvNCY4prGKE6oc5",
		AlbumName:  "album name",
		ArtistID:   "0TnOYISbd1XYRBk9myaseg",
		ArtistName: "artist name",
		Genders:    "pop",
	}
}

func TestCreateMasterpiece_DuplicateRejected(t *testing.T) {
	svc, db := newTestService(t)
	u := createUser(t, db, "testuser")
	ctx := context.Background()

	require.NoError(t, svc.CreateMasterpiece(ctx, u.ID, albumReq()))
	assert.ErrorIs(t, svc.CreateMasterpiece(ctx, u.ID, albumReq()), ErrDuplicate)

	// Same album is fine for another user.
	other := createUser(t, db, "other")
	require.NoError(t, svc.CreateMasterpiece(ctx, other.ID, albumReq()))
}

func TestCreateVote_InvalidValue(t *testing.T) {
	svc, db := newTestService(t)
	u := createUser(t, db, "testuser")

	err := svc.CreateVote(context.Background(), u.ID, CreateVoteRequest{
		AlbumID: "a1", AlbumName: "n", ArtistID: "ar1", ArtistName: "an", Value: f64(3.3),
	})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestDeleteByRowID(t *testing.T) {
	svc, db := newTestService(t)
	u := createUser(t, db, "testuser")
	ctx := context.Background()

	require.NoError(t, svc.CreateMasterpiece(ctx, u.ID, albumReq()))

	var row domain.MusicMasterpiece
	require.NoError(t, db.Where("user_id = ?", u.ID).First(&row).Error)

	// Wrong id and wrong owner both miss.
	assert.ErrorIs(t, svc.DeleteMasterpiece(ctx, u.ID, "no-such-id"), ErrNotFound)
	other := createUser(t, db, "other")
	assert.ErrorIs(t, svc.DeleteMasterpiece(ctx, other.ID, row.ID), ErrNotFound)

	require.NoError(t, svc.DeleteMasterpiece(ctx, u.ID, row.ID))

	var count int64
	require.NoError(t, db.Model(&domain.MusicMasterpiece{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestListVotes_ArtistAndStarsFilters(t *testing.T) {
	svc, db := newTestService(t)
	u := createUser(t, db, "testuser")
	ctx := context.Background()

	require.NoError(t, svc.CreateVote(ctx, u.ID, CreateVoteRequest{
		AlbumID: "a1", AlbumName: "first", ArtistID: "artist-1", ArtistName: "one", Value: f64(4),
	}))
	require.NoError(t, svc.CreateVote(ctx, u.ID, CreateVoteRequest{
		AlbumID: "a2", AlbumName: "second", ArtistID: "artist-2", ArtistName: "two", Value: f64(2.5),
	}))

	rows, _, err := svc.ListVotes(ctx, ListParams{ArtistID: "artist-1"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "first", rows[0].AlbumName)

	rows, _, err = svc.ListVotes(ctx, ListParams{UserID: &u.ID, Stars: f64(2.5)})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "second", rows[0].AlbumName)

	rows, _, err = svc.ListVotes(ctx, ListParams{UserID: &u.ID, Stars: f64(3)})
	require.NoError(t, err)
	assert.Len(t, rows, 0)
}

func TestListCritics_GenreFilter(t *testing.T) {
	svc, db := newTestService(t)
	u := createUser(t, db, "testuser")
	ctx := context.Background()

	require.NoError(t, svc.CreateCritic(ctx, u.ID, CreateCriticRequest{
		AlbumID: "a1", AlbumName: "first", ArtistID: "ar1", ArtistName: "one",
		Genders: "indie rock", Content: "solid",
	}))
	require.NoError(t, svc.CreateCritic(ctx, u.ID, CreateCriticRequest{
		AlbumID: "a2", AlbumName: "second", ArtistID: "ar2", ArtistName: "two",
		Genders: "jazz", Content: "fine",
	}))

	rows, _, err := svc.ListCritics(ctx, ListParams{Genre: "rock"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "first", rows[0].AlbumName)
}

func TestVoteAndCriticPageSizes(t *testing.T) {
	svc, db := newTestService(t)
	u := createUser(t, db, "testuser")
	ctx := context.Background()

	// Votes and critics only paginate when a page is requested.
	_, size, err := svc.ListVotes(ctx, ListParams{UserID: &u.ID})
	require.NoError(t, err)
	assert.Nil(t, size)

	_, size, err = svc.ListVotes(ctx, ListParams{UserID: &u.ID, PageGiven: true})
	require.NoError(t, err)
	require.NotNil(t, size)
	assert.Equal(t, 10, *size)

	_, size, err = svc.ListCritics(ctx, ListParams{})
	require.NoError(t, err)
	assert.Nil(t, size)

	// Browsing masterpieces without a user filter always pages by 10.
	_, size, err = svc.ListMasterpieces(ctx, ListParams{})
	require.NoError(t, err)
	require.NotNil(t, size)
	assert.Equal(t, 10, *size)
}

func TestCreatePlaylistKeepsTrack(t *testing.T) {
	svc, db := newTestService(t)
	u := createUser(t, db, "testuser")
	ctx := context.Background()

	require.NoError(t, svc.CreatePlaylist(ctx, u.ID, CreatePlaylistRequest{
		AlbumID: "a1", AlbumName: "album", ArtistID: "ar1", ArtistName: "artist",
		TrackID: "t1", TrackName: "opening track",
	}))

	var row domain.MusicPlaylist
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, "t1", row.TrackID)
	assert.Equal(t, "opening track", row.TrackName)
}
