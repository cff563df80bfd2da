package music

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marcus/internal/pkg/paginate"
	"marcus/internal/pkg/response"
	"marcus/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the music-domain endpoints under /music. Listings
// are public; mutations require authentication.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/masterpieces", h.ListMasterpieces)
		public.GET("/playlists", h.ListPlaylists)
		public.GET("/votes", h.ListVotes)
		public.GET("/critics", h.ListCritics)
	}
	if protected != nil {
		protected.POST("/masterpieces", h.CreateMasterpiece)
		protected.DELETE("/masterpieces", h.DeleteMasterpiece)
		protected.POST("/playlists", h.CreatePlaylist)
		protected.DELETE("/playlists", h.DeletePlaylist)
		protected.POST("/votes", h.CreateVote)
		protected.DELETE("/votes", h.DeleteVote)
		protected.POST("/critics", h.CreateCritic)
		protected.DELETE("/critics", h.DeleteCritic)
	}
}

type listQuery struct {
	params ListParams
	page   int
}

func parseListQuery(c *gin.Context) (*listQuery, bool) {
	q := &listQuery{page: 1}

	if raw := c.Query("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, fmt.Sprintf("invalid user_id %q", raw))
			return nil, false
		}
		q.params.UserID = &userID
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, fmt.Sprintf("invalid page %q", raw))
			return nil, false
		}
		q.page = page
		q.params.PageGiven = true
	}
	if raw := c.Query("stars"); raw != "" {
		stars, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, fmt.Sprintf("invalid stars %q", raw))
			return nil, false
		}
		q.params.Stars = &stars
	}
	q.params.ArtistID = c.Query("artist_id")
	q.params.Genre = c.Query("genre")

	return q, true
}

func (h *Handler) ListMasterpieces(c *gin.Context) {
	q, ok := parseListQuery(c)
	if !ok {
		return
	}
	rows, size, err := h.service.ListMasterpieces(c.Request.Context(), q.params)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list masterpieces")
		return
	}
	w := paginate.Paginate(len(rows), q.page, size)
	response.List(c, http.StatusOK, w.Total, w.From, w.To, !w.HasNext,
		ToMasterpieceResponses(rows[w.Lo:w.Hi]))
}

func (h *Handler) ListPlaylists(c *gin.Context) {
	q, ok := parseListQuery(c)
	if !ok {
		return
	}
	rows, size, err := h.service.ListPlaylists(c.Request.Context(), q.params)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list playlists")
		return
	}
	w := paginate.Paginate(len(rows), q.page, size)
	response.List(c, http.StatusOK, w.Total, w.From, w.To, !w.HasNext,
		ToPlaylistResponses(rows[w.Lo:w.Hi]))
}

func (h *Handler) ListVotes(c *gin.Context) {
	q, ok := parseListQuery(c)
	if !ok {
		return
	}
	rows, size, err := h.service.ListVotes(c.Request.Context(), q.params)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list votes")
		return
	}
	w := paginate.Paginate(len(rows), q.page, size)
	response.List(c, http.StatusOK, w.Total, w.From, w.To, !w.HasNext,
		ToVoteResponses(rows[w.Lo:w.Hi]))
}

func (h *Handler) ListCritics(c *gin.Context) {
	q, ok := parseListQuery(c)
	if !ok {
		return
	}
	rows, size, err := h.service.ListCritics(c.Request.Context(), q.params)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list critics")
		return
	}
	w := paginate.Paginate(len(rows), q.page, size)
	response.List(c, http.StatusOK, w.Total, w.From, w.To, !w.HasNext,
		ToCriticResponses(rows[w.Lo:w.Hi]))
}

func (h *Handler) CreateMasterpiece(c *gin.Context) {
	var req CreateMasterpieceRequest
	if !bindCreateRequest(c, &req) {
		return
	}
	respondCreate(c, "Masterpiece", req.AlbumID, req.AlbumName,
		h.service.CreateMasterpiece(c.Request.Context(), c.GetInt64("user_id"), req))
}

func (h *Handler) CreatePlaylist(c *gin.Context) {
	var req CreatePlaylistRequest
	if !bindCreateRequest(c, &req) {
		return
	}
	respondCreate(c, "Playlist", req.AlbumID, req.AlbumName,
		h.service.CreatePlaylist(c.Request.Context(), c.GetInt64("user_id"), req))
}

func (h *Handler) CreateVote(c *gin.Context) {
	var req CreateVoteRequest
	if !bindCreateRequest(c, &req) {
		return
	}
	err := h.service.CreateVote(c.Request.Context(), c.GetInt64("user_id"), req)
	if errors.Is(err, ErrInvalidValue) {
		response.Error(c, http.StatusBadRequest,
			"Value must be in [0.0, 0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0, 4.5, 5.0]")
		return
	}
	respondCreate(c, "Vote", req.AlbumID, req.AlbumName, err)
}

func (h *Handler) CreateCritic(c *gin.Context) {
	var req CreateCriticRequest
	if !bindCreateRequest(c, &req) {
		return
	}
	respondCreate(c, "Critic", req.AlbumID, req.AlbumName,
		h.service.CreateCritic(c.Request.Context(), c.GetInt64("user_id"), req))
}

func (h *Handler) DeleteMasterpiece(c *gin.Context) {
	respondDelete(c, h.service.DeleteMasterpiece)
}

func (h *Handler) DeletePlaylist(c *gin.Context) {
	respondDelete(c, h.service.DeletePlaylist)
}

func (h *Handler) DeleteVote(c *gin.Context) {
	respondDelete(c, h.service.DeleteVote)
}

func (h *Handler) DeleteCritic(c *gin.Context) {
	respondDelete(c, h.service.DeleteCritic)
}

func bindCreateRequest(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	if fields := validator.Validate(req); fields != nil {
		response.Error(c, http.StatusBadRequest, fields)
		return false
	}
	return true
}

func respondCreate(c *gin.Context, entity, albumID, albumName string, err error) {
	switch {
	case err == nil:
		response.Message(c, http.StatusCreated,
			fmt.Sprintf("Album %s %s successfully added to %s.", albumID, albumName, entity))
	case errors.Is(err, ErrDuplicate):
		response.Error(c, http.StatusBadRequest,
			fmt.Sprintf("Album %s %s already exists in %s.", albumID, albumName, entity))
	default:
		response.Error(c, http.StatusInternalServerError, "failed to create "+entity)
	}
}

func respondDelete(c *gin.Context, del func(ctx context.Context, userID int64, id string) error) {
	id := c.Query("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "id query parameter is required")
		return
	}

	userID := c.GetInt64("user_id")
	if err := del(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": fmt.Sprintf("Music %s not found for user %d.", id, userID),
			})
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete")
		return
	}

	c.Status(http.StatusNoContent)
}
