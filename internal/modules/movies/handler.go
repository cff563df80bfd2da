package movies

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marcus/internal/pkg/paginate"
	"marcus/internal/pkg/response"
	"marcus/internal/pkg/validator"
	"marcus/internal/tmdb"
)

type metadataProvider interface {
	MovieDetails(ctx context.Context, movieID int64) (*tmdb.Details, error)
	TVDetails(ctx context.Context, movieID int64) (*tmdb.Details, error)
	SearchMovies(ctx context.Context, query string, page int) (json.RawMessage, error)
}

type Handler struct {
	service  *Service
	metadata metadataProvider
}

func NewHandler(service *Service, metadata metadataProvider) *Handler {
	return &Handler{service: service, metadata: metadata}
}

// RegisterRoutes wires the movie-domain endpoints. Listings and the
// metadata proxy are public; mutations require authentication.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/masterpieces", h.ListMasterpieces)
		public.GET("/watchlists", h.ListWatchlists)
		public.GET("/votes", h.ListVotes)
		public.GET("/critics", h.ListCritics)
		public.GET("/critics/export", h.ExportCritics)
		public.GET("/movies/search", h.SearchMovies)
		public.GET("/movies/:movieId", h.MovieDetails)
	}
	if protected != nil {
		protected.POST("/masterpieces", h.CreateMasterpiece)
		protected.DELETE("/masterpieces", h.DeleteMasterpiece)
		protected.POST("/watchlists", h.CreateWatchlist)
		protected.DELETE("/watchlists", h.DeleteWatchlist)
		protected.POST("/votes", h.CreateVote)
		protected.DELETE("/votes", h.DeleteVote)
		protected.POST("/critics", h.CreateCritic)
		protected.DELETE("/critics", h.DeleteCritic)
	}
}

// listQuery is the parsed GET query string. page stays 1 when absent; ok is
// false after a malformed numeric parameter has already been answered.
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
	if raw := c.Query("movie_id"); raw != "" {
		movieID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, fmt.Sprintf("invalid movie_id %q", raw))
			return nil, false
		}
		q.params.MovieID = &movieID
	}
	if raw := c.Query("stars"); raw != "" {
		stars, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, fmt.Sprintf("invalid stars %q", raw))
			return nil, false
		}
		q.params.Stars = &stars
	}
	q.params.Tag = c.Query("tag")

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

func (h *Handler) ListWatchlists(c *gin.Context) {
	q, ok := parseListQuery(c)
	if !ok {
		return
	}
	rows, size, err := h.service.ListWatchlists(c.Request.Context(), q.params)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list watchlists")
		return
	}
	w := paginate.Paginate(len(rows), q.page, size)
	response.List(c, http.StatusOK, w.Total, w.From, w.To, !w.HasNext,
		ToWatchlistResponses(rows[w.Lo:w.Hi]))
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

// ListCritics serves two shapes: a plain listing, or, when movie_id is
// given, the critique+vote aggregation for that movie (unpaginated).
func (h *Handler) ListCritics(c *gin.Context) {
	q, ok := parseListQuery(c)
	if !ok {
		return
	}

	if q.params.MovieID != nil {
		merged, err := h.service.AggregateCritics(c.Request.Context(), *q.params.MovieID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "failed to aggregate critics")
			return
		}
		from := 0
		if len(merged) > 0 {
			from = 1
		}
		response.List(c, http.StatusOK, len(merged), from, len(merged), true, merged)
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
	h.respondCreate(c, "Masterpiece", req.MovieID, req.MovieName,
		h.service.CreateMasterpiece(c.Request.Context(), c.GetInt64("user_id"), req))
}

func (h *Handler) CreateWatchlist(c *gin.Context) {
	var req CreateWatchlistRequest
	if !bindCreateRequest(c, &req) {
		return
	}
	h.respondCreate(c, "Watchlist", req.MovieID, req.MovieName,
		h.service.CreateWatchlist(c.Request.Context(), c.GetInt64("user_id"), req))
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
	h.respondCreate(c, "Vote", req.MovieID, req.MovieName, err)
}

func (h *Handler) CreateCritic(c *gin.Context) {
	var req CreateCriticRequest
	if !bindCreateRequest(c, &req) {
		return
	}
	h.respondCreate(c, "Critic", req.MovieID, req.MovieName,
		h.service.CreateCritic(c.Request.Context(), c.GetInt64("user_id"), req))
}

func (h *Handler) DeleteMasterpiece(c *gin.Context) {
	h.respondDelete(c, h.service.DeleteMasterpiece)
}

func (h *Handler) DeleteWatchlist(c *gin.Context) {
	h.respondDelete(c, h.service.DeleteWatchlist)
}

func (h *Handler) DeleteVote(c *gin.Context) {
	h.respondDelete(c, h.service.DeleteVote)
}

func (h *Handler) DeleteCritic(c *gin.Context) {
	h.respondDelete(c, h.service.DeleteCritic)
}

// MovieDetails proxies a TMDB details lookup, picking the movie or TV
// endpoint from the platform query parameter.
func (h *Handler) MovieDetails(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid movie id")
		return
	}

	platform := c.DefaultQuery("platform", "movie")
	var details *tmdb.Details
	switch platform {
	case "movie":
		details, err = h.metadata.MovieDetails(c.Request.Context(), movieID)
	case "tv":
		details, err = h.metadata.TVDetails(c.Request.Context(), movieID)
	default:
		response.Error(c, http.StatusBadRequest, "platform must be movie or tv")
		return
	}
	if err != nil {
		response.Error(c, http.StatusBadGateway, "metadata provider failure")
		return
	}

	c.JSON(http.StatusOK, details)
}

// SearchMovies passes a title search through to TMDB verbatim.
func (h *Handler) SearchMovies(c *gin.Context) {
	query := c.Query("movie")
	if query == "" {
		response.Error(c, http.StatusBadRequest, "movie query parameter is required")
		return
	}
	page := 0
	if raw := c.Query("page"); raw != "" {
		page, _ = strconv.Atoi(raw)
	}

	body, err := h.metadata.SearchMovies(c.Request.Context(), query, page)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "metadata provider failure")
		return
	}

	c.Data(http.StatusOK, "application/json", body)
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

func (h *Handler) respondCreate(c *gin.Context, entity string, movieID int64, movieName string, err error) {
	switch {
	case err == nil:
		response.Message(c, http.StatusCreated,
			fmt.Sprintf("Movie %d %s successfully added to %s.", movieID, movieName, entity))
	case errors.Is(err, ErrDuplicate):
		response.Error(c, http.StatusBadRequest,
			fmt.Sprintf("Movie %d %s already exists in %s.", movieID, movieName, entity))
	default:
		response.Error(c, http.StatusInternalServerError, "failed to create "+entity)
	}
}

func (h *Handler) respondDelete(c *gin.Context, del func(ctx context.Context, userID, movieID int64) error) {
	raw := c.Query("movie_id")
	movieID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, fmt.Sprintf("invalid movie_id %q", raw))
		return
	}

	userID := c.GetInt64("user_id")
	if err := del(c.Request.Context(), userID, movieID); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": fmt.Sprintf("Movie %d not found for user %d.", movieID, userID),
			})
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete")
		return
	}

	c.Status(http.StatusNoContent)
}
