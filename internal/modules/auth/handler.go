package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"marcus/internal/pkg/response"
	"marcus/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the auth endpoints. Registration and token issuance
// are public; the user listing requires a valid access token.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.POST("/register", h.Register)
		public.POST("/token", h.Token)
		public.POST("/token/refresh", h.Refresh)
	}
	if protected != nil {
		protected.GET("/users", h.ListUsers)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.Error(c, http.StatusBadRequest, fields)
		return
	}

	if _, err := h.service.Register(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			response.Error(c, http.StatusBadRequest, "User might already exist.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to register user")
		return
	}

	response.Message(c, http.StatusCreated, "User created successfully")
}

func (h *Handler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.Error(c, http.StatusBadRequest, fields)
		return
	}

	pair, err := h.service.Token(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "invalid username or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.Error(c, http.StatusBadRequest, fields)
		return
	}

	access, err := h.service.Refresh(req)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.Users(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list users")
		return
	}
	c.JSON(http.StatusOK, ToUserListResponse(users))
}
