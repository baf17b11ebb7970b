package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/astrodate/astrodate-backend/internal/delivery/http/middleware"
	"github.com/astrodate/astrodate-backend/internal/domain"
	"github.com/astrodate/astrodate-backend/internal/repository"
	"github.com/astrodate/astrodate-backend/internal/usecase/discover"
	"github.com/astrodate/astrodate-backend/internal/usecase/swipe"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	discoverUseCase *discover.DiscoverUseCase
	swipeUseCase    *swipe.SwipeUseCase
	userRepo        repository.UserRepository
}

func NewUserHandler(
	discoverUseCase *discover.DiscoverUseCase,
	swipeUseCase *swipe.SwipeUseCase,
	userRepo repository.UserRepository,
) *UserHandler {
	return &UserHandler{
		discoverUseCase: discoverUseCase,
		swipeUseCase:    swipeUseCase,
		userRepo:        userRepo,
	}
}

func currentUserID(c *gin.Context) (int, bool) {
	id, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	return id.(int), true
}

// All handles GET /users/all?skip=&limit=
func (h *UserHandler) All(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	users, err := h.userRepo.List(c.Request.Context(), limit, skip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Discover handles GET /users/discover. A 404 means "no compatible
// candidate left", which is an expected outcome, not a failure.
func (h *UserHandler) Discover(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	candidate, err := h.discoverUseCase.NextCandidate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "discover failed"})
		return
	}
	if candidate == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no compatible user found"})
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// Swipe handles POST /users/swipe/:user_id/:is_like
func (h *UserHandler) Swipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	targetID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user_id must be an integer"})
		return
	}
	isLike, err := strconv.ParseBool(c.Param("is_like"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "is_like must be a boolean"})
		return
	}

	resp, err := h.swipeUseCase.RecordSwipe(c.Request.Context(), userID, targetID, isLike)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotSwipeSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "swipe failed"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Likes handles GET /users/likes, the users who liked me.
func (h *UserHandler) Likes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	users, err := h.swipeUseCase.LikedBy(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load likes"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// MyLikes handles GET /users/my-likes, the users I liked.
func (h *UserHandler) MyLikes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	users, err := h.swipeUseCase.LikedByMe(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load likes"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// LikesCount handles GET /users/likes/count
func (h *UserHandler) LikesCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := h.swipeUseCase.CountLikesReceived(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to count likes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
