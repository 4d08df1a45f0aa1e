package api

import (
	"errors"
	"net/http"

	"gocery/internal/domain/review"
	reqdto "gocery/internal/handler/dto/request"
	resdto "gocery/internal/handler/dto/response"
	"gocery/internal/handler/httperr"
	"gocery/internal/handler/middleware"
	"gocery/internal/infra"
	"gocery/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
}

func NewReviewHandler(reviewCommands commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{reviewCommands: reviewCommands}
}

// @Summary Create review
// @Description Leave a rating and comment on a product
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.reviewCommands.Create(c.Request.Context(), commands.CreateReviewInput{
		UserID:    userID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update review
// @Description Update the caller's own review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Review"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review ID format", nil)
		return
	}

	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err = h.reviewCommands.Update(c.Request.Context(), commands.UpdateReviewInput{
		ReviewID: id,
		UserID:   userID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete review
// @Description Delete the caller's own review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review ID format", nil)
		return
	}

	if err := h.reviewCommands.Delete(c.Request.Context(), id, userID); err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, review.ErrInvalidRating),
		errors.Is(err, review.ErrEmptyComment),
		errors.Is(err, review.ErrCommentTooLong):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, commands.ErrReviewAccessDenied):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Review belongs to another user", nil)
	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
