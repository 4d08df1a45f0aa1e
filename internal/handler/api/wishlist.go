package api

import (
	"errors"
	"net/http"

	reqdto "gocery/internal/handler/dto/request"
	resdto "gocery/internal/handler/dto/response"
	"gocery/internal/handler/httperr"
	"gocery/internal/handler/middleware"
	"gocery/internal/infra"
	"gocery/internal/usecase/commands"
	"gocery/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WishlistHandler struct {
	wishlistCommands commands.WishlistCommands
	storeQueries     queries.ClientStoreQueries
}

func NewWishlistHandler(wishlistCommands commands.WishlistCommands, storeQueries queries.ClientStoreQueries) *WishlistHandler {
	return &WishlistHandler{
		wishlistCommands: wishlistCommands,
		storeQueries:     storeQueries,
	}
}

// @Summary Toggle wishlist product
// @Description Add or remove a product from the wishlist; anonymous requests get a login-required signal
// @Tags wishlist
// @Accept json
// @Produce json
// @Param request body reqdto.ToggleRequest true "Product to toggle"
// @Success 200 {object} resdto.WishlistToggleResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /wishlist/toggle [post]
func (h *WishlistHandler) Toggle(c *gin.Context) {
	var req reqdto.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	// The route is optionally authenticated so an anonymous tap on the
	// heart icon becomes a login prompt, not a silent failure.
	userID, _ := middleware.GetUserID(c)

	result, err := h.wishlistCommands.Toggle(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLoginRequired):
			httperr.AbortWithCode(c, http.StatusUnauthorized, err, "login_required", "Please log in to use the wishlist")
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	ids := result.View.ProductIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	c.JSON(http.StatusOK, resdto.WishlistToggleResponse{
		InWishlist: result.InWishlist,
		ProductIDs: ids,
	})
}

// @Summary Get wishlist
// @Description Get the authenticated user's wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.WishlistResponse
// @Failure 401 {object} httperr.Response
// @Router /wishlist [get]
func (h *WishlistHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error", nil)
		return
	}

	view, err := h.storeQueries.GetWishlist(c.Request.Context(), userID.String())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWishlistView(view))
}
