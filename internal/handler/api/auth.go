package api

import (
	"errors"
	"net/http"

	reqdto "gocery/internal/handler/dto/request"
	resdto "gocery/internal/handler/dto/response"
	"gocery/internal/handler/httperr"
	"gocery/internal/handler/middleware"
	"gocery/internal/pkg/config"
	"gocery/internal/pkg/cookie"
	"gocery/internal/pkg/jwt"
	"gocery/internal/usecase/commands"
	"gocery/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errRefreshTokenMissing = errors.New("refresh token cookie is missing")

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	cookieCfg    config.CookieConfig
	jwtCfg       config.JWTConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, cookieCfg config.CookieConfig, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		cookieCfg:    cookieCfg,
		jwtCfg:       jwtCfg,
	}
}

// @Summary Register
// @Description Register a new customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	userID, err := h.authCommands.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email is already registered", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{ID: userID})
}

// @Summary Login
// @Description Authenticate and receive token cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	pair, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is deactivated", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtCfg.AccessDuration, h.jwtCfg.RefreshDuration)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errRefreshTokenMissing, "Refresh token required", nil)
		return
	}

	pair, err := h.authCommands.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrExpiredToken), errors.Is(err, jwt.ErrInvalidToken):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtCfg.AccessDuration, h.jwtCfg.RefreshDuration)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary Logout
// @Description Clear token cookies
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// @Summary Current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error", nil)
		return
	}

	view, err := h.userQueries.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUser(view))
}
