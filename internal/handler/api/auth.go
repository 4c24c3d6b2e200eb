package api

import (
	"net/http"

	reqdto "salon-loyalty/internal/handler/dto/request"
	resdto "salon-loyalty/internal/handler/dto/response"
	"salon-loyalty/internal/handler/httperr"
	"salon-loyalty/internal/handler/middleware"
	"salon-loyalty/internal/pkg/config"
	"salon-loyalty/internal/pkg/cookie"
	"salon-loyalty/internal/pkg/errs"
	"salon-loyalty/internal/pkg/jwt"
	"salon-loyalty/internal/usecase/commands"
	"salon-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	commands   commands.AuthCommands
	queries    queries.UserQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		commands:   cmds,
		queries:    q,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary Register
// @Description Create a profile with a role and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	result, err := h.commands.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		default:
			respondError(c, err)
		}
		return
	}

	h.respondWithSession(c, http.StatusCreated, result)
}

// @Summary User login
// @Description Login with email and password
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
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	result, err := h.commands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials),
			errs.Is(err, commands.ErrUserNotFound),
			errs.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		default:
			respondError(c, err)
		}
		return
	}

	h.respondWithSession(c, http.StatusOK, result)
}

// @Summary Refresh tokens
// @Description Exchange a refresh token (cookie or body) for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		var req reqdto.RefreshRequest
		_ = c.ShouldBindJSON(&req)
		refreshToken = req.RefreshToken
	}
	if refreshToken == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Refresh token required", nil)
		return
	}

	pair, err := h.commands.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrTokenValidation),
			errs.Is(err, commands.ErrUserNotFound):
			cookie.ClearTokenCookies(c, h.cfg.Cookie)
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid refresh token", nil)
		default:
			respondError(c, err)
		}
		return
	}

	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; logging out only drops the cookies.
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.queries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(user))
}

func (h *AuthHandler) respondWithSession(c *gin.Context, status int, result *commands.LoginResult) {
	user, err := h.queries.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setCookies(c, result.TokenPair)
	c.JSON(status, resdto.LoginResponse{
		AccessToken:  result.TokenPair.AccessToken,
		RefreshToken: result.TokenPair.RefreshToken,
		User:         resdto.FromProfileView(user),
	})
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cfg.Cookie, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, msgInternal, nil)
		return uuid.Nil, false
	}
	return userID, true
}
