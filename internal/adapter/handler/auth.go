package handler

import (
	"context"
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/tubeblog/errors"
	authDTO "github.com/johnquangdev/tubeblog/internal/adapter/dto/auth"
	"github.com/johnquangdev/tubeblog/internal/adapter/presenter"
	"github.com/johnquangdev/tubeblog/internal/domain/entities"
	httpmw "github.com/johnquangdev/tubeblog/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/tubeblog/internal/usecase/auth"
	usecaseErrors "github.com/johnquangdev/tubeblog/internal/usecase/errors"
)

// AuthService is the auth use case as seen by the HTTP layer
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*auth.AuthResult, error)
	Login(ctx context.Context, username, password string) (*auth.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.AuthResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*entities.User, error)
}

// Auth handles authentication HTTP requests
type Auth struct {
	authService AuthService
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService AuthService, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles POST /auth/signup
// @Summary      Create an account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      auth.SignupRequest  true  "New account"
// @Success      201      {object}  auth.AuthResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      409      {object}  common.ErrorResponse  "Username taken"
// @Router       /auth/signup [post]
func (h *Auth) Signup(c echo.Context) error {
	var req authDTO.SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.authService.Signup(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, authError(err, req.Username))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToAuthResponse(result))
}

// Login handles POST /auth/login
// @Summary      Log in with username and password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      auth.LoginRequest  true  "Credentials"
// @Success      200      {object}  auth.AuthResponse
// @Failure      401      {object}  common.ErrorResponse  "Invalid credentials"
// @Router       /auth/login [post]
func (h *Auth) Login(c echo.Context) error {
	var req authDTO.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return HandleError(h.logger, c, authError(err, req.Username))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAuthResponse(result))
}

// RefreshToken handles POST /auth/refresh
// @Summary      Refresh the access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      auth.RefreshTokenRequest  true  "Refresh token"
// @Success      200      {object}  auth.RefreshTokenResponse
// @Failure      401      {object}  common.ErrorResponse  "Invalid refresh token"
// @Router       /auth/refresh [post]
func (h *Auth) RefreshToken(c echo.Context) error {
	var req authDTO.RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, authError(err, ""))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAuthRefreshTokenResponse(result))
}

// Me handles GET /auth/me
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  auth.UserResponse
// @Failure      401  {object}  common.ErrorResponse
// @Router       /auth/me [get]
func (h *Auth) Me(c echo.Context) error {
	userID, ok := httpmw.UserIDFrom(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	user, err := h.authService.Me(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, authError(err, ""))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToUserResponse(user))
}

// authError maps auth use case errors to API errors
func authError(err error, username string) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(causeAfter(err, usecaseErrors.ErrInvalidInput).Error())
	case stdErrors.Is(err, usecaseErrors.ErrAlreadyExists):
		return errors.ErrUserAlreadyExists(username)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidCredentials):
		return errors.ErrInvalidCredentials()
	case stdErrors.Is(err, usecaseErrors.ErrTokenInvalid):
		return errors.ErrInvalidRefreshToken()
	case stdErrors.Is(err, usecaseErrors.ErrUnauthorized):
		return errors.ErrInvalidToken()
	case stdErrors.Is(err, usecaseErrors.ErrUserNotActive):
		return errors.ErrPermissionDenied("account is disabled")
	case stdErrors.Is(err, usecaseErrors.ErrNotFound):
		return errors.ErrUserNotFound()
	default:
		return errors.ErrInternal(err)
	}
}
