package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/authgate/internal/server/http/dto"
	"github.com/polkiloo/authgate/internal/server/http/middleware"
)

// AuthHandler processes sign-up and login.
type AuthHandler struct {
	facade AuthFacade
	logger *slog.Logger
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{facade: facade, logger: logger}
}

// SignUp handles POST /sign-up.
func (h *AuthHandler) SignUp(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	usr, err := h.facade.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.logger, "sign up", err)
		return
	}

	middleware.LoggerFrom(c, h.logger).Info("user signed up", slog.Int64("user_id", usr.ID))
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: dto.MessageUserCreated})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	usr, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.logger, "login", err)
		return
	}

	middleware.LoggerFrom(c, h.logger).Info("user logged in", slog.Int64("user_id", usr.ID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.MessageLoggedIn})
}
