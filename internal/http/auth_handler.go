package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"securebank/internal/service"
)

// AuthHandler mantiene dependencias para los endpoints de autenticación.
type AuthHandler struct {
	logger      *zap.Logger
	accountServ *service.AccountService
}

// NewAuthHandler crea una instancia de AuthHandler con dependencias necesarias.
func NewAuthHandler(logger *zap.Logger, accountServ *service.AccountService) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		accountServ: accountServ,
	}
}

// SignUp maneja POST /auth/signup. No emite token: el registro no
// constituye una sesión autenticada.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req struct {
		DisplayName string `json:"display_name"`
		Password    string `json:"password"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		NationalID  string `json:"national_id"`
		Gender      string `json:"gender"`
		AccountType string `json:"account_type"`
		Branch      string `json:"branch"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.accountServ.SignUp(c.Request.Context(), service.SignUpInput{
		DisplayName: req.DisplayName,
		Password:    req.Password,
		Email:       req.Email,
		Phone:       req.Phone,
		NationalID:  req.NationalID,
		Gender:      req.Gender,
		AccountType: req.AccountType,
		Branch:      req.Branch,
	})
	if err != nil {
		h.writeError(c, "signup", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Login maneja POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.accountServ.Login(c.Request.Context(), service.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		h.writeError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me maneja GET /auth/me con los claims que dejó el middleware JWT.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	accountID, err := claims.AccountID()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"account_id":   accountID,
		"display_name": claims.DisplayName,
	})
}

// writeError traduce la taxonomía de errores del servicio a HTTP.
// Ningún payload expone digests, secretos ni stack traces.
func (h *AuthHandler) writeError(c *gin.Context, op string, err error) {
	var verrs service.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verrs})
	case errors.Is(err, service.ErrAccountExists):
		c.JSON(http.StatusConflict, gin.H{"error": "account with provided display name, email, phone, or national id already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		// Mensaje único para identificador desconocido y contraseña errada.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrTooManyAttempts):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts"})
	case errors.Is(err, service.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not " + op})
	}
}
