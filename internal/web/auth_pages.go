package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	tokenCookie  = "sb_token"
	nameCookie   = "sb_name"
	cookieMaxAge = 7 * 24 * 60 * 60
)

// AuthPages mantiene dependencias para las páginas de autenticación.
type AuthPages struct {
	logger *zap.Logger
	api    *APIClient
}

// NewAuthPages crea una instancia de AuthPages con dependencias necesarias.
func NewAuthPages(logger *zap.Logger, api *APIClient) *AuthPages {
	return &AuthPages{
		logger: logger,
		api:    api,
	}
}

// ShowLogin maneja GET /auth/login.
func (p *AuthPages) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{"Identifier": ""})
}

// SubmitLogin maneja POST /auth/login: reenvía el formulario al API y
// guarda el token en una cookie HttpOnly.
func (p *AuthPages) SubmitLogin(c *gin.Context) {
	identifier := c.PostForm("identifier")
	password := c.PostForm("password")

	resp, err := p.api.Login(c.Request.Context(), LoginRequest{
		Identifier: identifier,
		Password:   password,
	})
	if err != nil {
		p.logger.Warn("login via api failed", zap.Error(err))
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"Error":      apiMessage(err, "Login failed. Please check your credentials."),
			"Identifier": identifier,
		})
		return
	}

	c.SetCookie(tokenCookie, resp.Token, cookieMaxAge, "/", "", false, true)
	c.SetCookie(nameCookie, resp.DisplayName, cookieMaxAge, "/", "", false, false)
	c.Redirect(http.StatusSeeOther, "/auth/welcome")
}

// ShowRegister maneja GET /auth/register.
func (p *AuthPages) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", gin.H{"Form": SignUpRequest{}})
}

// SubmitRegister maneja POST /auth/register.
func (p *AuthPages) SubmitRegister(c *gin.Context) {
	form := SignUpRequest{
		DisplayName: c.PostForm("display_name"),
		Password:    c.PostForm("password"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		NationalID:  c.PostForm("national_id"),
		Gender:      c.PostForm("gender"),
		AccountType: c.PostForm("account_type"),
		Branch:      c.PostForm("branch"),
	}

	if _, err := p.api.SignUp(c.Request.Context(), form); err != nil {
		p.logger.Warn("signup via api failed", zap.Error(err))
		c.HTML(http.StatusOK, "register.tmpl", gin.H{
			"Error": apiMessage(err, "Registration failed. Please check input or try again."),
			"Form":  form,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/auth/login")
}

// Welcome maneja GET /auth/welcome; sin token redirige al login.
func (p *AuthPages) Welcome(c *gin.Context) {
	if token, err := c.Cookie(tokenCookie); err != nil || token == "" {
		c.Redirect(http.StatusSeeOther, "/auth/login")
		return
	}
	name, _ := c.Cookie(nameCookie)
	c.HTML(http.StatusOK, "welcome.tmpl", gin.H{"Username": name})
}

// Logout maneja POST /auth/logout borrando las cookies de sesión.
func (p *AuthPages) Logout(c *gin.Context) {
	c.SetCookie(tokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(nameCookie, "", -1, "/", "", false, false)
	c.Redirect(http.StatusSeeOther, "/auth/login")
}

// apiMessage prefiere el mensaje del API cuando hay uno utilizable.
func apiMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
