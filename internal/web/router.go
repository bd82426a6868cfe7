package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router del front web con templates y rutas MVC.
func NewRouter(logger *zap.Logger, templateGlob string, pages *AuthPages) *gin.Engine {
	r := gin.New()
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())
	r.LoadHTMLGlob(templateGlob)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/auth/login")
	})

	auth := r.Group("/auth")
	auth.GET("/login", pages.ShowLogin)
	auth.POST("/login", pages.SubmitLogin)
	auth.GET("/register", pages.ShowRegister)
	auth.POST("/register", pages.SubmitRegister)
	auth.GET("/welcome", pages.Welcome)
	auth.POST("/logout", pages.Logout)

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
