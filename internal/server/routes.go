package server

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/bloops-games/sketchy/internal/game"
	"github.com/bloops-games/sketchy/internal/logging"
	"github.com/gin-gonic/gin"
)

// StatusSource is the running game as seen by the endpoints.
type StatusSource interface {
	Status() game.Status
}

type CanvasSource interface {
	EncodePNG(w io.Writer) error
}

type Deps struct {
	SessionID string
	Game      StatusSource
	Canvas    CanvasSource
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "session": deps.SessionID})
	})

	r.GET("/state", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Game.Status())
	})

	r.GET("/canvas.png", func(c *gin.Context) {
		var buf bytes.Buffer
		if err := deps.Canvas.EncodePNG(&buf); err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "canvas unavailable"})
			return
		}

		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	})

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logging.FromContext(c.Request.Context()).Named("server.request").Debugw("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
