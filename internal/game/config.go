package game

import (
	"time"

	"github.com/bloops-games/sketchy/internal/database"
)

type Config struct {
	// Verbose logging and the console encoder
	Debug bool `envconfig:"SKETCHY_DEBUG" default:"false"`

	// Host listens on Addr and draws first, otherwise Addr is dialled
	Host bool   `envconfig:"SKETCHY_HOST" default:"false"`
	Addr string `envconfig:"SKETCHY_ADDR" default:"127.0.0.1:7878"`

	// tcp or ws
	Transport string `envconfig:"SKETCHY_TRANSPORT" default:"tcp"`

	// Advertise the hosted game over mDNS, or browse for one when joining
	Discovery bool `envconfig:"SKETCHY_DISCOVERY" default:"false"`

	// Seconds per round
	RoundTime uint32 `envconfig:"SKETCHY_ROUND_TIME" default:"100"`

	CanvasWidth  int `envconfig:"SKETCHY_CANVAS_WIDTH" default:"100"`
	CanvasHeight int `envconfig:"SKETCHY_CANVAS_HEIGHT" default:"100"`

	// Window pixels per canvas pixel
	CellSize    float64 `envconfig:"SKETCHY_CELL_SIZE" default:"8"`
	FontSize    float64 `envconfig:"SKETCHY_FONT_SIZE" default:"32"`
	WindowWidth float64 `envconfig:"SKETCHY_WINDOW_WIDTH" default:"800"`
	FPS         int     `envconfig:"SKETCHY_FPS" default:"60"`

	// A send to the peer that takes longer ends the session
	WriteTimeout time.Duration `envconfig:"SKETCHY_WRITE_TIMEOUT" default:"10s"`

	// Status HTTP server, empty disables it
	StatusAddr string `envconfig:"SKETCHY_STATUS_ADDR" default:"127.0.0.1:7879"`

	// Number of recently offered words kept out of the next pick
	RecentWords int `envconfig:"SKETCHY_RECENT_WORDS" default:"16"`

	DB database.Config
}

func (c *Config) Layout() Layout {
	return Layout{CenterX: c.WindowWidth / 2, FontSize: c.FontSize}
}
